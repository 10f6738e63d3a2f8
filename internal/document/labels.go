package document

// Header captions. English sits on the leading side of the row, Arabic is
// right-aligned on the same row.
var (
	LabelTo         = Label{English: "To", Arabic: "إلى"}
	LabelThrough    = Label{English: "Through", Arabic: "عن طريق"}
	LabelFrom       = Label{English: "From", Arabic: "من"}
	LabelSubject    = Label{English: "Subject", Arabic: "الموضوع"}
	LabelMemoNumber = Label{English: "Memo No.", Arabic: "رقم المذكرة"}
	LabelDate       = Label{English: "Date", Arabic: "التاريخ"}
)

// ClassificationPlaceholder is shown when no classification is given.
const ClassificationPlaceholder = "—"

const (
	fieldWidth        = 1.0
	throughFieldWidth = 0.9
)
