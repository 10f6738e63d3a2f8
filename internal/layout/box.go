package layout

import (
	"strings"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// Alignment is a resolved horizontal text alignment.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignRight   Alignment = "right"
	AlignCenter  Alignment = "center"
	AlignJustify Alignment = "justify"
)

// DefaultAlignment returns the alignment used when none is given explicitly.
func DefaultAlignment(d text.Direction) Alignment {
	if d == text.RightToLeft {
		return AlignRight
	}
	return AlignLeft
}

// Inline is either a Run or a LineBreak.
type Inline interface {
	isInline()
}

// Run is a span of text sharing one visual style.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Script    text.Script
	// Family is the font family selected for Script.
	Family string
}

// LineBreak forces the following inlines onto a new line.
type LineBreak struct{}

func (Run) isInline()       {}
func (LineBreak) isInline() {}

// Style returns the fpdf-style emphasis string ("", "B", "I", "BI", plus "U").
func (r Run) Style() string {
	s := ""
	if r.Bold {
		s += "B"
	}
	if r.Italic {
		s += "I"
	}
	if r.Underline {
		s += "U"
	}
	return s
}

// BlockKind identifies the concrete type of a Block.
type BlockKind int

const (
	KindSpacer BlockKind = iota
	KindParagraph
	KindList
	KindTable
)

func (k BlockKind) String() string {
	switch k {
	case KindSpacer:
		return "spacer"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	}
	return "unknown"
}

// Block is a layout unit occupying its own lines.
type Block interface {
	Kind() BlockKind
}

// Spacer is a fixed vertical gap standing in for an empty line.
type Spacer struct {
	Height float64
}

// Paragraph is a run sequence with resolved alignment and direction.
type Paragraph struct {
	Alignment Alignment
	Direction text.Direction
	Inlines   []Inline
}

// List is an ordered or unordered list.
type List struct {
	Ordered bool
	Items   []ListItem
}

// ListItem is one row of a list: a marker column and a content column.
type ListItem struct {
	// Index is 1-based within its (sub)list; 0 for unordered lists.
	Index     int
	Marker    string
	Level     int
	Alignment Alignment
	Direction text.Direction
	Inlines   []Inline
}

// Table is a rectangular grid of cells.
type Table struct {
	Columns    int
	HeaderRows []TableRow
	BodyRows   []TableRow
}

// TableRow holds exactly Table.Columns cells.
type TableRow struct {
	Cells []TableCell
}

// TableCell holds the composed content of a single grid cell.
type TableCell struct {
	Inlines   []Inline
	Header    bool
	ColSpan   int
	Alignment Alignment
	Direction text.Direction
}

func (*Spacer) Kind() BlockKind    { return KindSpacer }
func (*Paragraph) Kind() BlockKind { return KindParagraph }
func (*List) Kind() BlockKind      { return KindList }
func (*Table) Kind() BlockKind     { return KindTable }

// Rows returns header rows followed by body rows.
func (t *Table) Rows() []TableRow {
	rows := make([]TableRow, 0, len(t.HeaderRows)+len(t.BodyRows))
	rows = append(rows, t.HeaderRows...)
	return append(rows, t.BodyRows...)
}

// PlainText concatenates the text of inlines, mapping line breaks to "\n".
func PlainText(inlines []Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case Run:
			b.WriteString(v.Text)
		case LineBreak:
			b.WriteByte('\n')
		}
	}
	return b.String()
}
