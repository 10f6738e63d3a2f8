package pdf

import (
	"strconv"
	"strings"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/document"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/layout"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// labelRun styles chrome text (labels, markers, footer) in the plan's fonts.
func (pr *pageRenderer) labelRun(s string, bold bool) layout.Run {
	script := text.Classify(s)
	return layout.Run{
		Text:   s,
		Bold:   bold,
		Script: script,
		Family: pr.plan.Fonts.Family(script),
	}
}

// visualText returns s in display order for a single line of chrome text.
func visualText(s string) string {
	if !text.ContainsRTL(s) {
		return s
	}
	return strings.Join(text.VisualLine(strings.Fields(s)), " ")
}

// labelRow draws the English caption on the leading edge and the Arabic
// caption right-aligned on the same baseline.
func (pr *pageRenderer) labelRow(l document.Label, size float64) {
	y := baseline(pr.cursor.Y(), size)
	pr.w.text(pr.left(), y, pr.labelRun(l.English, true), l.English, size)

	ar := pr.labelRun(l.Arabic, true)
	vis := visualText(l.Arabic)
	width := pr.w.width(ar, vis, size)
	pr.w.text(pr.left()+pr.geom.ContentWidth()-width, y, ar, vis, size)
}

func (pr *pageRenderer) fields() {
	size := LabelFontSize
	lh := lineHeight(size)
	for _, f := range pr.plan.Fields {
		pr.cursor.Ensure(lh + lineHeight(BodyFontSize) + fieldGap)
		pr.labelRow(f.Label, size)
		pr.cursor.Advance(lh)
		pr.valueLine(f)
		pr.cursor.Advance(fieldGap)
	}
}

// valueLine draws a field value across WidthRatio of the content width,
// anchored on the side its own direction reads from.
func (pr *pageRenderer) valueLine(f document.Field) {
	size := BodyFontSize
	lh := lineHeight(size)
	width := pr.geom.ContentWidth() * f.WidthRatio
	x := pr.left()
	align := layout.AlignLeft
	if f.Direction == text.RightToLeft {
		x = pr.left() + pr.geom.ContentWidth() - width
		align = layout.AlignRight
	}

	var inlines []layout.Inline
	if f.Value.Text != "" {
		inlines = []layout.Inline{f.Value}
	}
	for _, l := range breakLines(pr.w.words(inlines, size), width) {
		pr.cursor.Ensure(lh)
		y := baseline(pr.cursor.Y(), size)
		pr.w.drawLine(l, x, y, width, align, f.Direction, size)
		if f.Underline {
			pr.doc.SetLineWidth(valueLineWidth)
			pr.doc.Line(x, y+3, x+width, y+3)
		}
		pr.cursor.Advance(lh)
	}
}

// reference draws the memo number and date, one row each: caption and value
// on the leading side, Arabic caption on the trailing side.
func (pr *pageRenderer) reference() {
	size := LabelFontSize
	lh := lineHeight(size)
	for _, f := range pr.plan.Reference {
		pr.cursor.Ensure(lh)
		pr.labelRow(f.Label, size)

		caption := pr.labelRun(f.Label.English, true)
		x := pr.left() + pr.w.width(caption, f.Label.English, size) + fieldGap
		value := f.Value.Text
		if f.Value.Script == text.Arabic {
			value = visualText(value)
		}
		pr.w.text(x, baseline(pr.cursor.Y(), size), f.Value, value, size)
		pr.cursor.Advance(lh)
	}
	if len(pr.plan.Reference) > 0 {
		pr.cursor.Advance(fieldGap)
	}
}

func (pr *pageRenderer) list(l *layout.List) {
	size := BodyFontSize
	lh := lineHeight(size)
	for _, item := range l.Items {
		indent := float64(item.Level) * listIndent
		contentW := pr.geom.ContentWidth() - indent - markerWidth
		rtl := item.Direction == text.RightToLeft

		markerX, contentX := pr.left()+indent, pr.left()+indent+markerWidth
		if rtl {
			markerX, contentX = pr.left()+contentW, pr.left()
		}

		for i, ln := range breakLines(pr.w.words(item.Inlines, size), contentW) {
			pr.cursor.Ensure(lh)
			y := baseline(pr.cursor.Y(), size)
			if i == 0 {
				pr.marker(item, markerX, y, size, rtl)
			}
			pr.w.drawLine(ln, contentX, y, contentW, item.Alignment, item.Direction, size)
			pr.cursor.Advance(lh)
		}
	}
	pr.cursor.Advance(blockGap)
}

// marker draws the bullet or number inside its column, against the content.
func (pr *pageRenderer) marker(item layout.ListItem, x, y, size float64, rtl bool) {
	m := strings.TrimSpace(item.Marker)
	if rtl && item.Index > 0 {
		m = "." + strconv.Itoa(item.Index)
	}
	run := pr.labelRun(m, false)
	if rtl {
		pr.w.text(x+cellPadding, y, run, m, size)
		return
	}
	pr.w.text(x+markerWidth-cellPadding-pr.w.width(run, m, size), y, run, m, size)
}

// placedCell is a cell with its resolved span and wrapped content.
type placedCell struct {
	cell  layout.TableCell
	span  int
	lines []line
}

func (pr *pageRenderer) table(t *layout.Table) {
	colW := pr.geom.ContentWidth() / float64(t.Columns)
	for _, row := range t.HeaderRows {
		pr.tableRow(row, t.Columns, colW, nil)
	}
	for _, row := range t.BodyRows {
		pr.tableRow(row, t.Columns, colW, t.HeaderRows)
	}
	pr.cursor.Advance(blockGap)
}

// tableRow draws one grid row. When the row starts a new page the header
// rows are repeated above it.
func (pr *pageRenderer) tableRow(row layout.TableRow, columns int, colW float64, header []layout.TableRow) {
	size := BodyFontSize
	lh := lineHeight(size)

	cells := fitSpans(row.Cells, columns)
	rows := 1
	for i := range cells {
		w := colW*float64(cells[i].span) - 2*cellPadding
		cells[i].lines = breakLines(pr.w.words(cells[i].cell.Inlines, size), w)
		if n := len(cells[i].lines); n > rows {
			rows = n
		}
	}
	height := float64(rows)*lh + 2*cellPadding

	if pr.cursor.Ensure(height) {
		for _, h := range header {
			pr.tableRow(h, columns, colW, nil)
		}
	}

	y := pr.cursor.Y()
	x := pr.left()
	pr.doc.SetLineWidth(valueLineWidth)
	for _, c := range cells {
		w := colW * float64(c.span)
		style := "D"
		if c.cell.Header {
			pr.doc.SetFillColor(240, 240, 240)
			style = "FD"
		}
		pr.doc.Rect(x, y, w, height, style)
		for i, l := range c.lines {
			top := y + cellPadding + float64(i)*lh
			pr.w.drawLine(l, x+cellPadding, baseline(top, size), w-2*cellPadding, c.cell.Alignment, c.cell.Direction, size)
		}
		x += w
	}
	pr.cursor.Advance(height)
}

// fitSpans resolves column spans so the row occupies exactly the grid.
// Trailing empty cells make room for spans; if that is not enough every
// span collapses to one column.
func fitSpans(cells []layout.TableCell, columns int) []placedCell {
	out := make([]placedCell, 0, len(cells))
	total := 0
	for _, c := range cells {
		span := c.ColSpan
		if span < 1 {
			span = 1
		}
		out = append(out, placedCell{cell: c, span: span})
		total += span
	}
	for total > columns && len(out) > 0 {
		last := out[len(out)-1]
		if last.span != 1 || len(last.cell.Inlines) != 0 {
			break
		}
		out = out[:len(out)-1]
		total--
	}
	if total > columns {
		for i := range out {
			out[i].span = 1
		}
	}
	return out
}
