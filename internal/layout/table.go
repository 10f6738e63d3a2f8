package layout

import (
	"golang.org/x/net/html"

	htmlparser "github.com/Walidelmasri/MemoGeneratorV1/internal/parser/html"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/sanitize"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

type tableRowRef struct {
	node   *html.Node
	inHead bool
}

// table plans a rectangular grid. Rows are collected from thead, tbody and
// tfoot sections and from bare tr children, in document order. A table
// without rows or cells yields nil.
func (b *Builder) table(n *html.Node) *Table {
	var refs []tableRowRef
	for _, c := range htmlparser.ElementChildren(n) {
		switch htmlparser.Tag(c) {
		case "thead":
			for _, tr := range htmlparser.ChildrenByTag(c, "tr") {
				refs = append(refs, tableRowRef{node: tr, inHead: true})
			}
		case "tbody", "tfoot":
			for _, tr := range htmlparser.ChildrenByTag(c, "tr") {
				refs = append(refs, tableRowRef{node: tr})
			}
		case "tr":
			refs = append(refs, tableRowRef{node: c})
		}
	}

	columns := 0
	for _, r := range refs {
		if cells := len(htmlparser.ChildrenByTag(r.node, "td", "th")); cells > columns {
			columns = cells
		}
	}
	if len(refs) == 0 || columns == 0 {
		return nil
	}

	t := &Table{Columns: columns}
	for _, r := range refs {
		cells := htmlparser.ChildrenByTag(r.node, "td", "th")
		header := r.inHead || hasHeaderCell(cells)
		row := TableRow{Cells: make([]TableCell, 0, columns)}
		for _, cell := range cells {
			row.Cells = append(row.Cells, b.cell(cell, r.node, header))
		}
		for len(row.Cells) < columns {
			row.Cells = append(row.Cells, TableCell{
				Header:    header,
				ColSpan:   1,
				Alignment: AlignLeft,
				Direction: text.LeftToRight,
			})
		}
		if header {
			t.HeaderRows = append(t.HeaderRows, row)
		} else {
			t.BodyRows = append(t.BodyRows, row)
		}
	}
	return t
}

func (b *Builder) cell(n, row *html.Node, header bool) TableCell {
	align, dir := Resolve(n, row)
	return TableCell{
		Inlines:   b.inline.Compose(n, Emphasis{Bold: header}),
		Header:    header,
		ColSpan:   sanitize.Span(n, "colspan"),
		Alignment: align,
		Direction: dir,
	}
}

func hasHeaderCell(cells []*html.Node) bool {
	for _, c := range cells {
		if htmlparser.Tag(c) == "th" {
			return true
		}
	}
	return false
}
