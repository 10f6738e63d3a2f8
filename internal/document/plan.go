// Package document assembles memo input into a renderer-agnostic Plan: page
// setup, banner and footer art, the labeled header fields, the body blocks and
// the footer classification line.
package document

import (
	"time"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/layout"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/pagination"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/res"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// Format selects how Input.Body is interpreted.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Input is one memo generation request.
type Input struct {
	To             string
	Through        string
	From           string
	Subject        string
	Body           string
	Format         Format
	Classification string
	MemoNumber     string
	// Date defaults to the assembler's clock when zero.
	Date time.Time

	// Banner and Footer are raw image bytes; nil means absent.
	Banner []byte
	Footer []byte
	// Margin overrides the configured page margin when positive.
	Margin float64
}

// Label is a bilingual field caption.
type Label struct {
	English string
	Arabic  string
}

// Field is one labeled header row.
type Field struct {
	Label     Label
	Value     layout.Run
	Direction text.Direction
	Underline bool
	// WidthRatio is the share of the content width the value line spans.
	WidthRatio float64
}

// Plan is the fully resolved description of one memo. It is built once per
// request and not modified afterwards.
type Plan struct {
	Page    pagination.PageSize
	Margin  float64
	Title   string
	Created time.Time
	// Fonts are the families runs were styled with; chrome text uses them too.
	Fonts layout.Fonts

	Banner *res.Image
	Footer *res.Image

	// Fields are the To/Through/From/Subject rows in order.
	Fields []Field
	// Reference holds the memo number and date cluster.
	Reference []Field

	BodyGap float64
	Body    []layout.Block

	// Classification is the parenthesized footer label.
	Classification string
}

// Field looks up a header field by its English label.
func (p *Plan) Field(english string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Label.English == english {
			return f, true
		}
	}
	return Field{}, false
}
