package layout

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	htmlparser "github.com/Walidelmasri/MemoGeneratorV1/internal/parser/html"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// Fonts names the font family used for each script.
type Fonts struct {
	Latin  string
	Arabic string
}

// Family returns the family for s.
func (f Fonts) Family(s text.Script) string {
	if s == text.Arabic {
		return f.Arabic
	}
	return f.Latin
}

// Emphasis is the style context inherited down the inline tree.
type Emphasis struct {
	Bold   bool
	Italic bool
}

// Composer decomposes inline markup into styled runs and line breaks.
type Composer struct {
	Fonts Fonts
	// SkipLists leaves nested ul/ol out of the composed content; the list
	// planner lays them out as items of their own.
	SkipLists bool
}

// Compose returns the inline content of n's children in document order.
// Bold and italic accumulate from base and from b/strong/i/em ancestors.
// Underline applies only to the text directly inside a u element.
func (c Composer) Compose(n *html.Node, base Emphasis) []Inline {
	if n == nil {
		return nil
	}
	return c.compose(n, base, false)
}

// TextRun styles a plain string as a single run. Surrounding whitespace is
// trimmed; a blank string yields a zero Run.
func (c Composer) TextRun(s string, e Emphasis) Run {
	r, _ := c.run(strings.TrimSpace(s), e, false)
	return r
}

func (c Composer) compose(n *html.Node, ctx Emphasis, underline bool) []Inline {
	var out []Inline
	// set after nested block content so whatever follows starts a new line
	pendingBreak := false
	emit := func(in ...Inline) {
		if len(in) == 0 {
			return
		}
		if pendingBreak && len(out) > 0 && !endsWithBreak(out) {
			out = append(out, LineBreak{})
		}
		pendingBreak = false
		out = append(out, in...)
	}

	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.TextNode:
			if r, ok := c.run(ch.Data, ctx, underline); ok {
				emit(r)
			} else if ch.Data != "" {
				separate(out)
			}
		case html.ElementNode:
			tag := htmlparser.Tag(ch)
			if tag == "br" {
				emit(LineBreak{})
				continue
			}
			if c.SkipLists && (tag == "ul" || tag == "ol") {
				continue
			}

			next := ctx
			switch tag {
			case "b", "strong":
				next.Bold = true
			case "i", "em":
				next.Italic = true
			}

			if !isBlockTag(tag) {
				emit(c.compose(ch, next, tag == "u")...)
				continue
			}

			inner := c.compose(ch, next, false)
			if len(inner) == 0 {
				continue
			}
			pendingBreak = true
			emit(inner...)
			pendingBreak = true
		}
	}
	return out
}

func (c Composer) run(raw string, ctx Emphasis, underline bool) (Run, bool) {
	if IsBlankText(raw) {
		return Run{}, false
	}
	s := norm.NFC.String(collapseWhitespace(raw))
	script := text.Classify(s)
	return Run{
		Text:      s,
		Bold:      ctx.Bold,
		Italic:    ctx.Italic,
		Underline: underline,
		Script:    script,
		Family:    c.Fonts.Family(script),
	}, true
}

// collapseWhitespace folds runs of spaces, tabs and newlines into a single
// space without trimming the ends, so "Hello " keeps its separating space.
// No-break spaces are content and survive untouched.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastWasSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
		default:
			b.WriteRune(r)
			lastWasSpace = false
		}
	}
	return b.String()
}

// separate keeps the word boundary of a dropped whitespace-only text node by
// giving the preceding run a trailing space.
func separate(out []Inline) {
	if len(out) == 0 {
		return
	}
	r, ok := out[len(out)-1].(Run)
	if !ok || strings.HasSuffix(r.Text, " ") {
		return
	}
	r.Text += " "
	out[len(out)-1] = r
}

func endsWithBreak(in []Inline) bool {
	if len(in) == 0 {
		return false
	}
	_, ok := in[len(in)-1].(LineBreak)
	return ok
}

func isBlockTag(tag string) bool {
	switch tag {
	case "p", "div", "ul", "ol", "li", "table", "thead", "tbody", "tr", "td", "th":
		return true
	}
	return false
}
