package pdf

import (
	"strings"
	"unicode"

	"codeberg.org/go-pdf/fpdf"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/layout"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// writer measures and draws runs on one document.
type writer struct {
	doc   *fpdf.Fpdf
	faces faceTable
	// tr converts UTF-8 to cp1252 for the core fallback fonts.
	tr func(string) string
}

func newWriter(doc *fpdf.Fpdf, faces faceTable) *writer {
	return &writer{doc: doc, faces: faces, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

// use selects the face for r and returns s encoded for that face.
func (w *writer) use(r layout.Run, s string, size float64) string {
	fam, st, utf8 := w.faces.resolve(r.Family, r.Style())
	w.doc.SetFont(fam, st, size)
	if !utf8 {
		return w.tr(s)
	}
	return s
}

func (w *writer) width(r layout.Run, s string, size float64) float64 {
	return w.doc.GetStringWidth(w.use(r, s, size))
}

func (w *writer) text(x, baseline float64, r layout.Run, s string, size float64) {
	w.doc.Text(x, baseline, w.use(r, s, size))
}

// piece is the part of a word that falls inside one run.
type piece struct {
	run   layout.Run
	text  string
	width float64
}

// word is an unbreakable unit; adjacent runs without whitespace between them
// contribute pieces to the same word.
type word struct {
	pieces []piece
	width  float64
	// space is the width of the whitespace following the word, 0 if none.
	space float64
}

type line struct {
	words []word
	// last marks the final line of a paragraph or the line before a break;
	// justified text is not stretched on it.
	last bool
}

func (l line) naturalWidth() float64 {
	total := 0.0
	for i, w := range l.words {
		total += w.width
		if i < len(l.words)-1 {
			total += w.space
		}
	}
	return total
}

// words splits inlines into segments separated by line breaks.
func (w *writer) words(inlines []layout.Inline, size float64) [][]word {
	segments := [][]word{nil}
	open := false
	for _, in := range inlines {
		switch v := in.(type) {
		case layout.LineBreak:
			segments = append(segments, nil)
			open = false
		case layout.Run:
			seg := &segments[len(segments)-1]
			for _, tok := range splitTokens(v.Text) {
				if strings.TrimSpace(tok) == "" {
					if n := len(*seg); n > 0 {
						(*seg)[n-1].space = w.width(v, " ", size)
					}
					open = false
					continue
				}
				p := piece{run: v, text: tok, width: w.width(v, tok, size)}
				if open && len(*seg) > 0 {
					last := &(*seg)[len(*seg)-1]
					last.pieces = append(last.pieces, p)
					last.width += p.width
					continue
				}
				*seg = append(*seg, word{pieces: []piece{p}, width: p.width})
				open = true
			}
		}
	}
	return segments
}

// splitTokens splits text into alternating word and single-space tokens.
// No-break spaces stay inside their word.
func splitTokens(s string) []string {
	var (
		tokens []string
		cur    []rune
	)
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}
	lastSpace := false
	for _, r := range s {
		isSp := unicode.IsSpace(r) && r != '\u00a0'
		switch {
		case isSp && !lastSpace:
			flush()
			tokens = append(tokens, " ")
		case isSp:
		default:
			cur = append(cur, r)
		}
		lastSpace = isSp
	}
	flush()
	return tokens
}

// breakLines fills lines greedily up to maxWidth. A word wider than the line
// is placed on its own line.
func breakLines(segments [][]word, maxWidth float64) []line {
	var lines []line
	for _, seg := range segments {
		if len(seg) == 0 {
			lines = append(lines, line{last: true})
			continue
		}
		cur := line{}
		width := 0.0
		for _, wd := range seg {
			if len(cur.words) > 0 {
				gap := cur.words[len(cur.words)-1].space
				if width+gap+wd.width > maxWidth {
					lines = append(lines, cur)
					cur, width = line{}, 0
				} else {
					width += gap
				}
			}
			cur.words = append(cur.words, wd)
			width += wd.width
		}
		cur.last = true
		lines = append(lines, cur)
	}
	return lines
}

// drawLine places one line inside [x, x+maxWidth]. Right-to-left lines are
// drawn in visual order: words reversed and Arabic pieces mirrored.
func (w *writer) drawLine(l line, x, baseline, maxWidth float64, align layout.Alignment, dir text.Direction, size float64) {
	if len(l.words) == 0 {
		return
	}
	natural := l.naturalWidth()
	extra := 0.0
	start := x
	switch align {
	case layout.AlignRight:
		start = x + maxWidth - natural
	case layout.AlignCenter:
		start = x + (maxWidth-natural)/2
	case layout.AlignJustify:
		if !l.last && len(l.words) > 1 && natural < maxWidth {
			extra = (maxWidth - natural) / float64(len(l.words)-1)
		} else if dir == text.RightToLeft {
			start = x + maxWidth - natural
		}
	}
	if start < x {
		start = x
	}

	words := l.words
	rtl := dir == text.RightToLeft
	cursor := start
	for i := range words {
		wd := words[i]
		gapIndex := i
		if rtl {
			wd = words[len(words)-1-i]
			// in visual order the gap after this word belongs to the logically
			// preceding one
			gapIndex = len(words) - 2 - i
		}
		pieces := wd.pieces
		for j := range pieces {
			p := pieces[j]
			if rtl {
				p = pieces[len(pieces)-1-j]
			}
			s := p.text
			if p.run.Script == text.Arabic {
				s = text.VisualWord(s)
			}
			w.text(cursor, baseline, p.run, s, size)
			cursor += p.width
		}
		if i < len(words)-1 && gapIndex >= 0 {
			cursor += words[gapIndex].space + extra
		}
	}
}
