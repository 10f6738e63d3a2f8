package layout

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	htmlparser "github.com/Walidelmasri/MemoGeneratorV1/internal/parser/html"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// DefaultSpacerHeight is the gap in points contributed by an empty line.
const DefaultSpacerHeight = 12.0

// Options represents options for the block layout builder
type Options struct {
	Fonts        Fonts
	SpacerHeight float64
	Logger       logrus.FieldLogger
}

// Builder turns a sanitized body tree into an ordered block sequence.
// A Builder holds no per-document state and may be shared.
type Builder struct {
	spacerHeight float64
	inline       Composer
	item         Composer
	log          logrus.FieldLogger
}

// NewBuilder creates a block builder.
func NewBuilder(opts Options) *Builder {
	b := &Builder{
		spacerHeight: opts.SpacerHeight,
		inline:       Composer{Fonts: opts.Fonts},
		item:         Composer{Fonts: opts.Fonts, SkipLists: true},
		log:          opts.Logger,
	}
	if b.spacerHeight <= 0 {
		b.spacerHeight = DefaultSpacerHeight
	}
	if b.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		b.log = l
	}
	return b
}

// Build lays out the children of a sanitized <body>. Blocks are emitted in
// document order. Loose inline content between blocks is gathered into an
// implicit paragraph.
func (b *Builder) Build(body *html.Node) []Block {
	if body == nil {
		return nil
	}
	return b.buildChildren(body, nil)
}

func (b *Builder) buildChildren(parent *html.Node, fallbacks []*html.Node) []Block {
	var (
		blocks  []Block
		pending []*html.Node
	)
	flush := func() {
		if len(pending) == 0 {
			return
		}
		p := htmlparser.NewElement("p")
		for _, n := range pending {
			p.AppendChild(htmlparser.Clone(n))
		}
		pending = nil
		if !IsBlank(p) {
			blocks = append(blocks, b.paragraph(p, fallbacks))
		}
	}

	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if len(pending) > 0 || !IsBlankText(c.Data) {
				pending = append(pending, c)
			}
		case html.ElementNode:
			tag := htmlparser.Tag(c)
			if tag != "br" && !isBlockTag(tag) {
				pending = append(pending, c)
				continue
			}
			flush()
			blocks = append(blocks, b.block(c, fallbacks)...)
		}
	}
	flush()
	return blocks
}

func (b *Builder) block(n *html.Node, fallbacks []*html.Node) []Block {
	switch tag := htmlparser.Tag(n); tag {
	case "br":
		return []Block{b.spacer()}
	case "ul", "ol":
		if l := b.list(n, fallbacks); l != nil {
			return []Block{l}
		}
		b.log.WithField("tag", tag).Debug("skipping list without items")
		return nil
	case "table":
		if t := b.table(n); t != nil {
			return []Block{t}
		}
		b.log.Debug("skipping table without rows or columns")
		return nil
	case "div":
		if hasBlockChildren(n) {
			return b.buildChildren(n, append([]*html.Node{n}, fallbacks...))
		}
		return []Block{b.paragraph(n, fallbacks)}
	case "p":
		return []Block{b.paragraph(n, fallbacks)}
	default:
		b.log.WithField("tag", tag).Debug("laying out unrecognized block as paragraph")
		return []Block{b.paragraph(n, fallbacks)}
	}
}

// paragraph classifies n as a spacer when it is blank, otherwise resolves
// its direction and alignment and composes its runs.
func (b *Builder) paragraph(n *html.Node, fallbacks []*html.Node) Block {
	if IsBlank(n) {
		return b.spacer()
	}
	inlines := b.inline.Compose(n, Emphasis{})
	if len(inlines) == 0 {
		return b.spacer()
	}
	align, dir := Resolve(n, fallbacks...)
	return &Paragraph{
		Alignment: align,
		Direction: dir,
		Inlines:   inlines,
	}
}

func (b *Builder) spacer() Block {
	return &Spacer{Height: b.spacerHeight}
}

// BuildPlainText lays out a body that carries no markup: one paragraph per
// line, each aligned by its own script, with blank lines as spacers.
func (b *Builder) BuildPlainText(s string) []Block {
	if IsBlankText(s) {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var blocks []Block
	for _, line := range strings.Split(s, "\n") {
		if IsBlankText(line) {
			blocks = append(blocks, b.spacer())
			continue
		}
		r := b.inline.TextRun(line, Emphasis{})
		dir := text.DirectionOf(line)
		blocks = append(blocks, &Paragraph{
			Alignment: DefaultAlignment(dir),
			Direction: dir,
			Inlines:   []Inline{r},
		})
	}
	return blocks
}

func hasBlockChildren(n *html.Node) bool {
	for _, c := range htmlparser.ElementChildren(n) {
		switch htmlparser.Tag(c) {
		case "p", "div", "ul", "ol", "table":
			return true
		}
	}
	return false
}
