package document

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/layout"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/pagination"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/parser/markdown"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/res"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/sanitize"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// DefaultBodyGap is the vertical space between the header fields and the body.
const DefaultBodyGap = 18.0

// DateLayout formats the memo date.
const DateLayout = "2006-01-02"

// Config carries the page setup shared by every request.
type Config struct {
	PageSize     pagination.PageSize
	Margin       float64
	BodyGap      float64
	SpacerHeight float64
	Fonts        layout.Fonts
	Logger       logrus.FieldLogger
	Now          func() time.Time
}

// Assembler turns Input into a Plan. It holds no per-request state and is
// safe for concurrent use.
type Assembler struct {
	cfg      Config
	builder  *layout.Builder
	composer layout.Composer
	log      logrus.FieldLogger
}

// NewAssembler creates an assembler, filling unset configuration with defaults.
func NewAssembler(cfg Config) *Assembler {
	if cfg.PageSize.Width <= 0 || cfg.PageSize.Height <= 0 {
		cfg.PageSize = pagination.PageSizeA4
	}
	if cfg.Margin <= 0 {
		cfg.Margin = pagination.DefaultMargin
	}
	if cfg.BodyGap <= 0 {
		cfg.BodyGap = DefaultBodyGap
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	return &Assembler{
		cfg: cfg,
		builder: layout.NewBuilder(layout.Options{
			Fonts:        cfg.Fonts,
			SpacerHeight: cfg.SpacerHeight,
			Logger:       cfg.Logger,
		}),
		composer: layout.Composer{Fonts: cfg.Fonts},
		log:      cfg.Logger,
	}
}

// Assemble builds the plan for in. It never fails: undecodable images are
// dropped and malformed markup degrades to text.
func (a *Assembler) Assemble(in Input) *Plan {
	now := a.cfg.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	p := &Plan{
		Page:           a.cfg.PageSize,
		Margin:         a.cfg.Margin,
		Title:          strings.TrimSpace(in.Subject),
		Created:        now,
		Fonts:          a.cfg.Fonts,
		Banner:         a.image("banner", in.Banner),
		Footer:         a.image("footer", in.Footer),
		BodyGap:        a.cfg.BodyGap,
		Body:           a.Body(in.Body, in.Format),
		Classification: FooterLabel(in.Classification),
	}
	if in.Margin > 0 {
		p.Margin = in.Margin
	}

	p.Fields = append(p.Fields, a.field(LabelTo, in.To, true, fieldWidth))
	if strings.TrimSpace(in.Through) != "" {
		p.Fields = append(p.Fields, a.field(LabelThrough, in.Through, false, throughFieldWidth))
	}
	p.Fields = append(p.Fields,
		a.field(LabelFrom, in.From, true, fieldWidth),
		a.field(LabelSubject, in.Subject, true, fieldWidth),
	)

	if strings.TrimSpace(in.MemoNumber) != "" {
		p.Reference = append(p.Reference, a.field(LabelMemoNumber, in.MemoNumber, false, 0))
	}
	p.Reference = append(p.Reference, a.field(LabelDate, date.Format(DateLayout), false, 0))

	a.log.WithFields(logrus.Fields{
		"fields": len(p.Fields),
		"blocks": len(p.Body),
		"banner": p.Banner != nil,
		"footer": p.Footer != nil,
	}).Debug("assembled memo plan")
	return p
}

// Body lays out the memo body. Markup-free text is split into one paragraph
// per line; anything else is sanitized and laid out as blocks.
func (a *Assembler) Body(body string, format Format) []layout.Block {
	if format == FormatMarkdown {
		converted, err := markdown.ToHTML(body)
		if err != nil {
			a.log.WithError(err).Debug("rendering markdown body as plain text")
			return a.builder.BuildPlainText(body)
		}
		body = converted
	}
	if !strings.Contains(body, "<") {
		return a.builder.BuildPlainText(body)
	}
	return a.builder.Build(sanitize.Sanitize(body))
}

func (a *Assembler) field(label Label, value string, underline bool, width float64) Field {
	v := strings.TrimSpace(value)
	return Field{
		Label:      label,
		Value:      a.composer.TextRun(v, layout.Emphasis{}),
		Direction:  text.DirectionOf(v),
		Underline:  underline,
		WidthRatio: width,
	}
}

func (a *Assembler) image(slot string, data []byte) *res.Image {
	if len(data) == 0 {
		return nil
	}
	img, err := res.NormalizeImage(data)
	if err != nil {
		a.log.WithError(err).WithField("slot", slot).Debug("omitting undecodable image")
		return nil
	}
	return img
}

// FooterLabel returns the parenthesized classification shown on every page.
func FooterLabel(classification string) string {
	c := strings.TrimSpace(classification)
	if c == "" {
		c = ClassificationPlaceholder
	}
	return "(" + c + ")"
}

// Filename suggests an output name for a memo generated at t.
func Filename(t time.Time) string {
	return "memo_" + t.Format("20060102_150405") + ".pdf"
}
