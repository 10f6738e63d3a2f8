package pdf

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"github.com/sirupsen/logrus"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/document"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/layout"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/pagination"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/res"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

// Type sizes in points.
const (
	BodyFontSize   = 11.0
	LabelFontSize  = 10.0
	FooterFontSize = 9.0
	lineSpacing    = 1.35
)

const (
	blockGap       = 4.0
	fieldGap       = 6.0
	bannerGap      = 12.0
	cellPadding    = 4.0
	markerWidth    = 20.0
	listIndent     = 16.0
	footerBand     = 18.0
	valueLineWidth = 0.5
)

// Options represents options for the PDF renderer
type Options struct {
	FontDir string
	Fonts   []FontSpec
	Author  string
	Creator string
	Logger  logrus.FieldLogger
	// Debug outlines the content frame on every page
	Debug bool
}

// Renderer draws document plans with fpdf. It is safe for concurrent use;
// every call builds its own fpdf document.
type Renderer struct {
	opts  Options
	fonts *FontRegistry
	log   logrus.FieldLogger
}

// NewRenderer creates a new PDF renderer
func NewRenderer(opts Options) *Renderer {
	if len(opts.Fonts) == 0 {
		opts.Fonts = []FontSpec{LatinFonts, ArabicFonts}
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	return &Renderer{
		opts:  opts,
		fonts: Fonts(opts.FontDir, opts.Logger, opts.Fonts...),
		log:   opts.Logger,
	}
}

// Render draws p and returns the PDF bytes.
func (r *Renderer) Render(p *document.Plan) ([]byte, error) {
	if p == nil {
		return nil, ErrNoPlan
	}

	doc := newDocument(p.Page)
	doc.SetMargins(p.Margin, p.Margin, p.Margin)
	doc.SetAutoPageBreak(false, p.Margin)
	doc.SetTitle(p.Title, true)
	doc.SetAuthor(r.opts.Author, true)
	doc.SetCreator(r.opts.Creator, true)
	if !p.Created.IsZero() {
		doc.SetCreationDate(p.Created)
	}

	faces := r.fonts.install(doc)
	if err := doc.Error(); err != nil {
		return nil, &RenderError{Op: "register fonts", Err: err}
	}

	pr := &pageRenderer{
		doc:  doc,
		w:    newWriter(doc, faces),
		plan: p,
		log:  r.log,
	}
	if err := pr.registerImages(); err != nil {
		return nil, err
	}
	engine := pagination.NewEngine()
	engine.SetOptions(pr.pageSetup())
	pr.geom = engine.Geometry()

	footer := pr.pageFooter
	if r.opts.Debug {
		footer = func() {
			pr.pageFooter()
			pr.debugFrame()
		}
	}
	doc.SetHeaderFuncMode(pr.pageBackground, true)
	doc.SetFooterFunc(footer)

	pr.cursor = engine.Begin(doc.AddPage)

	pr.banner()
	pr.reference()
	pr.fields()
	pr.cursor.Advance(p.BodyGap)
	for _, b := range p.Body {
		pr.block(b)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Op: "output", Err: err}
	}
	r.log.WithFields(logrus.Fields{
		"pages": pr.cursor.Page(),
		"bytes": buf.Len(),
	}).Debug("rendered memo")
	return buf.Bytes(), nil
}

func newDocument(size pagination.PageSize) *fpdf.Fpdf {
	orientation := "P"
	w, h := size.Width, size.Height
	if w > h {
		orientation = "L"
		w, h = h, w
	}
	return fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
}

// pageRenderer holds the state of one Render call.
type pageRenderer struct {
	doc    *fpdf.Fpdf
	w      *writer
	plan   *document.Plan
	geom   pagination.Geometry
	cursor *pagination.Cursor
	log    logrus.FieldLogger
}

const (
	bannerImage = "banner"
	footerImage = "footer"
)

func (pr *pageRenderer) registerImages() error {
	for name, img := range map[string]*res.Image{bannerImage: pr.plan.Banner, footerImage: pr.plan.Footer} {
		if img == nil {
			continue
		}
		pr.doc.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: img.Type}, bytes.NewReader(img.Data))
		if err := pr.doc.Error(); err != nil {
			return &RenderError{Op: fmt.Sprintf("register %s image", name), Err: err}
		}
	}
	return nil
}

// pageSetup reserves room at the bottom of every page for the classification
// line and for whatever part of the footer art rises above the margin.
func (pr *pageRenderer) pageSetup() pagination.Options {
	m := pr.plan.Margin
	band := footerBand
	if h := pr.footerHeight(); h > m {
		band += h - m
	}
	return pagination.Options{
		PageWidth:    pr.plan.Page.Width,
		PageHeight:   pr.plan.Page.Height,
		MarginTop:    m,
		MarginRight:  m,
		MarginBottom: m,
		MarginLeft:   m,
		FooterBand:   band,
	}
}

func (pr *pageRenderer) footerHeight() float64 {
	if pr.plan.Footer == nil {
		return 0
	}
	return pr.plan.Page.Width * pr.plan.Footer.AspectRatio()
}

// pageBackground runs at the start of every page and lays the footer art
// across the bottom edge before any content is drawn.
func (pr *pageRenderer) pageBackground() {
	if pr.plan.Footer == nil {
		return
	}
	h := pr.footerHeight()
	pr.doc.ImageOptions(footerImage, 0, pr.plan.Page.Height-h, pr.plan.Page.Width, h,
		false, fpdf.ImageOptions{ImageType: pr.plan.Footer.Type}, 0, "")
}

func (pr *pageRenderer) pageFooter() {
	label := pr.plan.Classification
	run := pr.labelRun(label, false)
	size := FooterFontSize
	if run.Script == text.Arabic {
		label = visualText(label)
	}
	x := (pr.plan.Page.Width - pr.w.width(run, label, size)) / 2
	y := pr.geom.Limit() + footerBand - size/2
	pr.w.text(x, y, run, label, size)
}

func (pr *pageRenderer) debugFrame() {
	g := pr.geom
	pr.doc.SetDrawColor(255, 0, 0)
	pr.doc.SetLineWidth(0.1)
	pr.doc.Rect(g.Margins.Left, g.Top(), g.ContentWidth(), g.Limit()-g.Top(), "D")
	pr.doc.SetDrawColor(0, 0, 0)
}

func (pr *pageRenderer) banner() {
	img := pr.plan.Banner
	if img == nil {
		return
	}
	w := pr.geom.ContentWidth()
	h := w * img.AspectRatio()
	pr.doc.ImageOptions(bannerImage, pr.geom.Margins.Left, pr.cursor.Y(), w, h,
		false, fpdf.ImageOptions{ImageType: img.Type}, 0, "")
	pr.cursor.Advance(h + bannerGap)
}

func (pr *pageRenderer) left() float64 {
	return pr.geom.Margins.Left
}

func lineHeight(size float64) float64 {
	return size * lineSpacing
}

// baseline returns the text baseline for a line box starting at top.
func baseline(top, size float64) float64 {
	return top + size
}

func (pr *pageRenderer) block(b layout.Block) {
	switch v := b.(type) {
	case *layout.Spacer:
		pr.cursor.Ensure(v.Height)
		pr.cursor.Advance(v.Height)
	case *layout.Paragraph:
		pr.paragraph(v)
	case *layout.List:
		pr.list(v)
	case *layout.Table:
		pr.table(v)
	default:
		pr.log.WithField("kind", b.Kind()).Warn("skipping unknown block")
	}
}

func (pr *pageRenderer) paragraph(p *layout.Paragraph) {
	size := BodyFontSize
	lh := lineHeight(size)
	width := pr.geom.ContentWidth()
	for _, l := range breakLines(pr.w.words(p.Inlines, size), width) {
		pr.cursor.Ensure(lh)
		pr.w.drawLine(l, pr.left(), baseline(pr.cursor.Y(), size), width, p.Alignment, p.Direction, size)
		pr.cursor.Advance(lh)
	}
	pr.cursor.Advance(blockGap)
}
