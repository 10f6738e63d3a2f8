package pagination

// Options represents options for the pagination engine
type Options struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	FooterBand   float64
}

// DefaultMargin is the memo page margin in points (half an inch).
const DefaultMargin = 36.0

// Engine hands out page cursors for a fixed page setup.
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			PageWidth:    PageSizeA4.Width,
			PageHeight:   PageSizeA4.Height,
			MarginTop:    DefaultMargin,
			MarginRight:  DefaultMargin,
			MarginBottom: DefaultMargin,
			MarginLeft:   DefaultMargin,
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Geometry returns the page frame described by the options.
func (e *Engine) Geometry() Geometry {
	return Geometry{
		Size: PageSize{
			Width:  e.options.PageWidth,
			Height: e.options.PageHeight,
			Name:   "Custom",
		},
		Margins: Margins{
			Top:    e.options.MarginTop,
			Right:  e.options.MarginRight,
			Bottom: e.options.MarginBottom,
			Left:   e.options.MarginLeft,
		},
		FooterBand: e.options.FooterBand,
	}
}

// Begin opens the first page and returns a cursor positioned at its top.
func (e *Engine) Begin(newPage func()) *Cursor {
	c := NewCursor(e.Geometry(), newPage)
	c.Start()
	return c
}
