package pagination

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch)
var (
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
	PageSizeA3     = PageSize{Width: 841.89, Height: 1190.55, Name: "A3"}
	PageSizeA5     = PageSize{Width: 419.53, Height: 595.28, Name: "A5"}
)

// Landscape returns the size rotated by 90 degrees.
func (s PageSize) Landscape() PageSize {
	if s.Width >= s.Height {
		return s
	}
	return PageSize{Width: s.Height, Height: s.Width, Name: s.Name}
}

// Margins represents page margins
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform returns margins of m on every side.
func Uniform(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

// Geometry is the printable frame of a page.
type Geometry struct {
	Size    PageSize
	Margins Margins
	// FooterBand is reserved above the bottom margin for the running footer.
	FooterBand float64
}

// ContentWidth returns the width between the side margins.
func (g Geometry) ContentWidth() float64 {
	return g.Size.Width - g.Margins.Left - g.Margins.Right
}

// Top returns the first writable y position.
func (g Geometry) Top() float64 {
	return g.Margins.Top
}

// Limit returns the y position body content must not cross.
func (g Geometry) Limit() float64 {
	return g.Size.Height - g.Margins.Bottom - g.FooterBand
}

// Cursor tracks the vertical write position as content flows across pages.
// The page break callback is invoked whenever a new page is started.
type Cursor struct {
	geom    Geometry
	newPage func()
	y       float64
	page    int
}

// NewCursor creates a cursor over g. newPage must start a fresh page in the
// output; it is called once by Start and again for every break.
func NewCursor(g Geometry, newPage func()) *Cursor {
	return &Cursor{geom: g, newPage: newPage}
}

// Start opens the first page.
func (c *Cursor) Start() {
	c.Break()
}

// Break moves to the top of a new page.
func (c *Cursor) Break() {
	if c.newPage != nil {
		c.newPage()
	}
	c.page++
	c.y = c.geom.Top()
}

// Y returns the current write position.
func (c *Cursor) Y() float64 { return c.y }

// Page returns the 1-based number of the current page.
func (c *Cursor) Page() int { return c.page }

// Remaining returns the vertical space left on the current page.
func (c *Cursor) Remaining() float64 {
	return c.geom.Limit() - c.y
}

// Ensure breaks the page when h does not fit in the remaining space. Content
// taller than a whole page is placed at the top of a fresh page and allowed to
// overflow rather than looping. It reports whether a break happened.
func (c *Cursor) Ensure(h float64) bool {
	if h <= c.Remaining() || c.y <= c.geom.Top() {
		return false
	}
	c.Break()
	return true
}

// Advance moves the write position down by h.
func (c *Cursor) Advance(h float64) {
	c.y += h
}
