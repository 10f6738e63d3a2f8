package pagination

import "testing"

func TestGeometry(t *testing.T) {
	g := Geometry{Size: PageSizeA4, Margins: Uniform(36), FooterBand: 20}
	if got, want := g.ContentWidth(), PageSizeA4.Width-72; got != want {
		t.Errorf("ContentWidth() = %v, want %v", got, want)
	}
	if got, want := g.Limit(), PageSizeA4.Height-56; got != want {
		t.Errorf("Limit() = %v, want %v", got, want)
	}
}

func TestLandscape(t *testing.T) {
	l := PageSizeLetter.Landscape()
	if l.Width != PageSizeLetter.Height || l.Height != PageSizeLetter.Width {
		t.Errorf("Landscape() = %+v", l)
	}
	if l.Landscape() != l {
		t.Error("Landscape() should be stable on landscape sizes")
	}
}

func TestCursorBreaks(t *testing.T) {
	pages := 0
	e := NewEngine()
	e.SetOptions(Options{PageWidth: 200, PageHeight: 200, MarginTop: 10, MarginBottom: 10})
	c := e.Begin(func() { pages++ })

	if pages != 1 || c.Page() != 1 || c.Y() != 10 {
		t.Fatalf("after Begin: pages=%d page=%d y=%v", pages, c.Page(), c.Y())
	}
	if c.Ensure(100) {
		t.Error("Ensure(100) should fit on an empty page")
	}
	c.Advance(100)
	if !c.Ensure(100) {
		t.Error("Ensure(100) should break with 70pt left")
	}
	if pages != 2 || c.Page() != 2 || c.Y() != 10 {
		t.Errorf("after break: pages=%d page=%d y=%v", pages, c.Page(), c.Y())
	}
}

func TestCursorOversizedContent(t *testing.T) {
	pages := 0
	c := NewCursor(Geometry{Size: PageSize{Width: 100, Height: 100}}, func() { pages++ })
	c.Start()
	if c.Ensure(500) {
		t.Error("oversized content at the top of a page must not break")
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}
}
