package html

import (
	"testing"

	"golang.org/x/net/html"
)

func TestParseFragment(t *testing.T) {
	doc, err := NewParser().ParseString(`<p>one</p><p dir="rtl">two</p>`)
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}
	if Tag(doc.Root) != "body" {
		t.Fatalf("root tag = %q, want body", Tag(doc.Root))
	}
	children := ElementChildren(doc.Root)
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if v, ok := Attr(children[1], "DIR"); !ok || v != "rtl" {
		t.Errorf("Attr(dir) = %q, %v", v, ok)
	}
	if got := TextContent(doc.Root); got != "onetwo" {
		t.Errorf("TextContent = %q", got)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	in := `<p>a <strong>b</strong></p><ul><li>c</li></ul>`
	doc, err := NewParser().ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := doc.Render()
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("Render() = %q, want %q", out, in)
	}
}

func TestTableGetsImplicitTbody(t *testing.T) {
	doc, _ := NewParser().ParseString(`<table><tr><td>x</td></tr></table>`)
	table := ElementChildren(doc.Root)[0]
	if len(ChildrenByTag(table, "tbody")) != 1 {
		t.Fatal("expected parser to insert tbody")
	}
	if !HasDescendant(table, "td") {
		t.Error("HasDescendant(td) = false")
	}
}

func TestCloneAndEqual(t *testing.T) {
	doc, _ := NewParser().ParseString(`<p style="text-align: left">x<br>y</p>`)
	c := Clone(doc.Root)
	if !Equal(doc.Root, c) {
		t.Fatal("clone should equal original")
	}
	c.FirstChild.Attr = nil
	if Equal(doc.Root, c) {
		t.Fatal("modified clone should differ")
	}
	if !Equal(nil, nil) || Equal(doc.Root, nil) {
		t.Error("nil handling wrong")
	}
}

func TestNewElement(t *testing.T) {
	el := NewElement("p", html.Attribute{Key: "dir", Val: "rtl"})
	el.AppendChild(NewText("hi"))
	if Tag(el) != "p" || TextContent(el) != "hi" {
		t.Errorf("unexpected element %q / %q", Tag(el), TextContent(el))
	}
}
