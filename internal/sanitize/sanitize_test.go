package sanitize

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	htmlparser "github.com/Walidelmasri/MemoGeneratorV1/internal/parser/html"
)

func findFirst(n *html.Node, tag string) *html.Node {
	if htmlparser.Tag(n) == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findFirst(c, tag); f != nil {
			return f
		}
	}
	return nil
}

func TestSanitizeUnwrapsDisallowedTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"font", `<p>a <font color="red">b</font> c</p>`, `<p>a b c</p>`},
		{"heading and link", `<h1><a href="http://x">Title</a></h1>`, `Title`},
		{"comment", `<p>a<!-- hidden -->b</p>`, `<p>ab</p>`},
		{"script unwrapped", `<p>x</p><script>alert(1)</script>`, `<p>x</p>alert(1)`},
		{"title and style unwrapped", `<p><title>T</title><style>s</style>x</p>`, `<p>Tsx</p>`},
		{"noscript unwrapped", `<div><noscript><p>n</p></noscript></div>`, `<div><p>n</p></div>`},
		{"allowed inline", `<p><strong>b</strong><em>i</em><u>u</u></p>`, `<p><strong>b</strong><em>i</em><u>u</u></p>`},
		{"attributes stripped", `<p class="x" id="y" onclick="z()">t</p>`, `<p>t</p>`},
		{"nested unwrap keeps order", `<div><section><p>1</p><article>2</article></section>3</div>`, `<div><p>1</p>23</div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeStyle(t *testing.T) {
	tests := []struct {
		in        string
		wantStyle string
		hasStyle  bool
	}{
		{`<p style="color: red; text-align: RIGHT">x</p>`, "text-align: right", true},
		{`<p style="text-align: left; text-align: center">x</p>`, "text-align: center", true},
		{`<p style="color: red">x</p>`, "", false},
		{`<p style="text-align: middle">x</p>`, "", false},
		{`<p style="direction: rtl">x</p>`, "direction: rtl", true},
		{`<p style="text-align: justify; direction: RTL">x</p>`, "text-align: justify; direction: rtl", true},
	}
	for _, tt := range tests {
		root := Sanitize(tt.in)
		p := findFirst(root, "p")
		if p == nil {
			t.Fatalf("%q: no paragraph", tt.in)
		}
		got, ok := htmlparser.Attr(p, "style")
		if ok != tt.hasStyle || got != tt.wantStyle {
			t.Errorf("%q: style = %q (%v), want %q (%v)", tt.in, got, ok, tt.wantStyle, tt.hasStyle)
		}
	}
}

func TestSanitizeDirAndAlign(t *testing.T) {
	root := Sanitize(`<p dir="RTL" align="Center" lang="ar">x</p><p dir="auto" align="middle">y</p>`)
	ps := htmlparser.ChildrenByTag(root, "p")
	if len(ps) != 2 {
		t.Fatalf("got %d paragraphs", len(ps))
	}
	if v, _ := htmlparser.Attr(ps[0], "dir"); v != "rtl" {
		t.Errorf("dir = %q, want rtl", v)
	}
	if v, _ := htmlparser.Attr(ps[0], "align"); v != "center" {
		t.Errorf("align = %q, want center", v)
	}
	if _, ok := htmlparser.Attr(ps[0], "lang"); ok {
		t.Error("lang should be stripped")
	}
	if len(ps[1].Attr) != 0 {
		t.Errorf("invalid dir/align should be dropped, got %v", ps[1].Attr)
	}
}

func TestColspanClamping(t *testing.T) {
	tests := []struct {
		val  string
		want string
	}{
		{"1", ""},
		{"0", ""},
		{"abc", ""},
		{"51", ""},
		{"-3", ""},
		{"2.5", ""},
		{"5", "5"},
		{"50", "50"},
		{"2", "2"},
	}
	for _, tt := range tests {
		root := Sanitize(`<table><tr><td colspan="` + tt.val + `">a</td></tr></table>`)
		td := findFirst(root, "td")
		if td == nil {
			t.Fatalf("colspan=%q: no cell", tt.val)
		}
		got, _ := htmlparser.Attr(td, "colspan")
		if got != tt.want {
			t.Errorf("colspan=%q: got %q, want %q", tt.val, got, tt.want)
		}
	}
}

func TestRowspanRange(t *testing.T) {
	if got := clampSpan("200", MinRowSpan, MaxRowSpan); got != "200" {
		t.Errorf("rowspan 200 = %q", got)
	}
	if got := clampSpan("201", MinRowSpan, MaxRowSpan); got != "" {
		t.Errorf("rowspan 201 = %q", got)
	}
	if got := clampSpan(" 07 ", MinRowSpan, MaxRowSpan); got != "7" {
		t.Errorf("rowspan 07 = %q", got)
	}
	if got := clampSpan("99999999999999999999", MinRowSpan, MaxRowSpan); got != "" {
		t.Errorf("overflow should drop, got %q", got)
	}
}

func TestSpanOnlyOnCells(t *testing.T) {
	root := Sanitize(`<p colspan="3">x</p>`)
	p := findFirst(root, "p")
	if _, ok := htmlparser.Attr(p, "colspan"); ok {
		t.Error("colspan should be stripped from non-cell elements")
	}
	if Span(p, "colspan") != 1 {
		t.Error("Span should default to 1")
	}
	cell := findFirst(Sanitize(`<table><tr><th rowspan="4">x</th></tr></table>`), "th")
	if Span(cell, "rowspan") != 4 {
		t.Errorf("Span(rowspan) = %d, want 4", Span(cell, "rowspan"))
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		`<p>Hello <strong>World</strong></p>`,
		`<div><h2>Title</h2><p style="text-align:center;color:red">x &amp; y</p><!--c--><ul><li dir="RTL">مرحبا</li></ul></div>`,
		`<table><thead><tr><th colspan="3">A</th></tr></thead><tr><td rowspan="1">1</td></tr></table>`,
		`<p>unclosed <b>bold`,
		`<p><br></p><p>&nbsp;</p><p></p>`,
		`plain text with <blink>junk</blink>`,
		``,
	}
	for _, in := range inputs {
		once := String(in)
		twice := String(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once: %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestCleanTreeIdempotent(t *testing.T) {
	root := htmlparser.NewElement("body")
	p := htmlparser.NewElement("p", html.Attribute{Key: "style", Val: "direction: rtl; color: blue"})
	p.AppendChild(&html.Node{Type: html.CommentNode, Data: "note"})
	font := htmlparser.NewElement("font", html.Attribute{Key: "face", Val: "Arial"})
	font.AppendChild(htmlparser.NewText("a"))
	inner := htmlparser.NewElement("marquee")
	inner.AppendChild(htmlparser.NewText("b"))
	font.AppendChild(inner)
	p.AppendChild(font)
	p.AppendChild(htmlparser.NewText("c"))
	root.AppendChild(p)

	Clean(root)
	out, err := htmlparser.RenderChildren(root)
	if err != nil {
		t.Fatal(err)
	}
	if out != `<p style="direction: rtl">abc</p>` {
		t.Errorf("Clean produced %q", out)
	}

	again := htmlparser.Clone(root)
	Clean(again)
	if !htmlparser.Equal(root, again) {
		t.Error("Clean is not idempotent on trees")
	}
}

func TestSanitizeKeepsArabicText(t *testing.T) {
	out := String(`<p dir="rtl">مرحبا</p>`)
	if !strings.Contains(out, "مرحبا") || !strings.Contains(out, `dir="rtl"`) {
		t.Errorf("unexpected output %q", out)
	}
}
