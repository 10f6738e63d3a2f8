package document

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/layout"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/pagination"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/text"
)

var fixedNow = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func newTestAssembler() *Assembler {
	return NewAssembler(Config{
		Fonts: layout.Fonts{Latin: "latin", Arabic: "arabic"},
		Now:   func() time.Time { return fixedNow },
	})
}

func TestAssembleOmitsBlankThrough(t *testing.T) {
	a := newTestAssembler()
	for _, through := range []string{"", "   "} {
		p := a.Assemble(Input{To: "All staff", Through: through, From: "HR", Subject: "Leave"})
		if _, ok := p.Field(LabelThrough.English); ok {
			t.Errorf("Through %q: expected no Through field", through)
		}
		if len(p.Fields) != 3 {
			t.Errorf("Through %q: expected 3 fields, got %d", through, len(p.Fields))
		}
	}
}

func TestAssembleFields(t *testing.T) {
	p := newTestAssembler().Assemble(Input{
		To:      "المدير العام",
		Through: "Deputy",
		From:    "HR",
		Subject: "Leave policy",
	})

	want := []string{"To", "Through", "From", "Subject"}
	if len(p.Fields) != len(want) {
		t.Fatalf("Expected %d fields, got %d", len(want), len(p.Fields))
	}
	for i, w := range want {
		if p.Fields[i].Label.English != w {
			t.Errorf("field %d = %q, want %q", i, p.Fields[i].Label.English, w)
		}
	}

	to := p.Fields[0]
	if to.Direction != text.RightToLeft || to.Value.Family != "arabic" || !to.Underline {
		t.Errorf("To field = %+v", to)
	}
	through := p.Fields[1]
	if through.Underline {
		t.Error("Through field must not be underlined")
	}
	if through.WidthRatio >= p.Fields[0].WidthRatio {
		t.Errorf("Through width %v should be narrower than %v", through.WidthRatio, p.Fields[0].WidthRatio)
	}
	if p.Title != "Leave policy" {
		t.Errorf("Title = %q", p.Title)
	}
}

func TestAssembleDefaults(t *testing.T) {
	p := newTestAssembler().Assemble(Input{Body: "<p>x</p>"})
	if p.Page != pagination.PageSizeA4 {
		t.Errorf("Page = %+v, want A4", p.Page)
	}
	if p.Margin != pagination.DefaultMargin {
		t.Errorf("Margin = %v", p.Margin)
	}
	if p.BodyGap != DefaultBodyGap {
		t.Errorf("BodyGap = %v", p.BodyGap)
	}
	if p.Classification != "(—)" {
		t.Errorf("Classification = %q, want (—)", p.Classification)
	}
	if p.Banner != nil || p.Footer != nil {
		t.Error("expected no images")
	}
	if len(p.Reference) != 1 || p.Reference[0].Value.Text != "2024-03-05" {
		t.Errorf("Reference = %+v", p.Reference)
	}
}

func TestAssembleOverrides(t *testing.T) {
	p := newTestAssembler().Assemble(Input{
		Classification: " Confidential ",
		MemoNumber:     "HR-042",
		Date:           time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		Margin:         50,
	})
	if p.Classification != "(Confidential)" {
		t.Errorf("Classification = %q", p.Classification)
	}
	if p.Margin != 50 {
		t.Errorf("Margin = %v", p.Margin)
	}
	if len(p.Reference) != 2 {
		t.Fatalf("Expected memo number and date, got %d", len(p.Reference))
	}
	if p.Reference[0].Value.Text != "HR-042" || p.Reference[1].Value.Text != "2023-12-31" {
		t.Errorf("Reference = %+v", p.Reference)
	}
}

func TestAssembleImages(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 2))); err != nil {
		t.Fatal(err)
	}
	p := newTestAssembler().Assemble(Input{Banner: buf.Bytes(), Footer: []byte("garbage")})
	if p.Banner == nil || p.Banner.Width != 10 {
		t.Errorf("Banner = %+v", p.Banner)
	}
	if p.Footer != nil {
		t.Error("undecodable footer should be omitted")
	}
}

func TestBodyFormats(t *testing.T) {
	a := newTestAssembler()
	tests := []struct {
		name   string
		body   string
		format Format
		kinds  []layout.BlockKind
	}{
		{"html", "<p>a</p><p><br></p><ul><li>b</li></ul>", FormatHTML, []layout.BlockKind{layout.KindParagraph, layout.KindSpacer, layout.KindList}},
		{"plain text", "line one\n\nسطر", "", []layout.BlockKind{layout.KindParagraph, layout.KindSpacer, layout.KindParagraph}},
		{"markdown", "**bold** text\n\n- one\n- two\n", FormatMarkdown, []layout.BlockKind{layout.KindParagraph, layout.KindList}},
		{"empty", "", FormatHTML, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := a.Body(tt.body, tt.format)
			if len(blocks) != len(tt.kinds) {
				t.Fatalf("Expected %d blocks, got %d", len(tt.kinds), len(blocks))
			}
			for i, k := range tt.kinds {
				if blocks[i].Kind() != k {
					t.Errorf("block %d kind = %v, want %v", i, blocks[i].Kind(), k)
				}
			}
		})
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(fixedNow); got != "memo_20240305_140709.pdf" {
		t.Errorf("Filename() = %q", got)
	}
}
