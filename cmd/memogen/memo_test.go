package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	memogen "github.com/Walidelmasri/MemoGeneratorV1"
)

type stubLoader map[string][]byte

func (s stubLoader) LoadImage(ref string) ([]byte, error) {
	if data, ok := s[ref]; ok {
		return data, nil
	}
	return nil, errors.New("not found")
}

func writeMemo(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadMemo(t *testing.T) {
	path := writeMemo(t, `
to: All staff
from: HR
subject: إجازة
format: markdown
classification: Internal
memo_number: HR-12
date: "2024-05-01"
banner: banner.png
margin: 40
body: |
  First line

  **Second**
`)
	m, err := readMemo(path)
	if err != nil {
		t.Fatalf("readMemo() error = %v", err)
	}
	if m.dir != filepath.Dir(path) {
		t.Errorf("dir = %q", m.dir)
	}

	in, err := m.input(stubLoader{"banner.png": []byte("png")})
	if err != nil {
		t.Fatalf("input() error = %v", err)
	}
	if in.To != "All staff" || in.Subject != "إجازة" || in.MemoNumber != "HR-12" {
		t.Errorf("unexpected input: %+v", in)
	}
	if in.Format != memogen.FormatMarkdown {
		t.Errorf("Format = %q", in.Format)
	}
	if !in.Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", in.Date)
	}
	if string(in.Banner) != "png" || in.Footer != nil {
		t.Errorf("images = %q, %q", in.Banner, in.Footer)
	}
	if in.Margin != 40 {
		t.Errorf("Margin = %v", in.Margin)
	}
	if in.Body != "First line\n\n**Second**\n" {
		t.Errorf("Body = %q", in.Body)
	}
}

func TestMemoInputErrors(t *testing.T) {
	tests := []struct {
		name string
		memo memoFile
	}{
		{"bad date", memoFile{Date: "05/01/2024"}},
		{"missing banner", memoFile{Banner: "nope.png"}},
		{"missing footer", memoFile{Footer: "nope.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.memo.input(stubLoader{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestReadMemoInvalidYAML(t *testing.T) {
	if _, err := readMemo(writeMemo(t, "to: [unclosed")); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := readMemo(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected a read error")
	}
}

func TestPageSizeOption(t *testing.T) {
	for _, name := range []string{"", "A4", "a3", "A5", "letter", "Legal"} {
		if _, err := pageSizeOption(name); err != nil {
			t.Errorf("pageSizeOption(%q) error = %v", name, err)
		}
	}
	if _, err := pageSizeOption("tabloid"); err == nil {
		t.Error("expected an error for an unknown size")
	}
}
