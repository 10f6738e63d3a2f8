package res

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	return img
}

func encode(t *testing.T, f func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := f(&buf, testImage()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeImage(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantType string
	}{
		{"png", encode(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) }), "PNG"},
		{"jpeg", encode(t, func(b *bytes.Buffer, i image.Image) error { return jpeg.Encode(b, i, nil) }), "JPG"},
		{"bmp", encode(t, func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) }), "PNG"},
		{"svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20"><rect width="40" height="20" fill="#003366"/></svg>`), "PNG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NormalizeImage(tt.data)
			if err != nil {
				t.Fatalf("NormalizeImage() error = %v", err)
			}
			if img.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", img.Type, tt.wantType)
			}
			if got := img.AspectRatio(); got != 0.5 {
				t.Errorf("AspectRatio() = %v, want 0.5", got)
			}
		})
	}
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not an image")} {
		if _, err := NormalizeImage(data); !errors.Is(err, ErrUnsupportedImage) {
			t.Errorf("NormalizeImage(%q) error = %v, want ErrUnsupportedImage", data, err)
		}
	}
}

func TestLoaderDataURL(t *testing.T) {
	raw := encode(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })
	l := NewLoader("")
	img, err := l.LoadImage("data:image/png;base64," + base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if img.Width != 4 || img.Height != 2 {
		t.Errorf("size = %dx%d", img.Width, img.Height)
	}

	res, err := l.Load("data:text/plain,Hello%20World")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(res.Data) != "Hello World" || res.Type != ResourceTypeOther {
		t.Errorf("Load() = %q (%v)", res.Data, res.Type)
	}
}

func TestLoaderSearchPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Amiri-Regular.ttf"), []byte("font"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(t.TempDir())
	if _, err := l.LoadFont("Amiri-Regular.ttf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before adding search path, got %v", err)
	}

	l.AddSearchPath(dir)
	res, err := l.LoadFont("Amiri-Regular.ttf")
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	if res.Type != ResourceTypeFont || string(res.Data) != "font" {
		t.Errorf("LoadFont() = %+v", res)
	}
}

func TestLoaderRejectsNonFont(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banner.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(dir).LoadFont("banner.png"); err == nil {
		t.Error("expected error loading an image as a font")
	}
}
