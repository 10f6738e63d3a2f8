package res

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrUnsupportedImage is returned for bytes no registered decoder accepts.
var ErrUnsupportedImage = errors.New("unsupported image format")

// SVGRasterWidth is the pixel width SVG artwork is rasterized at. Banners and
// footers span the page, so this keeps them sharp at print resolution.
const SVGRasterWidth = 2000

// Image is an asset ready to embed: JPEG bytes are kept as-is, every other
// format is re-encoded as PNG.
type Image struct {
	Data   []byte
	Type   string // "JPG" or "PNG"
	Width  int
	Height int
}

// AspectRatio returns height over width.
func (i *Image) AspectRatio() float64 {
	if i == nil || i.Width == 0 {
		return 0
	}
	return float64(i.Height) / float64(i.Width)
}

// NormalizeImage converts raw banner or footer bytes into an embeddable image.
func NormalizeImage(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrUnsupportedImage
	}
	if isSVG(data) {
		return rasterizeSVG(data)
	}

	if isJPEG(data) {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode jpeg header: %w", err)
		}
		return &Image{Data: data, Type: "JPG", Width: cfg.Width, Height: cfg.Height}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedImage
		}
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return encodePNG(img)
}

func encodePNG(img image.Image) (*Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	b := img.Bounds()
	return &Image{Data: buf.Bytes(), Type: "PNG", Width: b.Dx(), Height: b.Dy()}, nil
}

func rasterizeSVG(data []byte) (*Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil, fmt.Errorf("svg without a usable viewBox: %w", ErrUnsupportedImage)
	}

	w := SVGRasterWidth
	h := int(math.Ceil(float64(w) * vh / vw))
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return encodePNG(img)
}

func isJPEG(data []byte) bool {
	return len(data) > 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimSpace(head)
	if bytes.HasPrefix(head, []byte("<svg")) {
		return true
	}
	return bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(data, []byte("<svg"))
}
