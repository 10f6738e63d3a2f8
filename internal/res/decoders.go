package res

// Register a broad set of image decoders so image.Decode can handle the
// banner and footer formats fpdf cannot embed directly.
import (
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)
