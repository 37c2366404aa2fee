package tesseract

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// minimum edge length before an image is upscaled for recognition
const minEdge = 300

// Enhance decodes an uploaded photo and prepares it for Tesseract: small
// images are doubled, then converted to grayscale, contrast-boosted and
// sharpened. The result is PNG encoded.
func Enhance(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < minEdge || bounds.Dy() < minEdge {
		img = imaging.Resize(img, bounds.Dx()*2, bounds.Dy()*2, imaging.Lanczos)
	}

	gray := imaging.Grayscale(img)
	contrast := imaging.AdjustContrast(gray, 10)
	sharp := imaging.Sharpen(contrast, 1.1)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, sharp, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding processed image: %w", err)
	}
	return buf.Bytes(), nil
}
