package qrcode

import (
	"github.com/dmitrymomot/qrkit/pkg/imgcodec"
)

// Generate validates the parameters, encodes content with the default
// encoder and returns the rendered symbol as PNG bytes.
func Generate(content string, scale, border int, level Level) ([]byte, error) {
	req, err := Validate(content, scale, border, level)
	if err != nil {
		return nil, err
	}
	m, err := NewEncoder().Encode(req.Payload, req.Level)
	if err != nil {
		return nil, err
	}
	img, err := Render(m, req.Scale, req.Border)
	if err != nil {
		return nil, err
	}
	return imgcodec.EncodePNG(img)
}

// GenerateBase64Image works like Generate but returns a data URI that can be
// dropped into an <img src> attribute.
//
//	uri, err := qrcode.GenerateBase64Image("https://dmomot.com", 8, 4, qrcode.LevelMedium)
func GenerateBase64Image(content string, scale, border int, level Level) (string, error) {
	png, err := Generate(content, scale, border, level)
	if err != nil {
		return "", err
	}
	return imgcodec.DataURI(imgcodec.MIMEPNG, png), nil
}
