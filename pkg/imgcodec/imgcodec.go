// Package imgcodec encodes rendered bitmaps into the container formats used
// by export destinations: PNG for files and PNG-capable clipboards, and a
// headerless 24-bit device-independent bitmap for CF_DIB clipboards.
package imgcodec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// MIME types of the produced containers.
const (
	MIMEPNG = "image/png"
	MIMEBMP = "image/bmp"
)

// BMPFileHeaderSize is the length of the BITMAPFILEHEADER that precedes the
// device-independent bitmap in a .bmp file.
const BMPFileHeaderSize = 14

var (
	ErrNilImage       = errors.New("image is nil")
	ErrFailedToEncode = errors.New("failed to encode image")
	ErrMalformedBMP   = errors.New("malformed bitmap container")
)

var pngEncoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// EncodePNG encodes img as a lossless PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: png: %v", ErrFailedToEncode, err)
	}
	return buf.Bytes(), nil
}

// EncodeBMP encodes img as a 24-bit BMP file. Alpha is dropped on a copy;
// img itself is never modified.
func EncodeBMP(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, OpaqueCopy(img)); err != nil {
		return nil, fmt.Errorf("%w: bmp: %v", ErrFailedToEncode, err)
	}
	return buf.Bytes(), nil
}

// EncodeDIB returns the BMP encoding of img with the 14-byte file header
// stripped, which is the CF_DIB clipboard payload.
func EncodeDIB(img image.Image) ([]byte, error) {
	data, err := EncodeBMP(img)
	if err != nil {
		return nil, err
	}
	if len(data) <= BMPFileHeaderSize || data[0] != 'B' || data[1] != 'M' {
		return nil, ErrMalformedBMP
	}
	return data[BMPFileHeaderSize:], nil
}

// OpaqueCopy returns an RGBA copy of img with every alpha value forced to
// 255. The BMP encoder writes 24-bit pixels for opaque RGBA images.
func OpaqueCopy(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// Clone returns a pixel-for-pixel RGBA copy of img anchored at the origin.
func Clone(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// DataURI formats data as a base64 data URI.
func DataURI(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// Equal reports whether a and b have the same size and identical pixels.
func Equal(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return false
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ca := color.RGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y))
			cb := color.RGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y))
			if ca != cb {
				return false
			}
		}
	}
	return true
}
