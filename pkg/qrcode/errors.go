package qrcode

import "errors"

var (
	// ErrEmptyPayload is returned when payload is empty or only whitespace.
	ErrEmptyPayload = errors.New("payload cannot be empty")
	// ErrInvalidLevel is returned when a textual error-correction level cannot be parsed.
	ErrInvalidLevel = errors.New("invalid error correction level")

	// ErrEncoding is joined with every encoder failure.
	ErrEncoding = errors.New("failed to encode QR code")
	// ErrPayloadTooLarge means the payload exceeds the largest symbol at the requested level.
	ErrPayloadTooLarge = errors.New("payload exceeds symbol capacity")
	// ErrUnsupportedCharacter means the payload holds characters the encoder cannot represent.
	ErrUnsupportedCharacter = errors.New("payload contains unsupported characters")
	// ErrUnsupportedLevel means the encoder does not know the requested level.
	ErrUnsupportedLevel = errors.New("unsupported error correction level")

	// ErrRender is returned for matrices or parameters the renderer cannot draw.
	ErrRender = errors.New("failed to render QR code")
	// ErrImageTooLarge means scale and border would produce a bitmap over MaxPixels.
	ErrImageTooLarge = errors.New("rendered image too large")
)
