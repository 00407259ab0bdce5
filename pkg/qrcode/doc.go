// Package qrcode turns user text into a rendered QR code bitmap.
//
// The package covers the first half of the symbol pipeline: parameter
// validation, symbol encoding and rasterisation. Encoding is delegated to
// github.com/skip2/go-qrcode behind the Encoder interface so callers (and
// tests) can swap in an encoder producing known matrices.
//
// # Architecture
//
//   - Validate normalises raw generation parameters into a Request. The
//     payload is trimmed and must not be empty; scale is floored at 1 and
//     border at 0.
//   - Encoder.Encode converts a payload and error-correction Level into a
//     Matrix of dark/light modules. The encoder is the final authority on
//     whether a level is legal.
//   - Render expands every module into a scale×scale block and surrounds the
//     symbol with a light quiet zone of border modules. The output is always
//     (side + 2*border) * scale pixels along each axis.
//
// Generate and GenerateBase64Image chain the three steps for one-shot use.
//
// # Usage
//
//	import "github.com/dmitrymomot/qrkit/pkg/qrcode"
//
//	req, err := qrcode.Validate("https://example.com", 8, 4, qrcode.LevelMedium)
//	if err != nil {
//		// errors.Is(err, qrcode.ErrEmptyPayload)
//	}
//
//	m, err := qrcode.NewEncoder().Encode(req.Payload, req.Level)
//	if err != nil {
//		// errors.Is(err, qrcode.ErrPayloadTooLarge)
//	}
//
//	img, err := qrcode.Render(m, req.Scale, req.Border)
//
// # Error Handling
//
// All errors are package-level sentinels to be compared with errors.Is:
//
//   - ErrEmptyPayload         – payload was empty or whitespace only.
//   - ErrInvalidLevel         – textual level could not be parsed.
//   - ErrEncoding             – umbrella for every encoder failure, joined with
//     one of ErrPayloadTooLarge, ErrUnsupportedCharacter or ErrUnsupportedLevel.
//   - ErrRender               – matrix or parameters cannot be rendered.
package qrcode
