// Package pipeline wires validation, encoding, rendering, preview fitting and
// export around a versioned result slot.
//
// A Pipeline is what a UI or CLI talks to:
//
//	p := pipeline.New(pipeline.WithLogger(log))
//
//	snap, err := p.Generate(ctx, "https://example.com", 8, 4, qrcode.LevelMedium)
//	if err != nil {
//		// validation or encoding failure, the previous image is kept
//	}
//
//	thumb, err := p.Preview(450, 300)
//	err = p.Save(ctx, "/tmp/qr.png")
//	err = p.Copy(ctx)
//
// Preview, Save and Copy fail with ErrNoImageYet until the first successful
// Generate. A failed Generate never replaces an earlier image.
//
// Pipeline is safe for concurrent use. Each Snapshot carries the generation
// number it was produced under, and IsCurrent reports whether a newer image
// has replaced it.
package pipeline
