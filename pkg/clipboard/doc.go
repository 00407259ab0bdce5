// Package clipboard copies rendered images to the system clipboard.
//
// Clipboard formats differ per platform, so the package exposes a single Sink
// interface with three variants, selected once by Detect:
//
//   - BitmapSink hands a headerless 24-bit device-independent bitmap to a
//     DIBWriter (CF_DIB on Windows).
//   - PNGStreamSink streams PNG bytes to the stdin of a clipboard-owning helper
//     process such as pbcopy or xclip, bounded by a timeout.
//   - Unsupported always fails with ErrUnsupported.
//
// # Usage
//
//	sink := clipboard.Detect(runtime.GOOS, clipboard.WithTimeout(5*time.Second))
//	if err := sink.Copy(ctx, img); err != nil {
//		switch {
//		case errors.Is(err, clipboard.ErrUnsupported):
//		case errors.Is(err, clipboard.ErrUnavailable):
//		}
//	}
package clipboard
