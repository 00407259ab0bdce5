// Package export materialises a rendered symbol to a destination.
//
// A Dispatcher accepts a Target (FileTarget or ClipboardTarget) and picks the
// destination-specific container: lossless PNG for files, whatever the
// configured clipboard.Sink needs for the clipboard. The clipboard variant is
// chosen once when the Dispatcher is built, not per call.
//
// Export never modifies the source image and never retries. Failures are
// reported with the sentinels in errors.go; lower-level file and clipboard
// errors are mapped onto them and remain reachable through errors.Is.
package export
