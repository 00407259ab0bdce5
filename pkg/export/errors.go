package export

import "errors"

var (
	// ErrExport is joined with every export failure.
	ErrExport = errors.New("export failed")

	ErrPermissionDenied     = errors.New("permission denied")
	ErrPathInvalid          = errors.New("invalid export path")
	ErrIOFailure            = errors.New("i/o failure")
	ErrClipboardUnsupported = errors.New("clipboard unsupported")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	ErrNilImage      = errors.New("image is nil")
	ErrUnknownTarget = errors.New("unknown export target")
)
