// Package file writes exported artefacts to the local filesystem.
//
// WriteAtomic stages data in a temporary file next to the destination and
// renames it into place, so a failed write never leaves a partial file at the
// destination path.
//
// # Usage
//
//	import "github.com/dmitrymomot/qrkit/pkg/file"
//
//	if err := file.WriteAtomic(ctx, "/tmp/qr.png", data); err != nil {
//		if errors.Is(err, file.ErrDirectoryNotFound) {
//			// parent directory is missing
//		}
//	}
//
// # Error Handling
//
// Path problems are reported as ErrInvalidPath, ErrDirectoryNotFound,
// ErrNotDirectory or ErrIsDirectory. Permission problems are reported as
// ErrAccessDenied. Everything else is wrapped in one of the ErrFailedTo*
// sentinels with the underlying error attached for debugging.
package file
