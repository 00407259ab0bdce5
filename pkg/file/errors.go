package file

import "errors"

var (
	// Path errors
	ErrInvalidPath       = errors.New("invalid path")
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNotDirectory      = errors.New("path is not a directory")
	ErrIsDirectory       = errors.New("path is a directory")

	ErrAccessDenied = errors.New("access denied")

	// I/O operation errors - wrapped with context for debugging
	ErrFailedToCreateFile = errors.New("failed to create file")
	ErrFailedToWriteFile  = errors.New("failed to write file")
	ErrFailedToRenameFile = errors.New("failed to rename file")
	ErrFailedToStatPath   = errors.New("failed to stat path")
)
