package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileMode is applied to new files written by WriteAtomic. Replaced
// files keep their existing permission bits.
const DefaultFileMode os.FileMode = 0644

// WriteAtomic writes data to path through a temporary sibling file followed by
// a rename. The parent directory must already exist; it is never created.
// On any failure the temporary file is removed and path is left untouched.
func WriteAtomic(ctx context.Context, path string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if strings.TrimSpace(path) == "" || strings.ContainsRune(path, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	path = filepath.Clean(path)

	dir := filepath.Dir(path)
	if err := checkDir(dir); err != nil {
		return err
	}
	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return classify(ErrFailedToCreateFile, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName) // Clean up partial file
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return classify(ErrFailedToWriteFile, err)
	}
	if err := tmp.Sync(); err != nil {
		return classify(ErrFailedToWriteFile, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return classify(ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return classify(ErrFailedToWriteFile, err)
	}

	// Last chance to back out before the destination changes.
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := os.Rename(tmpName, path); err != nil {
		return classify(ErrFailedToRenameFile, err)
	}
	committed = true
	return nil
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return classify(ErrFailedToStatPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return nil
}

// classify maps permission failures to ErrAccessDenied and wraps everything
// else in op.
func classify(op error, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return errors.Join(ErrAccessDenied, err)
	case errors.Is(err, fs.ErrNotExist):
		return errors.Join(ErrDirectoryNotFound, err)
	default:
		return fmt.Errorf("%w: %v", op, err)
	}
}
