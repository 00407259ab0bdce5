//go:build !windows

package clipboard

import (
	"context"
	"fmt"
	"runtime"
)

type noDIBWriter struct{}

func systemDIBWriter() DIBWriter { return noDIBWriter{} }

func (noDIBWriter) WriteDIB(context.Context, []byte) error {
	return fmt.Errorf("%w: no CF_DIB clipboard on %s", ErrUnavailable, runtime.GOOS)
}
