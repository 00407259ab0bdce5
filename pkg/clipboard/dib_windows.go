//go:build windows

package clipboard

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	cfDIB        = 8
	gmemMoveable = 0x0002
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procCloseClipboard   = user32.NewProc("CloseClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procSetClipboardData = user32.NewProc("SetClipboardData")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
)

type win32DIBWriter struct{}

func systemDIBWriter() DIBWriter { return win32DIBWriter{} }

func (win32DIBWriter) WriteDIB(ctx context.Context, dib []byte) error {
	if err := user32.Load(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	if err := kernel32.Load(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	// The clipboard is owned by the calling thread until CloseClipboard.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := openClipboard(ctx); err != nil {
		return err
	}
	defer procCloseClipboard.Call() //nolint:errcheck

	if r, _, err := procEmptyClipboard.Call(); r == 0 {
		return fmt.Errorf("EmptyClipboard: %w", err)
	}

	h, _, err := procGlobalAlloc.Call(gmemMoveable, uintptr(len(dib)))
	if h == 0 {
		return fmt.Errorf("GlobalAlloc: %w", err)
	}
	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		procGlobalFree.Call(h) //nolint:errcheck
		return fmt.Errorf("GlobalLock: %w", err)
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(p)), len(dib)), dib)
	procGlobalUnlock.Call(h) //nolint:errcheck

	// On success the system owns h.
	if r, _, err := procSetClipboardData.Call(cfDIB, h); r == 0 {
		procGlobalFree.Call(h) //nolint:errcheck
		return fmt.Errorf("SetClipboardData: %w", err)
	}
	return nil
}

// openClipboard retries while another process holds the clipboard.
func openClipboard(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		r, _, err := procOpenClipboard.Call(0)
		if r != 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Join(ErrUnavailable, fmt.Errorf("OpenClipboard: %w", err), ctx.Err())
		case <-ticker.C:
		}
	}
}
