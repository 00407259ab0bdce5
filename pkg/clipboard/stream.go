package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/imgcodec"
)

// waitDelay is how long a killed helper gets to release its pipes.
const waitDelay = time.Second

// PNGStreamSink pipes PNG bytes into a clipboard-owning helper process.
type PNGStreamSink struct {
	command string
	args    []string
	timeout time.Duration
}

// NewPNGStreamSink creates a sink running command with args. A non-positive
// timeout falls back to DefaultTimeout.
func NewPNGStreamSink(command string, args []string, timeout time.Duration) *PNGStreamSink {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &PNGStreamSink{command: command, args: append([]string(nil), args...), timeout: timeout}
}

func (s *PNGStreamSink) Name() string { return "png:" + s.command }

// Copy encodes img as PNG and streams it to the helper's stdin. A missing
// helper, a non-zero exit status and a timeout all report ErrUnavailable.
func (s *PNGStreamSink) Copy(ctx context.Context, img image.Image) error {
	path, err := exec.LookPath(s.command)
	if err != nil {
		return errors.Join(ErrUnavailable, fmt.Errorf("helper %q not found: %w", s.command, err))
	}

	data, err := imgcodec.EncodePNG(img)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Helpers like xclip fork a child that keeps stderr open to own the
	// selection, so stderr goes to a file rather than a pipe Wait would block on.
	stderr, err := os.CreateTemp("", "qrkit-clipboard-*.log")
	if err != nil {
		return errors.Join(ErrUnavailable, fmt.Errorf("helper %q: %w", s.command, err))
	}
	defer func() {
		_ = stderr.Close()
		_ = os.Remove(stderr.Name())
	}()

	cmd := exec.CommandContext(ctx, path, s.args...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	err = cmd.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(ErrUnavailable, fmt.Errorf("helper %q: %w", s.command, ctxErr))
	}
	// The helper exited cleanly; only a forked child still holds its stdio.
	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil && cmd.ProcessState.Success() {
		return nil
	}
	if msg := readStderr(stderr); msg != "" {
		return errors.Join(ErrUnavailable, fmt.Errorf("helper %q: %w: %s", s.command, err, msg))
	}
	return errors.Join(ErrUnavailable, fmt.Errorf("helper %q: %w", s.command, err))
}

// readStderr returns the first kilobyte the helper wrote to stderr.
func readStderr(f *os.File) string {
	buf := make([]byte, 1024)
	n, _ := f.ReadAt(buf, 0)
	return strings.TrimSpace(string(buf[:n]))
}
