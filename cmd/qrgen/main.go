// Command qrgen renders text as a QR code and saves, copies or previews it.
//
//	qrgen -o qr.png https://example.com
//	echo "hello" | qrgen -copy -level H
//	qrgen -preview thumb.png -scale 20 "some long text"
//
// Defaults come from the environment (see pkg/config); flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/dmitrymomot/qrkit/pkg/clipboard"
	"github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/export"
	"github.com/dmitrymomot/qrkit/pkg/file"
	"github.com/dmitrymomot/qrkit/pkg/imgcodec"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/pipeline"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			errColor.Fprintf(os.Stderr, "✗ %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	envFile     string
	scale       int
	border      int
	level       string
	output      string
	copy        bool
	previewPath string
	dataURI     bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var envFiles []string
	if f := lookupEnvFlag(args); f != "" {
		envFiles = append(envFiles, f)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	opts, text, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	level, err := qrcode.ParseLevel(opts.level)
	if err != nil {
		return err
	}

	if text == "" || text == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	log := newLogger(cfg, stderr)
	p := pipeline.New(
		pipeline.WithLogger(log),
		pipeline.WithDispatcher(export.NewDispatcher(export.WithClipboard(newClipboard(cfg)))),
	)

	snap, err := p.Generate(ctx, text, opts.scale, opts.border, level)
	if err != nil {
		if errors.Is(err, qrcode.ErrEmptyPayload) {
			warnColor.Fprintln(stdout, "⚠ Please enter text or URL to encode")
		}
		return err
	}
	b := snap.Image.Bounds()
	okColor.Fprintf(stdout, "✓ QR code generated (%d×%d pixels)\n", b.Dx(), b.Dy())

	var errs []error
	if opts.previewPath != "" {
		if err := writePreview(ctx, p, opts.previewPath, cfg); err != nil {
			errs = append(errs, err)
		} else {
			okColor.Fprintf(stdout, "✓ Preview written: %s\n", opts.previewPath)
		}
	}
	if opts.output != "" {
		if err := p.Save(ctx, opts.output); err != nil {
			errs = append(errs, err)
		} else {
			okColor.Fprintf(stdout, "✓ Saved: %s\n", opts.output)
		}
	}
	if opts.copy {
		if err := p.Copy(ctx); err != nil {
			errs = append(errs, err)
		} else {
			okColor.Fprintf(stdout, "✓ Copied to clipboard (%s)\n", p.ClipboardName())
		}
	}
	if opts.dataURI {
		data, err := imgcodec.EncodePNG(snap.Image)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, imgcodec.DataURI(imgcodec.MIMEPNG, data))
	}
	return errors.Join(errs...)
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, string, error) {
	var opts options
	fs := flag.NewFlagSet("qrgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.envFile, "env", "", "load defaults from this .env file")
	fs.IntVar(&opts.scale, "scale", cfg.Scale, "pixels per module")
	fs.IntVar(&opts.border, "border", cfg.Border, "quiet zone width in modules")
	fs.StringVar(&opts.level, "level", cfg.Level, "error correction level: L, M, Q or H")
	fs.StringVar(&opts.output, "o", "", "save PNG to this path")
	fs.BoolVar(&opts.copy, "copy", false, "copy the image to the clipboard")
	fs.StringVar(&opts.previewPath, "preview", "", "write a display-sized PNG preview to this path")
	fs.BoolVar(&opts.dataURI, "data-uri", false, "print the PNG as a data URI")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: qrgen [flags] [text | -]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, "", err
	}
	return opts, strings.Join(fs.Args(), " "), nil
}

// lookupEnvFlag finds -env before flag parsing, since flag defaults depend on
// the loaded config.
func lookupEnvFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "--":
			return ""
		case a == "-env" || a == "--env":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-env=") || strings.HasPrefix(a, "--env="):
			return a[strings.Index(a, "=")+1:]
		}
	}
	return ""
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithOutput(w),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}

func newClipboard(cfg config.Config) clipboard.Sink {
	return clipboard.Detect(runtime.GOOS,
		clipboard.WithTimeout(cfg.ClipboardTimeout),
		clipboard.WithCommand(cfg.ClipboardCommand...),
	)
}

func writePreview(ctx context.Context, p *pipeline.Pipeline, path string, cfg config.Config) error {
	thumb, err := p.Preview(cfg.PreviewWidth, cfg.PreviewHeight)
	if err != nil {
		return err
	}
	data, err := imgcodec.EncodePNG(thumb)
	if err != nil {
		return err
	}
	return file.WriteAtomic(ctx, path, data)
}
