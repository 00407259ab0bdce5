// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers so that keys stay consistent across packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/qrkit/pkg/logger"
//
//	log := logger.New(logger.WithEnvironment("production", "qrgen"))
//	log.Info("symbol generated",
//		logger.Generation(snap.Generation),
//		logger.Dimensions(img.Bounds().Dx(), img.Bounds().Dy()),
//	)
//
// Development environments get a text handler at DEBUG level; staging and
// production get a JSON handler at INFO level.
package logger
