package logger

import (
	"fmt"
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Generation is the result holder version a record refers to.
func Generation(n uint64) slog.Attr {
	return slog.Uint64("generation", n)
}

func SnapshotID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("snapshot_id", id)
}

// Target names an export destination, e.g. "file" or "clipboard".
func Target(kind string) slog.Attr {
	return slog.String("target", kind)
}

func Dimensions(width, height int) slog.Attr {
	return slog.String("dimensions", fmt.Sprintf("%dx%d", width, height))
}
