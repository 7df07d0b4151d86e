package telemetry

import (
	"io"
	"log/slog"
	"path/filepath"

	"sensor-simulator/internal/infra/node"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

// NewLogger builds the text logger shared by every binary. Unknown levels
// fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	baseHandler := slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true, Level: logLevelMapping[level], ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", node.Version)})
	return slog.New(handler)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}
