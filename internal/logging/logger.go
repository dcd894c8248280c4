package logging

import (
	"io"
	"log/slog"
)

// New creates the command logger. The command passes stderr so stdout
// carries only the XML document. "error" attributes are reported as "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
