package astral

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a verbosity name to a slog level. Unknown names are INFO.
func ParseLevel(v string) slog.Level {
	switch strings.ToUpper(v) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLogging installs a tint handler on stderr as the default logger.
func SetLogging(v string) *slog.Logger {
	return setLogging(os.Stderr, v)
}

func setLogging(w io.Writer, v string) *slog.Logger {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	logLevel := &slog.LevelVar{}
	logLevel.Set(ParseLevel(v))
	trim := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok {
				source.File = filepath.Base(source.File)
				source.Function = filepath.Base(source.Function)
			}
		}
		return a
	}
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   true,
		TimeFormat:  time.Kitchen,
		Level:       logLevel,
		ReplaceAttr: trim,
	}))
	slog.SetDefault(logger)
	slog.Debug("Logging level set to", "level", logLevel.Level())
	return logger
}
