package logger

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger from LOG_LEVEL/LOG_FORMAT values.
// Unknown levels fall back to info; format is "text" or "json".
func Setup(level, format string) {
	Configure(log.StandardLogger(), os.Stderr, level, format)
}

// Configure applies level and format to l and directs it to w.
func Configure(l *log.Logger, w io.Writer, level, format string) {
	l.SetOutput(w)
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	if strings.EqualFold(format, "json") {
		l.SetFormatter(&log.JSONFormatter{})
		return
	}
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
