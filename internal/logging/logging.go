/*
Package logging configures the logrus logger shared by every minish component.

Entries render as "[HH:MM:SS | LEVEL]: message key=value ...", with the level
coloured when the output is a terminal.
*/
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/sirupsen/logrus"
)

const timeLayout = "15:04:05"

// Formatter implements logrus.Formatter.
type Formatter struct {
	// HideFields drops entry fields from the output.
	HideFields bool
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s | %s]: %s",
		entry.Time.Format(timeLayout),
		colorLevel(entry.Level),
		entry.Message,
	)

	if !f.HideFields && len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]string, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, fmt.Sprintf("%s=%v", k, entry.Data[k]))
		}
		b.WriteString(" ")
		b.WriteString(ui.DetailColor(strings.Join(fields, " ")))
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func colorLevel(level logrus.Level) string {
	name := strings.ToUpper(level.String())
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return ui.LogErrorColor(name)
	case logrus.WarnLevel:
		return ui.LogWarnColor(name)
	case logrus.InfoLevel:
		return ui.LogInfoColor(name)
	default:
		return ui.LogDebugColor(name)
	}
}

/*
New creates a logger writing to out at the named level.
An unknown level falls back to info and the problem is logged as a warning.
Fields are only shown at debug level and below.
*/
func New(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	logger.SetFormatter(&Formatter{HideFields: parsed < logrus.DebugLevel})

	if err != nil {
		logger.WithField("log_level", level).Warn("unknown log level, using info")
	}
	return logger
}

// Component returns an entry tagged with the component name.
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}
