// Package log wraps go-logging with named, leveled loggers that share one sink.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// name and backend level, indexed by Level
var levels = [...]struct {
	name    string
	backend logging.Level
}{
	Debug:   {"debug", logging.DEBUG},
	Info:    {"info", logging.INFO},
	Notice:  {"notice", logging.NOTICE},
	Warning: {"warning", logging.WARNING},
	Error:   {"error", logging.ERROR},
}

func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levels[l].name
}

var (
	format = logging.MustStringFormatter(
		`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
	)

	backend logging.LeveledBackend
)

// Logger is satisfied by *logging.Logger.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects every logger to w and resets the level to Notice.
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)

	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(backend)
}

func SetLevel(l Level) {
	if l < Debug || l > Error {
		l = Notice
	}
	backend.SetLevel(levels[l].backend, "")
}

// ParseLevel accepts the level names in any case, unknown names give Notice.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, lv := range levels {
		if lv.name == name {
			return Level(l), nil
		}
	}
	return Notice, fmt.Errorf("log: unknown level %q", name)
}

func init() {
	SetSink(os.Stdout)
}
