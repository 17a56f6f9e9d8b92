// Package diag provides a small leveled-logging façade for the core,
// modeled on the Recast build context's progress/warning/error log
// categories but writing straight through to the standard logger
// instead of buffering messages for later replay.
package diag

import "log"

// Category is the severity of a logged message.
type Category int

const (
	Progress Category = iota
	Warning
	Error
)

func (c Category) String() string {
	switch c {
	case Progress:
		return "PROG"
	case Warning:
		return "WARN"
	case Error:
		return "ERR"
	default:
		return "?"
	}
}

// Logger gates logging behind an enabled flag, the way BuildContext
// gates both logging and timers behind m_logEnabled.
type Logger struct {
	enabled bool
}

// New returns a Logger. Logging is a no-op unless enabled is true.
func New(enabled bool) *Logger {
	return &Logger{enabled: enabled}
}

func (l *Logger) Log(cat Category, format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	log.Printf("["+cat.String()+"] "+format, args...)
}

func (l *Logger) Progressf(format string, args ...interface{}) { l.Log(Progress, format, args...) }
func (l *Logger) Warningf(format string, args ...interface{})  { l.Log(Warning, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{})    { l.Log(Error, format, args...) }
