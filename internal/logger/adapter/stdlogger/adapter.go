// Package stdlogger adapts the global zerolog logger to the Println style logger
// interface of promhttp.
package stdlogger

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Logger writes Println style messages as errors to the global zerolog logger.
type Logger struct {
	component string
}

// New returns a Logger tagging every message with component, if set.
func New(component ...string) *Logger {
	l := &Logger{}
	if len(component) > 0 {
		l.component = component[0]
	}

	return l
}

// Println logs at error level. It satisfies promhttp.Logger.
func (l *Logger) Println(v ...interface{}) {
	e := log.Error()
	if l.component != "" {
		e = e.Str("component", l.component)
	}

	e.Msg(fmt.Sprint(v...))
}
