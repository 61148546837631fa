// Package colorlog is a labelled leveled logger with ANSI colors. Colors are
// emitted only when stderr is a terminal.
package colorlog

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

type Log struct {
	Label string
}

var colorsEnabled = term.IsTerminal(int(os.Stderr.Fd()))

const (
	colorInfo    = "\033[36m" // Light blue
	colorWarning = "\033[33m" // Yellow
	colorError   = "\033[31m" // Red
	colorReset   = "\033[0m"
)

func (l *Log) logf(color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if colorsEnabled {
		log.Printf(" %s %s%s%s\n", l.Label, color, msg, colorReset)
		return
	}
	log.Printf(" %s %s\n", l.Label, msg)
}

func (l *Log) Info(args ...any) {
	l.logf(colorInfo, "%s", sprint(args))
}

func (l *Log) Infof(format string, args ...any) {
	l.logf(colorInfo, format, args...)
}

func (l *Log) Warning(args ...any) {
	l.logf(colorWarning, "%s", sprint(args))
}

func (l *Log) Warningf(format string, args ...any) {
	l.logf(colorWarning, format, args...)
}

func (l *Log) Error(args ...any) {
	l.logf(colorError, "%s", sprint(args))
}

func sprint(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

func (l *Log) Errorf(format string, args ...any) {
	l.logf(colorError, format, args...)
}
