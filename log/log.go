package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	MajorLevel
	MinorLevel
	DebugLevel
)

// Prefixes are fixed for now. Nothing has ever needed them configurable.
var prefixes = map[logLevel]string{
	MajorLevel: "",
	MinorLevel: "  ",
	DebugLevel: "   Dbg:",
}

var (
	out   io.Writer
	level logLevel
)

func init() {
	out = os.Stdout
}

func (t logLevel) String() string {
	switch t {
	case MajorLevel:
		return "Major"
	case MinorLevel:
		return "Minor"
	case DebugLevel:
		return "Debug"
	}

	return "Silent"
}

// SetOut redirects all logging to the supplied io.Writer. The default is os.Stdout. The
// supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	out = w
}

// Out returns the current io.Writer for output which is not controlled by log levels,
// such as the final results printed by the application and output capture by tests. The
// return value is never nil.
func Out() io.Writer {
	return out
}

// SetLevel sets the current logging level.
func SetLevel(l logLevel) {
	level = l
}

// Level returns the current logging level.
func Level() logLevel {
	return level
}

// IfMajor returns true if Major logging is written to the output stream. The If*
// functions exist for cases where evaluating the log arguments is expensive and the
// caller wants to avoid that cost when the output would be discarded anyway.
func IfMajor() bool {
	return level >= MajorLevel
}

func IfMinor() bool {
	return level >= MinorLevel
}

func IfDebug() bool {
	return level >= DebugLevel
}

// Majorf is the fmt.Printf equivalent for Major logging. A newline is always appended so
// the caller should not supply one. Multi-line output has the level prefix applied to
// each line.
func Majorf(format string, a ...interface{}) (n int, err error) {
	return printAt(MajorLevel, fmt.Sprintf(format, a...))
}

// Major is the fmt.Print equivalent for Major logging.
func Major(a ...interface{}) (n int, err error) {
	return printAt(MajorLevel, fmt.Sprint(a...))
}

// Minorf is the fmt.Printf equivalent for Minor logging.
func Minorf(format string, a ...interface{}) (n int, err error) {
	return printAt(MinorLevel, fmt.Sprintf(format, a...))
}

// Minor is the fmt.Print equivalent for Minor logging.
func Minor(a ...interface{}) (n int, err error) {
	return printAt(MinorLevel, fmt.Sprint(a...))
}

// Debugf is the fmt.Printf equivalent for Debug logging.
func Debugf(format string, a ...interface{}) (n int, err error) {
	return printAt(DebugLevel, fmt.Sprintf(format, a...))
}

// Debug is the fmt.Print equivalent for Debug logging.
func Debug(a ...interface{}) (n int, err error) {
	return printAt(DebugLevel, fmt.Sprint(a...))
}

// printAt discards the output if the level is not active, otherwise each line is
// prefixed with the level prefix and written to the output stream. Trailing empty lines
// are chomped as a newline is always appended.
func printAt(l logLevel, s string) (int, error) {
	if level < l {
		return 0, nil
	}

	prefix := prefixes[l]
	ar := strings.Split(s, "\n")
	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 {
		ar = ar[:len(ar)-1]
	}

	return fmt.Fprint(out, prefix, strings.Join(ar, "\n"+prefix), "\n")
}
