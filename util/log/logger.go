// Package log implements utility methods for logging in a colorful manner.
package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var showPid = os.Getenv("TERMPASSHASH_LOG_SHOW_PID") != ""

// FancyLogFormatter is the default logger for termpasshash.
type FancyLogFormatter struct {
	UseColors bool
}

var symbolTable = map[logrus.Level]string{
	logrus.DebugLevel: "⚙",
	logrus.InfoLevel:  "⚐",
	logrus.WarnLevel:  "⚠",
	logrus.ErrorLevel: "⚡",
	logrus.FatalLevel: "☣",
	logrus.PanicLevel: "☠",
}

var colorTable = map[logrus.Level]func(string, ...interface{}) string{
	logrus.DebugLevel: color.CyanString,
	logrus.InfoLevel:  color.GreenString,
	logrus.WarnLevel:  color.YellowString,
	logrus.ErrorLevel: color.RedString,
	logrus.FatalLevel: color.MagentaString,
	logrus.PanicLevel: color.MagentaString,
}

func colorByLevel(level logrus.Level, msg string) string {
	fn, ok := colorTable[level]
	if !ok {
		return msg
	}

	return fn(msg)
}

func formatColored(useColors bool, buffer *bytes.Buffer, msg string, level logrus.Level) {
	if useColors {
		buffer.WriteString(colorByLevel(level, msg))
	} else {
		buffer.WriteString(msg)
	}
}

func formatTimestamp(builder *strings.Builder, t time.Time) {
	fmt.Fprintf(builder, "%02d.%02d.%04d", t.Day(), t.Month(), t.Year())
	builder.WriteByte('/')
	fmt.Fprintf(builder, "%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func formatFields(useColors bool, buffer *bytes.Buffer, entry *logrus.Entry) {
	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	buffer.WriteString(" [")

	for idx, key := range keys {
		formatColored(useColors, buffer, key, entry.Level)
		buffer.WriteByte('=')

		switch v := entry.Data[key].(type) {
		case error:
			formatColored(useColors, buffer, v.Error(), logrus.ErrorLevel)
		default:
			fmt.Fprintf(buffer, "%v", v)
		}

		if idx != len(keys)-1 {
			buffer.WriteByte(' ')
		}
	}

	buffer.WriteByte(']')
}

var logSymbols = map[string]struct{}{
	"logrus.Debugf":   {},
	"logrus.Debug":    {},
	"logrus.Infof":    {},
	"logrus.Info":     {},
	"logrus.Warnf":    {},
	"logrus.Warn":     {},
	"logrus.Warningf": {},
	"logrus.Warning":  {},
	"logrus.Errorf":   {},
	"logrus.Error":    {},
	"logrus.Panic":    {},
	"logrus.Panicf":   {},
}

func findCallers() (string, int, bool) {
	// logrus adds a few frames of its own.
	pcs := make([]uintptr, 15)
	nCallers := runtime.Callers(7, pcs)
	frames := runtime.CallersFrames(pcs[:nCallers])

	nextLineIsCallee := false
	for {
		frame, ok := frames.Next()
		if !ok {
			break
		}

		if nextLineIsCallee {
			// Inside of our module the path relative to the root is enough.
			modTag := "termpasshash/"
			modIdx := strings.LastIndex(frame.File, modTag)
			if modIdx == -1 {
				return filepath.Base(frame.File), frame.Line, true
			}

			return frame.File[modIdx+len(modTag):], frame.Line, true
		}

		lastIdx := strings.LastIndex(frame.Function, "/")
		if lastIdx == -1 {
			continue
		}

		// The frame after a call to the logrus API is the logging line.
		_, nextLineIsCallee = logSymbols[frame.Function[lastIdx+1:]]
	}

	return "", 0, false
}

// Format logs a single entry according to our formatting ideas.
func (flf *FancyLogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	prefixBuilder := strings.Builder{}
	formatTimestamp(&prefixBuilder, entry.Time)
	prefixBuilder.WriteByte(' ')
	prefixBuilder.WriteString(symbolTable[entry.Level])

	buffer := &bytes.Buffer{}
	formatColored(flf.UseColors, buffer, prefixBuilder.String(), entry.Level)

	if showPid {
		fmt.Fprintf(buffer, " [%d]", os.Getpid())
	}

	if file, line, ok := findCallers(); ok {
		fmt.Fprintf(buffer, " %s:%d:", file, line)
	}

	buffer.WriteByte(' ')
	buffer.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		formatFields(flf.UseColors, buffer, entry)
	}

	buffer.WriteByte('\n')
	return buffer.Bytes(), nil
}

var logLevelToFunc = map[logrus.Level]func(args ...interface{}){
	logrus.DebugLevel: logrus.Debug,
	logrus.InfoLevel:  logrus.Info,
	logrus.WarnLevel:  logrus.Warn,
	logrus.ErrorLevel: logrus.Error,
}

// Writer is an io.Writer that writes everything to logrus.
// It is used to redirect the standard library logger.
type Writer struct {
	// Level determines the severity for all messages.
	Level logrus.Level
}

func (l *Writer) Write(buf []byte) (int, error) {
	fn, ok := logLevelToFunc[l.Level]
	if !ok {
		fn = logrus.Warn
	}

	fn(strings.Trim(string(buf), "\n\r "))
	return len(buf), nil
}
