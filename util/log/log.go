// Package log is a thin wrapper over the standard logger. Output goes to
// stderr unless Setup points it at a rotated log file; Debug output is only
// written when verbose logging is enabled.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

var verbose atomic.Bool

// closer is the open log file sink, if any.
var closer io.Closer

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)
}

// Setup configures verbosity and the log sink. An empty file keeps stderr.
func Setup(debug bool, file string) error {
	verbose.Store(debug)
	if file == "" {
		return nil
	}

	// Ensure the log directory exists
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	}
	SetOutput(sink)
	closer = sink
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return nil
}

// SetOutput sets the destination of the standard logger.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Close releases the log file sink, if one is open.
func Close() error {
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	log.SetOutput(os.Stderr)
	return err
}

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
}

// Fatal calls the standard log.Fatal()
func Fatal(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf calls the standard log.Fatalf()
func Fatalf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Debug calls the standard log.Print() with a [DEBUG] prefix
func Debug(v ...interface{}) {
	if !verbose.Load() {
		return
	}
	log.Output(2, "[DEBUG] "+fmt.Sprint(v...))
}

// Debugf calls the standard log.Printf() with a [DEBUG] prefix
func Debugf(format string, v ...interface{}) {
	if !verbose.Load() {
		return
	}
	log.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
}
