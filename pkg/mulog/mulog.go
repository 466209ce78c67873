// Package `mulog` provides minimal Zap-Sugar-like loggers with convenient
// structured logging `Levelw(msg, kv...)` functions.
//
// Debug messages are suppressed unless `Verbose` is set.
package mulog

import (
	"fmt"
	"log"
	"os"
)

// `Logger` prints messages with timestamps, using package `log`.
type Logger struct {
	Verbose bool
}

func (l Logger) Debugw(msg string, kv ...interface{}) {
	if !l.Verbose {
		return
	}
	log.Printf("debug: %s %v\n", msg, kv)
}

func (l Logger) Infow(msg string, kv ...interface{}) {
	log.Printf("info: %s %v\n", msg, kv)
}

func (l Logger) Warnw(msg string, kv ...interface{}) {
	log.Printf("warning: %s %v\n", msg, kv)
}

func (l Logger) Errorw(msg string, kv ...interface{}) {
	log.Printf("error: %s %v\n", msg, kv)
}

func (l Logger) Panicw(msg string, kv ...interface{}) {
	log.Panicf("panic: %s %v\n", msg, kv)
}

func (l Logger) Fatalw(msg string, kv ...interface{}) {
	log.Fatalf("fatal: %s %v\n", msg, kv)
}

// `Printer` prints undecorated messages to stderr, using package `fmt`.
type Printer struct {
	Verbose bool
}

func (p Printer) Debugw(msg string, kv ...interface{}) {
	if !p.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "debug: %s %v\n", msg, kv)
}

func (p Printer) Infow(msg string, kv ...interface{}) {
	fmt.Fprintf(os.Stderr, "info: %s %v\n", msg, kv)
}

func (p Printer) Warnw(msg string, kv ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: %s %v\n", msg, kv)
}

func (p Printer) Errorw(msg string, kv ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: %s %v\n", msg, kv)
}

func (p Printer) Panicw(msg string, kv ...interface{}) {
	msg = fmt.Sprintf("%s %v", msg, kv)
	fmt.Fprintf(os.Stderr, "panic: %s\n", msg)
	panic(msg)
}

func (p Printer) Fatalw(msg string, kv ...interface{}) {
	fmt.Fprintf(os.Stderr, "fatal: %s %v\n", msg, kv)
	os.Exit(1)
}
