package logging

import (
	"io"
	"io/ioutil"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger
	out     io.Writer = os.Stderr
	current           = LevelWarning
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(ioutil.Discard, "D ", flags)
	info = log.New(ioutil.Discard, "I ", flags)
	warning = log.New(ioutil.Discard, "W ", flags)
	error = log.New(ioutil.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// SetLevel enables all loggers at or above the given level.
func SetLevel(l Level) {
	current = l
	loggers := []*log.Logger{debug, info, warning, error}
	for i, lg := range loggers {
		if Level(i) >= l {
			lg.SetOutput(out)
		} else {
			lg.SetOutput(ioutil.Discard)
		}
	}
}

// SetOutput redirects enabled loggers to w.
// The CLI uses this to write logs to a file.
func SetOutput(w io.Writer) {
	out = w
	SetLevel(current)
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	error.Printf(msg, v...)
}
