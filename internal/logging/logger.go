package logging

import (
	"io"
	"os"

	oplogging "github.com/op/go-logging"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
}

const (
	logModule = "shunit-runner"
)

var (
	log     = oplogging.MustGetLogger(logModule)
	format  = oplogging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	backend oplogging.LeveledBackend
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput directs the default logger to w, keeping its level.
func SetOutput(w io.Writer) {
	b := oplogging.AddModuleLevel(
		oplogging.NewBackendFormatter(oplogging.NewLogBackend(w, "", 0), format),
	)
	if backend != nil {
		b.SetLevel(backend.GetLevel(logModule), logModule)
	}
	backend = b
	log.SetBackend(backend)
}

// MustGetLogger returns the application's default logger.
func MustGetLogger() Logger {
	log.SetBackend(backend)
	return log
}

// SetLevel sets the desired log level for the default logger.
func SetLevel(loglevel string) {
	level, err := oplogging.LogLevel(loglevel)
	if err != nil {
		level = oplogging.WARNING
		log.Warning("invalid log level, fall back to WARNING")
	}
	backend.SetLevel(level, logModule)
}
