package logging

import (
	"bytes"
	"os"
	"regexp"
	"testing"

	"github.com/matryer/is"
	oplogging "github.com/op/go-logging"
)

func TestSetLevel(t *testing.T) {
	cases := []struct {
		name  string
		level string

		want oplogging.Level
	}{
		{
			name:  "debug",
			level: "DEBUG",
			want:  oplogging.DEBUG,
		},
		{
			name:  "lower case",
			level: "info",
			want:  oplogging.INFO,
		},
		{
			name:  "invalid falls back to warning",
			level: "chatty",
			want:  oplogging.WARNING,
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			SetLevel(test.level)
			is.Equal(test.want, backend.GetLevel(logModule))
		})
	}
}

func TestSetOutput(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel("INFO")
	log := MustGetLogger()
	log.Debug("not shown")
	log.Infof("suite %s started", "login_test")
	log.Warningf("%s: stderr: %s", "login_test", "oops")

	is.True(regexp.MustCompile(`^\d\d:\d\d:\d\d\.\d{3} INFO suite login_test started\n` +
		`\d\d:\d\d:\d\d\.\d{3} WARN login_test: stderr: oops\n$`).MatchString(buf.String()))

	// The level survives a change of output.
	SetOutput(&bytes.Buffer{})
	is.Equal(oplogging.INFO, backend.GetLevel(logModule))
}
