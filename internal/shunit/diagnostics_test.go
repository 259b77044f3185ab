package shunit_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/magnusbaeck/shunit-runner/internal/shunit"
)

func TestNewDiagnosticReport(t *testing.T) {
	cases := []struct {
		name     string
		exists   bool
		readable bool
		isFile   bool
		listing  string
		probeErr error

		wantProbed bool
		want       string
	}{
		{
			name:     "missing script",
			listing:  "ignored",
			probeErr: nil,

			wantProbed: false,
			want: "Directory: /suites\n" +
				"Script exists? false\n" +
				"Script is readable? false\n" +
				"Script is a file? false\n",
		},
		{
			name:     "unreadable script",
			exists:   true,
			isFile:   true,
			probeErr: errors.New("ignored"),

			wantProbed: false,
			want: "Directory: /suites\n" +
				"Script exists? true\n" +
				"Script is readable? false\n" +
				"Script is a file? true\n",
		},
		{
			name:     "directory instead of script",
			exists:   true,
			readable: true,

			wantProbed: false,
			want: "Directory: /suites\n" +
				"Script exists? true\n" +
				"Script is readable? true\n" +
				"Script is a file? false\n",
		},
		{
			name:     "listing attached",
			exists:   true,
			readable: true,
			isFile:   true,
			listing:  "-rw-r--r-- 1 user group 42 Jan  1 00:00 suite.sh",

			wantProbed: true,
			want: "Directory: /suites\n" +
				"Script exists? true\n" +
				"Script is readable? true\n" +
				"Script is a file? true\n" +
				"ls -l output:\n" +
				"-rw-r--r-- 1 user group 42 Jan  1 00:00 suite.sh\n",
		},
		{
			name:     "probe failure attached",
			exists:   true,
			readable: true,
			isFile:   true,
			probeErr: errors.New(`exec: "ls": executable file not found in $PATH`),

			wantProbed: true,
			want: "Directory: /suites\n" +
				"Script exists? true\n" +
				"Script is readable? true\n" +
				"Script is a file? true\n" +
				"Couldn't execute ls: exec: \"ls\": executable file not found in $PATH\n",
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			r := shunit.NewDiagnosticReport("/suites", test.exists, test.readable, test.isFile, test.listing, test.probeErr)
			is.Equal(test.wantProbed, r.Probed)
			is.Equal(test.wantProbed, r.NeedsProbe())
			is.Equal(test.want, r.String())
		})
	}
}
