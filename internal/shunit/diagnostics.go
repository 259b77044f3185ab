package shunit

import (
	"fmt"
	"strings"
)

// DiagnosticReport explains why a suite script could not be started.
// The directory listing is only attempted when the basic file checks
// all pass, since the failure is then most likely about permissions.
type DiagnosticReport struct {
	Dir      string
	Exists   bool
	Readable bool
	IsFile   bool

	// Probed is true if a listing of the script was attempted.
	// Either Listing or ProbeErr is then set.
	Probed   bool
	Listing  string
	ProbeErr error
}

// NewDiagnosticReport assembles a report from the results of the file
// checks and, when all of them passed, the outcome of listing the
// script. listing and probeErr are ignored otherwise.
func NewDiagnosticReport(dir string, exists, readable, isFile bool, listing string, probeErr error) DiagnosticReport {
	r := DiagnosticReport{
		Dir:      dir,
		Exists:   exists,
		Readable: readable,
		IsFile:   isFile,
	}
	if r.NeedsProbe() {
		r.Probed = true
		r.Listing = listing
		r.ProbeErr = probeErr
	}
	return r
}

// NeedsProbe reports whether the file checks fail to explain a launch
// failure.
func (r DiagnosticReport) NeedsProbe() bool {
	return r.Exists && r.Readable && r.IsFile
}

func (r DiagnosticReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s\n", r.Dir)
	fmt.Fprintf(&b, "Script exists? %t\n", r.Exists)
	fmt.Fprintf(&b, "Script is readable? %t\n", r.Readable)
	fmt.Fprintf(&b, "Script is a file? %t\n", r.IsFile)
	if !r.Probed {
		return b.String()
	}
	if r.ProbeErr != nil {
		fmt.Fprintf(&b, "Couldn't execute ls: %s\n", r.ProbeErr)
		return b.String()
	}
	b.WriteString("ls -l output:\n")
	b.WriteString(r.Listing)
	if r.Listing != "" && !strings.HasSuffix(r.Listing, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}
