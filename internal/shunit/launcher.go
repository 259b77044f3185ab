package shunit

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/magnusbaeck/shunit-runner/internal/logging"
)

var defaultShell = []string{"sh"}

// LaunchError is returned when a suite script could not be started.
// It carries a report of what could be found out about the script.
type LaunchError struct {
	Script string
	Report DiagnosticReport

	cause error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to run %s: %s\n%s", e.Script, e.cause, e.Report)
}

// Cause returns the error that prevented the script from starting.
func (e *LaunchError) Cause() error {
	return e.cause
}

func (e *LaunchError) Unwrap() error {
	return e.cause
}

// Process is a running suite script.
type Process struct {
	// Stdout and Stderr are connected to the script's output
	// streams. Both must be read to EOF before calling Wait.
	Stdout io.ReadCloser
	Stderr io.ReadCloser

	child *exec.Cmd
}

// Wait blocks until the script terminates.
func (p *Process) Wait() error {
	return p.child.Wait()
}

// Pid returns the process id of the script's shell.
func (p *Process) Pid() int {
	return p.child.Process.Pid
}

type listFunc func(ctx context.Context, dir, name string) (string, error)

// Launcher starts suite scripts with a shell from within the
// directory that holds the script.
type Launcher struct {
	shell []string
	env   []string
	list  listFunc

	log logging.Logger
}

// NewLauncher returns a launcher that runs scripts with the given shell
// command (defaults to "sh"). env is the environment of the scripts, a
// nil env makes them inherit ours.
func NewLauncher(shell []string, env []string, log logging.Logger) *Launcher {
	if len(shell) == 0 {
		shell = defaultShell
	}
	return &Launcher{
		shell: shell,
		env:   env,
		list:  listScript,
		log:   log,
	}
}

// Launch starts the script at scriptPath. The script is invoked as
// "./<name>" from its own directory so that relative lookups within the
// script work as if it was started by hand. If the script can't be
// started the returned error is a *LaunchError.
func (l *Launcher) Launch(ctx context.Context, scriptPath string) (*Process, error) {
	dir := canonicalDir(scriptPath)
	name := filepath.Base(scriptPath)

	if _, err := os.Stat(scriptPath); err != nil {
		return nil, l.launchError(ctx, scriptPath, dir, name, err)
	}

	args := make([]string, 0, len(l.shell))
	args = append(args, l.shell[1:]...)
	args = append(args, "./"+name)

	c := exec.CommandContext(ctx, l.shell[0], args...)
	c.Dir = dir
	c.Env = l.env

	stdout, err := c.StdoutPipe()
	if err != nil {
		return nil, l.launchError(ctx, scriptPath, dir, name, errors.Wrap(err, "failed to setup stdoutPipe"))
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return nil, l.launchError(ctx, scriptPath, dir, name, errors.Wrap(err, "failed to setup stderrPipe"))
	}

	l.log.Infof("Starting %q with args %q in %s.", c.Path, c.Args[1:], dir)
	if err := c.Start(); err != nil {
		return nil, l.launchError(ctx, scriptPath, dir, name, err)
	}
	l.log.Debugf("Started %s with pid %d.", name, c.Process.Pid)

	return &Process{
		Stdout: stdout,
		Stderr: stderr,
		child:  c,
	}, nil
}

func (l *Launcher) launchError(ctx context.Context, scriptPath, dir, name string, cause error) error {
	report := l.diagnose(ctx, scriptPath, dir, name)
	l.log.Debugf("Launch of %s failed: %s", scriptPath, cause)
	return &LaunchError{
		Script: scriptPath,
		Report: report,
		cause:  cause,
	}
}

// diagnose checks the basic properties of the script and lists it if
// those don't explain the failure.
func (l *Launcher) diagnose(ctx context.Context, scriptPath, dir, name string) DiagnosticReport {
	info, err := os.Stat(scriptPath)
	exists := err == nil
	isFile := exists && info.Mode().IsRegular()

	readable := false
	if f, err := os.Open(scriptPath); err == nil {
		readable = true
		_ = f.Close()
	}

	var (
		listing  string
		probeErr error
	)
	if exists && readable && isFile {
		listing, probeErr = l.list(ctx, dir, name)
	}
	return NewDiagnosticReport(dir, exists, readable, isFile, listing, probeErr)
}

// listScript runs "ls -l" on the script. The output is returned even if
// ls exits with a non-zero status; only a failure to run ls at all is
// an error.
func listScript(ctx context.Context, dir, name string) (string, error) {
	c := exec.CommandContext(ctx, "ls", "-l", name)
	c.Dir = dir
	out, err := c.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), nil
		}
		return "", err
	}
	return string(out), nil
}

// canonicalDir returns the directory holding path with all symlinks
// resolved. If that fails, the absolute (or as a last resort the plain)
// directory is returned and the subsequent launch will report it.
func canonicalDir(path string) string {
	dir := filepath.Dir(path)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
