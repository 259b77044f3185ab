package shunit

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/magnusbaeck/shunit-runner/internal/logging"
)

// WrongCollaboratorError is reported when a suite handed to the runner
// does not tell where its script is.
type WrongCollaboratorError struct {
	Suite string
	Type  string
}

func (e WrongCollaboratorError) Error() string {
	return fmt.Sprintf("this runner requires suites that expose a script location, %s (%s) does not", e.Suite, e.Type)
}

// Runner runs shunit suites and reports their tests to a Sink.
type Runner struct {
	launcher *Launcher

	log logging.Logger
}

func NewRunner(launcher *Launcher, log logging.Logger) *Runner {
	return &Runner{
		launcher: launcher,
		log:      log,
	}
}

// Run executes the suite's script and reports its tests to sink. Every
// outcome, including failures to start the script at all, is reported
// through sink. Run blocks until the script has terminated or ctx is
// done.
func (r *Runner) Run(ctx context.Context, suite Suite, sink Sink) {
	locator, ok := suite.(ScriptLocator)
	if !ok {
		sink.SuiteAborted(suite.Name(), WrongCollaboratorError{
			Suite: suite.Name(),
			Type:  fmt.Sprintf("%T", suite),
		})
		return
	}

	p, err := r.launcher.Launch(ctx, locator.Script())
	if err != nil {
		sink.SuiteAborted(suite.Name(), err)
		return
	}

	// Children of the script may hold on to the pipes after the
	// script itself has been killed, so close them ourselves.
	stop := context.AfterFunc(ctx, func() {
		_ = p.Stdout.Close()
		_ = p.Stderr.Close()
	})
	defer stop()

	guarded := &abortOnce{Sink: sink}

	// Both pipes are drained at the same time, otherwise a script
	// writing a lot to stderr would block on a full pipe while we
	// wait for its stdout.
	var g errgroup.Group
	g.Go(func() error {
		return r.forwardStderr(suite.Name(), p.Stderr)
	})
	stdout := &interruptibleReader{ctx: ctx, r: p.Stdout}
	g.Go(func() error {
		NewOutputParser(suite.Name(), r.log).Parse(stdout, guarded)
		// Keep reading after a parse abort so the script can't
		// block on its stdout.
		_, _ = io.Copy(io.Discard, stdout)
		return nil
	})
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		r.log.Errorf("%s: reading standard error: %s", suite.Name(), err)
	}

	waitErr := p.Wait()
	// A deadline that passes after stdout was fully read doesn't undo
	// the outcomes already reported.
	if stdout.interrupted {
		guarded.SuiteAborted(suite.Name(), errors.Wrap(ctx.Err(), "suite interrupted"))
		return
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			r.log.Infof("%s: script exited with status %d", suite.Name(), exitErr.ExitCode())
			return
		}
		r.log.Warningf("%s: failed to wait for script: %s", suite.Name(), waitErr)
	}
}

// forwardStderr passes the script's standard error on to our log. It
// has no say in the test outcomes.
func (r *Runner) forwardStderr(suite string, stderr io.Reader) error {
	err := readLines(stderr, func(line string) {
		r.log.Warningf("%s: stderr: %s", suite, line)
	})
	if err != nil {
		_, _ = io.Copy(io.Discard, stderr)
	}
	return err
}

// interruptibleReader turns any read failure or EOF that happens after
// ctx is done into an interruption error, so that a killed script is
// never mistaken for one that completed. Once that happened,
// interrupted is set and every further read fails the same way.
type interruptibleReader struct {
	ctx context.Context
	r   io.Reader

	interrupted bool
}

func (ir *interruptibleReader) Read(b []byte) (int, error) {
	if ir.interrupted {
		return 0, errors.Wrap(ir.ctx.Err(), "suite interrupted")
	}
	n, err := ir.r.Read(b)
	if err != nil && ir.ctx.Err() != nil {
		ir.interrupted = true
		return n, errors.Wrap(ir.ctx.Err(), "suite interrupted")
	}
	return n, err
}

// abortOnce passes notifications on but lets only the first suite
// abort through.
type abortOnce struct {
	Sink
	aborted bool
}

func (a *abortOnce) SuiteAborted(suite string, cause error) {
	if a.aborted {
		return
	}
	a.aborted = true
	a.Sink.SuiteAborted(suite, cause)
}
