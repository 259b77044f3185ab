package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/imkira/go-observer"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/magnusbaeck/shunit-runner/internal/discover"
	"github.com/magnusbaeck/shunit-runner/internal/idgen"
	"github.com/magnusbaeck/shunit-runner/internal/logging"
	srobserver "github.com/magnusbaeck/shunit-runner/internal/observer"
	"github.com/magnusbaeck/shunit-runner/internal/shunit"
)

// ErrFailedTests is returned by Run when at least one test failed or
// a suite was aborted.
var ErrFailedTests = errors.New("failed tests")

type Run struct {
	paths       []string
	pattern     string
	shell       string
	timeout     time.Duration
	cleanEnv    bool
	keptEnvVars []string
	quiet       bool
	progress    bool
	reportPath  string

	stdout io.Writer
	stderr io.Writer
	log    logging.Logger
}

func New(
	paths []string,
	pattern string,
	shell string,
	timeout time.Duration,
	cleanEnv bool,
	keptEnvVars []string,
	quiet bool,
	progress bool,
	reportPath string,
	stdout io.Writer,
	stderr io.Writer,
	log logging.Logger,
) Run {
	return Run{
		paths:       paths,
		pattern:     pattern,
		shell:       shell,
		timeout:     timeout,
		cleanEnv:    cleanEnv,
		keptEnvVars: keptEnvVars,
		quiet:       quiet,
		progress:    progress,
		reportPath:  reportPath,
		stdout:      stdout,
		stderr:      stderr,
		log:         log,
	}
}

// Run runs all discovered suites one after another and reports their
// tests to the configured observers. Cancelling ctx aborts the suite
// that is currently running and skips the remaining ones.
func (r Run) Run(ctx context.Context) error {
	shell, err := shellwords.NewParser().Parse(r.shell)
	if err != nil {
		return errors.Wrapf(err, "error parsing shell command %q", r.shell)
	}
	if len(shell) == 0 {
		return errors.New("the shell command is empty")
	}

	scripts, err := discover.Suites(r.paths, r.pattern)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return errors.Errorf("no suites found in %s", strings.Join(r.paths, ", "))
	}

	var env []string
	if r.cleanEnv {
		env = shunit.GetLimitedEnvironment(os.Environ(), r.keptEnvVars)
	}

	runID := idgen.RunID()
	r.log.Infof("Run %s: %d suite(s) with shell %q", runID, len(scripts), shell)

	// Set up observers
	observers := make([]srobserver.Interface, 0)
	liveObserver := observer.NewProperty(srobserver.TestExecutionStart{RunID: runID})
	if !r.quiet {
		observers = append(observers, srobserver.NewSummaryObserver(liveObserver, r.stdout, r.log))
	}
	if r.progress {
		observers = append(observers, srobserver.NewProgressObserver(liveObserver, r.stderr))
	}
	if r.reportPath != "" {
		observers = append(observers, srobserver.NewReportObserver(liveObserver, r.reportPath))
	}
	for _, obs := range observers {
		if err := obs.Start(); err != nil {
			return errors.Wrap(err, "initialization error")
		}
	}

	runner := shunit.NewRunner(shunit.NewLauncher(shell, env, r.log), r.log)
	ok := true
	for _, script := range scripts {
		if ctx.Err() != nil {
			r.log.Warningf("Run %s interrupted, skipping %s", runID, script)
			ok = false
			continue
		}

		suite := shunit.NewScriptSuite(script)
		liveObserver.Update(srobserver.SuiteStart{
			Suite:    suite.Name(),
			Script:   script,
			Expected: shunit.EstimateTestCount(script),
		})

		sink := srobserver.NewPropertySink(liveObserver, suite.Name(), script, r.log)
		r.runSuite(ctx, runner, suite, sink)
		if !sink.OK() {
			ok = false
		}
	}

	liveObserver.Update(srobserver.TestExecutionEnd{})

	var finalizeErr error
	for _, obs := range observers {
		if err := obs.Finalize(); err != nil && finalizeErr == nil {
			finalizeErr = err
		}
	}
	if finalizeErr != nil {
		return finalizeErr
	}

	if !ok {
		return ErrFailedTests
	}
	return nil
}

func (r Run) runSuite(ctx context.Context, runner *shunit.Runner, suite shunit.ScriptSuite, sink shunit.Sink) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	runner.Run(ctx, suite, sink)
	r.log.Debugf("%s completed in %s", suite.Name(), time.Since(start).Round(time.Millisecond))
}

// Count prints the estimated number of tests of each suite and the
// grand total.
func Count(paths []string, pattern string, out io.Writer) error {
	scripts, err := discover.Suites(paths, pattern)
	if err != nil {
		return err
	}

	total := 0
	for _, script := range scripts {
		n := shunit.EstimateTestCount(script)
		total += n
		fmt.Fprintf(out, "%d\t%s\n", n, script)
	}
	fmt.Fprintf(out, "%d\ttotal\n", total)
	return nil
}
