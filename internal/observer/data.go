package observer

// TestExecutionStart informs consumers that a run has begun.
type TestExecutionStart struct {
	RunID string
}

// TestExecutionEnd informs consumers that a run has finished.
type TestExecutionEnd struct{}

// SuiteStart announces a suite that is about to run along with the
// estimated number of tests in it.
type SuiteStart struct {
	Suite    string
	Script   string
	Expected int
}

// Status is the outcome of a single test.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusAborted Status = "aborted"
)

// TestResult describes the outcome of a single test. Aborted results
// concern the whole suite and have an empty Name. Suite names need not
// be unique, Script identifies the suite.
type TestResult struct {
	Suite   string
	Script  string
	Name    string
	Status  Status
	Explain string
}

// Interface defines the methods of an observer.
type Interface interface {
	// Start fires up the observer in a new goroutine.
	Start() error

	// Finalize waits for the observer to receive the final property value, process it,
	// and shut itself down.
	Finalize() error
}
