package observer

import (
	"fmt"
	"io"

	"github.com/imkira/go-observer"

	"github.com/magnusbaeck/shunit-runner/internal/logging"
)

// Summary summarizes the number of successful and failed tests.
type Summary struct {
	NumberOk    int
	NumberNotOk int
}

// SummaryObserver implements an observer that reports each test as it
// completes and outputs a summary of the run when it's over.
type SummaryObserver struct {
	done chan struct{}
	prop observer.Property
	out  io.Writer
	log  logging.Logger
}

// NewSummaryObserver initializes a new SummaryObserver struct.
func NewSummaryObserver(prop observer.Property, out io.Writer, log logging.Logger) *SummaryObserver {
	return &SummaryObserver{
		done: make(chan struct{}),
		prop: prop,
		out:  out,
		log:  log,
	}
}

// Start launches a consumer responsible for printing a summary
// at the end of the execution.
func (so *SummaryObserver) Start() error {
	stream := so.prop.Observe()
	go func() {
		defer close(so.done)

		var (
			scripts       []string
			names         = make(map[string]string)
			results       = make(map[string]Summary)
			globalSummary Summary
		)

		// Suites are told apart by their scripts since two scripts
		// in different directories may share a name.
		addSuite := func(name, script string) {
			if _, ok := names[script]; !ok {
				scripts = append(scripts, script)
			}
			names[script] = name
		}

		follow(stream, func(data interface{}) bool {
			switch event := data.(type) {
			case TestExecutionStart:
				scripts = nil
				names = make(map[string]string)
				results = make(map[string]Summary)
				globalSummary = Summary{}
			case SuiteStart:
				addSuite(event.Suite, event.Script)
				results[event.Script] = Summary{}
			case TestResult:
				addSuite(event.Suite, event.Script)
				summary := results[event.Script]
				switch event.Status {
				case StatusPassed:
					summary.NumberOk++
					globalSummary.NumberOk++
					fmt.Fprintf(so.out, "\u2611 %s from %s\n", event.Name, event.Suite)
				case StatusFailed:
					summary.NumberNotOk++
					globalSummary.NumberNotOk++
					fmt.Fprintf(so.out, "\u2610 %s from %s:\n%s\n", event.Name, event.Suite, event.Explain)
				case StatusAborted:
					summary.NumberNotOk++
					globalSummary.NumberNotOk++
					fmt.Fprintf(so.out, "\u2610 %s aborted:\n%s\n", event.Suite, event.Explain)
				}
				results[event.Script] = summary
			case TestExecutionEnd:
				fmt.Fprintf(so.out, "\nSummary: %s All tests: %d/%d\n", getIconStatus(globalSummary.NumberNotOk), globalSummary.NumberOk, globalSummary.NumberOk+globalSummary.NumberNotOk)
				for _, script := range scripts {
					summary := results[script]
					fmt.Fprintf(so.out, "\t %s %s: %d/%d\n", getIconStatus(summary.NumberNotOk), suiteLabel(names, script), summary.NumberOk, summary.NumberOk+summary.NumberNotOk)
				}
				return false
			default:
				so.log.Debugf("Summary observer ignores %+v", data)
			}
			return true
		})
	}()
	return nil
}

// Finalize waits for the observer to receive the final property value
// and output the summary of all test executions.
func (so *SummaryObserver) Finalize() error {
	<-so.done
	return nil
}

// suiteLabel returns the name of the suite with the given script, with
// the script added when other suites share the name.
func suiteLabel(names map[string]string, script string) string {
	name := names[script]
	for other, otherName := range names {
		if other != script && otherName == name {
			return fmt.Sprintf("%s (%s)", name, script)
		}
	}
	return name
}

func getIconStatus(numberNotOk int) string {
	if numberNotOk == 0 {
		return "\u2611"
	}

	return "\u2610"
}
