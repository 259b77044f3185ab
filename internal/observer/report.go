package observer

import (
	"os"

	"github.com/imkira/go-observer"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Report is the YAML document written by the ReportObserver.
type Report struct {
	RunID  string        `yaml:"run_id"`
	Suites []SuiteReport `yaml:"suites"`
}

// SuiteReport holds the results of a single suite.
type SuiteReport struct {
	Name    string       `yaml:"name"`
	Script  string       `yaml:"script"`
	Tests   []TestReport `yaml:"tests"`
	Aborted string       `yaml:"aborted,omitempty"`
}

// TestReport holds the result of a single test.
type TestReport struct {
	Name    string `yaml:"name"`
	Status  Status `yaml:"status"`
	Message string `yaml:"message,omitempty"`
}

// ReportObserver collects all results of a run and writes them to a
// YAML file when the run is over.
type ReportObserver struct {
	done chan struct{}
	prop observer.Property
	path string

	report Report
	err    error
}

func NewReportObserver(prop observer.Property, path string) *ReportObserver {
	return &ReportObserver{
		done: make(chan struct{}),
		prop: prop,
		path: path,
	}
}

func (ro *ReportObserver) Start() error {
	stream := ro.prop.Observe()
	go func() {
		defer close(ro.done)

		follow(stream, func(data interface{}) bool {
			switch event := data.(type) {
			case TestExecutionStart:
				ro.report = Report{RunID: event.RunID, Suites: []SuiteReport{}}
			case SuiteStart:
				ro.report.Suites = append(ro.report.Suites, SuiteReport{
					Name:   event.Suite,
					Script: event.Script,
					Tests:  []TestReport{},
				})
			case TestResult:
				suite := ro.suite(event.Suite, event.Script)
				if event.Status == StatusAborted {
					suite.Aborted = event.Explain
					return true
				}
				suite.Tests = append(suite.Tests, TestReport{
					Name:    event.Name,
					Status:  event.Status,
					Message: event.Explain,
				})
			case TestExecutionEnd:
				ro.err = ro.write()
				return false
			}
			return true
		})
	}()
	return nil
}

// suite returns the report of the suite with the given script, adding
// one for results of suites that were never announced.
func (ro *ReportObserver) suite(name, script string) *SuiteReport {
	for i := len(ro.report.Suites) - 1; i >= 0; i-- {
		if ro.report.Suites[i].Script == script {
			return &ro.report.Suites[i]
		}
	}
	ro.report.Suites = append(ro.report.Suites, SuiteReport{Name: name, Script: script, Tests: []TestReport{}})
	return &ro.report.Suites[len(ro.report.Suites)-1]
}

func (ro *ReportObserver) write() error {
	b, err := yaml.Marshal(ro.report)
	if err != nil {
		return errors.Wrap(err, "failed to encode report")
	}
	if err := os.WriteFile(ro.path, b, 0644); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}

// Finalize waits for the report to be written and returns any error
// that occurred while writing it.
func (ro *ReportObserver) Finalize() error {
	<-ro.done
	return ro.err
}
