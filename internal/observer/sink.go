package observer

import (
	"github.com/imkira/go-observer"

	"github.com/magnusbaeck/shunit-runner/internal/logging"
)

// PropertySink receives the lifecycle notifications of one suite and
// publishes the outcomes on a property for the observers.
type PropertySink struct {
	prop   observer.Property
	suite  string
	script string
	ok     bool

	log logging.Logger
}

func NewPropertySink(prop observer.Property, suite string, script string, log logging.Logger) *PropertySink {
	return &PropertySink{
		prop:   prop,
		suite:  suite,
		script: script,
		ok:     true,
		log:    log,
	}
}

func (s *PropertySink) TestStarted(test string) {
	s.log.Debugf("%s: %s started", s.suite, test)
}

func (s *PropertySink) TestFinished(test string) {
	s.log.Debugf("%s: %s finished", s.suite, test)
	s.prop.Update(TestResult{Suite: s.suite, Script: s.script, Name: test, Status: StatusPassed})
}

func (s *PropertySink) TestFailure(test string, message string) {
	s.log.Debugf("%s: %s failed: %s", s.suite, test, message)
	s.ok = false
	s.prop.Update(TestResult{Suite: s.suite, Script: s.script, Name: test, Status: StatusFailed, Explain: message})
}

func (s *PropertySink) SuiteAborted(suite string, cause error) {
	s.log.Errorf("%s aborted: %s", suite, cause)
	s.ok = false
	s.prop.Update(TestResult{Suite: suite, Script: s.script, Status: StatusAborted, Explain: cause.Error()})
}

// OK reports whether no test failed and the suite wasn't aborted.
func (s *PropertySink) OK() bool {
	return s.ok
}
