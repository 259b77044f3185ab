package shunit

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/magnusbaeck/shunit-runner/internal/logging"
)

const (
	// testPrefix marks the start of a new test. The whole line is
	// the test's name.
	testPrefix = "test"

	// assertPrefix marks an assertion failure within the current
	// test. The rest of the line is the failure message.
	assertPrefix = "ASSERT:"
)

// readLines calls fn for each line of r without its line terminator
// ("\n" or "\r\n"). Lines may be of any length. A last line without
// a terminator is passed on too. The returned error is nil at EOF.
func readLines(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			fn(strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return nil
		}
	}
}

// OutputParser turns the standard output of a shunit script into
// lifecycle notifications.
type OutputParser struct {
	suite string
	log   logging.Logger
}

// NewOutputParser returns a parser for the output of the named suite.
// The suite name is only used when the suite has to be aborted.
func NewOutputParser(suite string, log logging.Logger) *OutputParser {
	return &OutputParser{
		suite: suite,
		log:   log,
	}
}

// Parse reads r until EOF and reports the tests it finds to sink.
//
// A test that failed gets a failure notification but no finished
// notification, and only the first assertion failure of each test is
// reported. Lines that are neither test names nor assertion failures
// are ignored. A read error aborts the suite; notifications already
// sent stand.
func (p *OutputParser) Parse(r io.Reader, sink Sink) {
	var (
		currentTest   string
		testStarted   bool
		currentFailed bool
	)

	err := readLines(r, func(line string) {
		if strings.HasPrefix(line, testPrefix) {
			if testStarted && !currentFailed {
				sink.TestFinished(currentTest)
			}
			currentTest = line
			testStarted = true
			currentFailed = false
			sink.TestStarted(currentTest)
			return
		}

		// Assertions outside of a test have no one to blame.
		if strings.HasPrefix(line, assertPrefix) && testStarted && !currentFailed {
			sink.TestFailure(currentTest, line[len(assertPrefix):])
			currentFailed = true
		}
	})
	if err != nil {
		sink.SuiteAborted(p.suite, errors.Wrap(err, "reading suite output"))
		return
	}

	if !testStarted {
		p.log.Infof("%s: no tests observed", p.suite)
		return
	}
	if !currentFailed {
		sink.TestFinished(currentTest)
	}
}
