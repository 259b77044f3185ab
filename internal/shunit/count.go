package shunit

import (
	"os"
	"regexp"
)

var testFunctionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^function test.*\(\).*`),
	regexp.MustCompile(`^test.*\(\).*`),
}

// EstimateTestCount guesses the number of tests in a shunit script by
// counting the test function definitions in it. It's only meant for
// sizing progress indicators. If the script can't be read, a single
// test is assumed; running it will then explain what's wrong.
func EstimateTestCount(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 1
	}
	defer f.Close()

	count := 0
	err = readLines(f, func(line string) {
		for _, re := range testFunctionPatterns {
			if re.MatchString(line) {
				count++
				return
			}
		}
	})
	if err != nil {
		return 1
	}
	return count
}
