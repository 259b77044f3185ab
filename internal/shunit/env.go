package shunit

import (
	"strings"
)

// GetLimitedEnvironment returns the "key=value" entries of originalVars
// (e.g. from os.Environ()) whose names are listed in keptVars, in their
// original order. Entries without a "=" are dropped.
func GetLimitedEnvironment(originalVars, keptVars []string) []string {
	kept := make(map[string]bool, len(keptVars))
	for _, name := range keptVars {
		kept[name] = true
	}

	// os.Getenv() can't tell unset variables from empty ones, so
	// walk the full list instead.
	result := []string{}
	for _, keyval := range originalVars {
		name, _, found := strings.Cut(keyval, "=")
		if found && kept[name] {
			result = append(result, keyval)
		}
	}
	return result
}
