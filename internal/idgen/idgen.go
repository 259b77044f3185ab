package idgen

import (
	nanoid "github.com/matoous/go-nanoid"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	size     = 8
)

// RunID returns a short random identifier for a test run. It's printed
// in the log and in reports so that the output of concurrent runs can
// be told apart.
func RunID() string {
	return nanoid.MustGenerate(alphabet, size)
}
