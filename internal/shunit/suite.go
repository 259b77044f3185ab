package shunit

import (
	"path/filepath"
	"strings"
)

// Suite is anything the runner can be asked to execute. The name
// identifies the suite when the whole suite has to be aborted.
type Suite interface {
	Name() string
}

// ScriptLocator is implemented by suites that are backed by a shell
// script. The runner refuses to run suites that lack it.
type ScriptLocator interface {
	Script() string
}

// ScriptSuite is a suite consisting of a single shunit script.
type ScriptSuite struct {
	Path string
}

// NewScriptSuite returns a suite for the script at path.
func NewScriptSuite(path string) ScriptSuite {
	return ScriptSuite{Path: path}
}

// Name returns the script's file name without a trailing ".sh".
func (s ScriptSuite) Name() string {
	return strings.TrimSuffix(filepath.Base(s.Path), ".sh")
}

// Script returns the path to the script.
func (s ScriptSuite) Script() string {
	return s.Path
}
