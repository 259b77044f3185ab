// Copyright (c) 2017 Magnus Bäck <magnus@noun.se>

package testhelpers

import (
	"os"
	"path/filepath"
)

// FileWithMode contains information about a pathname and its desired
// filemode and contents. It can be used to quickly create those files
// in tests that rely on files in the file system.
type FileWithMode struct {
	Path     string
	Mode     os.FileMode
	Contents string
}

// Create creates the regular file or directory described by the
// FileWithMode type instance. Parent directories are created as needed.
func (fwp FileWithMode) Create(dir string) error {
	path := filepath.Join(dir, fwp.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if fwp.Mode&os.ModeDir != 0 {
		return os.Mkdir(path, fwp.Mode&os.ModePerm)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(fwp.Contents)
	if err != nil {
		return err
	}
	return f.Chmod(fwp.Mode & os.ModePerm)
}

// CreateAll creates all files in dir, failing on the first error.
func CreateAll(dir string, files []FileWithMode) error {
	for _, f := range files {
		if err := f.Create(dir); err != nil {
			return err
		}
	}
	return nil
}
