package source

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// IOError reports a local file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Loader reads scripts, playbooks and keys. Relative paths resolve against
// BaseDir when it is set.
type Loader struct {
	Fs      afero.Fs
	BaseDir string
}

// NewLoader returns a Loader on the OS filesystem.
func NewLoader(baseDir string) *Loader {
	return &Loader{Fs: afero.NewOsFs(), BaseDir: baseDir}
}

// Resolve returns the path ReadText would open.
func (l *Loader) Resolve(path string) string {
	if l.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.BaseDir, path)
}

// ReadText returns the whole file as a string.
func (l *Loader) ReadText(path string) (string, error) {
	if path == "" {
		return "", &IOError{Path: path, Err: fmt.Errorf("no path given")}
	}
	resolved := l.Resolve(path)
	data, err := afero.ReadFile(l.Fs, resolved)
	if err != nil {
		return "", &IOError{Path: resolved, Err: err}
	}
	return string(data), nil
}
