package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"music-extractor/domain/extract"
)

// EnvVar is the environment variable consulted for an ffmpeg path override
const EnvVar = "FFMPEG_PATH"

// Locator finds a usable ffmpeg executable. Resolution order:
//
//  1. an explicit path passed to Locate (trusted verbatim)
//  2. the FFMPEG_PATH environment variable (trusted verbatim)
//  3. bundled copies next to the running executable
//  4. the system search path
//
// Locate has no side effects and is safe to call repeatedly; callers that
// run batches should resolve once and pass the result down.
type Locator struct {
	getenv     func(string) string
	executable func() (string, error)
	exists     func(string) bool
	lookPath   func(string) (string, error)
}

// LocatorOption is a functional option for configuring Locator
type LocatorOption func(*Locator)

// WithGetenv sets a custom environment lookup (for testing)
func WithGetenv(fn func(string) string) LocatorOption {
	return func(l *Locator) {
		l.getenv = fn
	}
}

// WithExecutablePath sets a custom self-executable lookup (for testing)
func WithExecutablePath(fn func() (string, error)) LocatorOption {
	return func(l *Locator) {
		l.executable = fn
	}
}

// WithExistsCheck sets a custom file existence check (for testing)
func WithExistsCheck(fn func(string) bool) LocatorOption {
	return func(l *Locator) {
		l.exists = fn
	}
}

// WithLookPath sets a custom search-path lookup (for testing)
func WithLookPath(fn func(string) (string, error)) LocatorOption {
	return func(l *Locator) {
		l.lookPath = fn
	}
}

// NewLocator creates a Locator backed by the real environment and filesystem
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		getenv:     os.Getenv,
		executable: os.Executable,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
		lookPath: exec.LookPath,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// ExeName returns the platform-appropriate ffmpeg executable name
func ExeName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

// bundledCandidates lists conventional bundled-copy locations relative to
// the directory containing the running executable.
func bundledCandidates(exeDir string) []string {
	name := ExeName()
	return []string{
		filepath.Join(exeDir, name),
		filepath.Join(exeDir, "bin", name),
		filepath.Join(exeDir, "ffmpeg", "bin", name),
	}
}

// Locate resolves the path to a usable ffmpeg executable.
// An explicit path or an FFMPEG_PATH override is returned verbatim without
// an existence check; that is a caller contract. Bundled candidates and the
// search path are verified before being returned.
func (l *Locator) Locate(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if env := l.getenv(EnvVar); env != "" {
		return env, nil
	}

	if exePath, err := l.executable(); err == nil {
		for _, candidate := range bundledCandidates(filepath.Dir(exePath)) {
			if l.exists(candidate) {
				return candidate, nil
			}
		}
	}

	if found, err := l.lookPath("ffmpeg"); err == nil {
		return found, nil
	}

	return "", fmt.Errorf("%w: set %s or install ffmpeg on your PATH", extract.ErrToolNotFound, EnvVar)
}
