// Package launch replaces the entrypoint process with the target executable,
// dropping root privileges on the way.
package launch

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/dogecoin/docker-entrypoint/pkg/envargs"
)

// ErrNotSupported is returned on platforms without execve(2).
var ErrNotSupported = errors.New("process replacement not supported on this platform")

// NotFoundError reports an executable missing from PATH.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return e.Name + " not found."
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// LaunchError reports a failed process replacement.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("exec %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Request describes the process that replaces the entrypoint.
type Request struct {
	Name string          // executable, resolved through PATH
	Args []string        // arguments after argv[0]
	Env  envargs.Environ // complete environment of the new process
	User string          // account to switch to; empty keeps the current identity
}

// Launcher replaces the current process. On success the real implementation
// never returns; substitutes used in tests return nil instead.
type Launcher interface {
	Launch(req Request) error
}

// PathResolver abstracts executable lookup for testability.
type PathResolver interface {
	LookPath(file string) (string, error)
}

// RealPathResolver searches PATH.
type RealPathResolver struct{}

// LookPath finds the executable in PATH.
func (r *RealPathResolver) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ProcessLauncher resolves the executable, switches to the requested user
// and calls execve(2).
type ProcessLauncher struct {
	Paths PathResolver
	Users UserLookup
	Creds Credentials
}

// NewProcessLauncher returns a launcher acting on the real process.
func NewProcessLauncher() *ProcessLauncher {
	return &ProcessLauncher{
		Paths: &RealPathResolver{},
		Users: &RealUserLookup{},
		Creds: &RealCredentials{},
	}
}

// Launch replaces the current process with req. Nothing is executed when the
// executable is missing or the privilege drop fails.
func (l *ProcessLauncher) Launch(req Request) error {
	path, err := l.Paths.LookPath(req.Name)
	if err != nil {
		return &NotFoundError{Name: req.Name, Err: err}
	}

	if req.User != "" {
		if err := DropPrivileges(l.Users, l.Creds, req.User); err != nil {
			return err
		}
	}

	// argv[0] is the resolved path, as a shell would pass it.
	argv := append([]string{path}, req.Args...)
	// #nosec G204 -- the container command is under the operator's control.
	if err := execFunc(path, argv, req.Env.List()); err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	return nil
}
