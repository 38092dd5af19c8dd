//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package launch

import "os"

var execFunc = func(string, []string, []string) error {
	return ErrNotSupported
}

var lchown = os.Lchown

// RealCredentials is unavailable without unix credentials.
type RealCredentials struct{}

func (r *RealCredentials) Getuid() int           { return os.Getuid() }
func (r *RealCredentials) Setgroups([]int) error { return ErrNotSupported }
func (r *RealCredentials) Setgid(int) error      { return ErrNotSupported }
func (r *RealCredentials) Setuid(int) error      { return ErrNotSupported }
