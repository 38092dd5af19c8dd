//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package launch

import "golang.org/x/sys/unix"

// execFunc replaces the process image; swapped out in tests.
var execFunc = unix.Exec

var lchown = unix.Lchown

// RealCredentials changes the identity of the running process.
type RealCredentials struct{}

// Getuid returns the real user id.
func (r *RealCredentials) Getuid() int {
	return unix.Getuid()
}

// Setgroups replaces the supplementary groups.
func (r *RealCredentials) Setgroups(gids []int) error {
	return unix.Setgroups(gids)
}

// Setgid sets the real, effective and saved group id.
func (r *RealCredentials) Setgid(gid int) error {
	return unix.Setgid(gid)
}

// Setuid sets the real, effective and saved user id.
func (r *RealCredentials) Setuid(uid int) error {
	return unix.Setuid(uid)
}
