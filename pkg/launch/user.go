package launch

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
)

// ErrNoUser is returned when no target account is configured.
var ErrNoUser = errors.New("USER is not set")

// PrivilegeError reports a failure to switch to the unprivileged account.
type PrivilegeError struct {
	User string
	Op   string // lookup, setgroups, setgid or setuid
	Err  error
}

func (e *PrivilegeError) Error() string {
	return fmt.Sprintf("switch to user %q: %s: %v", e.User, e.Op, e.Err)
}

func (e *PrivilegeError) Unwrap() error {
	return e.Err
}

// UserLookup abstracts user lookup for testability.
type UserLookup interface {
	Lookup(username string) (*user.User, error)
}

// RealUserLookup uses the real os/user package.
type RealUserLookup struct{}

// Lookup looks up a user by username.
func (r *RealUserLookup) Lookup(username string) (*user.User, error) {
	return user.Lookup(username)
}

// Identity is a resolved account.
type Identity struct {
	Name string
	UID  int
	GID  int // primary group
}

// LookupIdentity resolves username to numeric ids.
func LookupIdentity(users UserLookup, username string) (Identity, error) {
	if username == "" {
		return Identity{}, &PrivilegeError{Op: "lookup", Err: ErrNoUser}
	}

	u, err := users.Lookup(username)
	if err != nil {
		return Identity{}, &PrivilegeError{User: username, Op: "lookup", Err: err}
	}

	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return Identity{}, &PrivilegeError{User: username, Op: "lookup", Err: fmt.Errorf("invalid uid %q", u.Uid)}
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return Identity{}, &PrivilegeError{User: username, Op: "lookup", Err: fmt.Errorf("invalid gid %q", u.Gid)}
	}

	return Identity{Name: username, UID: uid, GID: gid}, nil
}

// Credentials changes the identity of the current process.
type Credentials interface {
	Getuid() int
	Setgroups(gids []int) error
	Setgid(gid int) error
	Setuid(uid int) error
}

// DropPrivileges switches the process to username: supplementary groups,
// then group, then user. Reversing group and user would fail once the user
// switch has given up root. A process already running as the account, e.g.
// a container started with --user, keeps its identity.
func DropPrivileges(users UserLookup, creds Credentials, username string) error {
	id, err := LookupIdentity(users, username)
	if err != nil {
		return err
	}
	if uid := creds.Getuid(); uid != 0 && uid == id.UID {
		return nil
	}

	if err := creds.Setgroups([]int{id.GID}); err != nil {
		return &PrivilegeError{User: username, Op: "setgroups", Err: err}
	}
	if err := creds.Setgid(id.GID); err != nil {
		return &PrivilegeError{User: username, Op: "setgid", Err: err}
	}
	if err := creds.Setuid(id.UID); err != nil {
		return &PrivilegeError{User: username, Op: "setuid", Err: err}
	}
	return nil
}
