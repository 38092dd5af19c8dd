package launch

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogecoin/docker-entrypoint/pkg/envargs"
)

type mockPathResolver struct {
	LookPathFunc func(file string) (string, error)
}

func (m *mockPathResolver) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

type mockUserLookup struct {
	LookupFunc func(username string) (*user.User, error)
}

func (m *mockUserLookup) Lookup(username string) (*user.User, error) {
	return m.LookupFunc(username)
}

// recordingCredentials records identity changes in call order.
type recordingCredentials struct {
	uid    int // current user, root by default
	calls  []string
	failOn string
}

func (r *recordingCredentials) record(op string) error {
	r.calls = append(r.calls, op)
	if op == r.failOn {
		return errors.New("operation not permitted")
	}
	return nil
}

func (r *recordingCredentials) Getuid() int           { return r.uid }
func (r *recordingCredentials) Setgroups([]int) error { return r.record("setgroups") }
func (r *recordingCredentials) Setgid(int) error      { return r.record("setgid") }
func (r *recordingCredentials) Setuid(int) error      { return r.record("setuid") }

var dogecoinUser = &user.User{Username: "dogecoin", Uid: "1000", Gid: "1001", HomeDir: "/home/dogecoin"}

func usersWith(u *user.User) *mockUserLookup {
	return &mockUserLookup{LookupFunc: func(username string) (*user.User, error) {
		if u == nil || username != u.Username {
			return nil, user.UnknownUserError(username)
		}
		return u, nil
	}}
}

func binPath(file string) (string, error) {
	switch file {
	case "dogecoind", "dogecoin-cli", "dogecoin-tx", "bash":
		return "/usr/local/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

type execCall struct {
	binary string
	argv   []string
	env    []string
}

// captureExec swaps execFunc for the duration of the test.
func captureExec(t *testing.T, err error) *[]execCall {
	t.Helper()
	original := execFunc
	t.Cleanup(func() { execFunc = original })

	var calls []execCall
	execFunc = func(binary string, argv []string, env []string) error {
		calls = append(calls, execCall{binary: binary, argv: argv, env: env})
		return err
	}
	return &calls
}

func newTestLauncher(creds *recordingCredentials) *ProcessLauncher {
	return &ProcessLauncher{
		Paths: &mockPathResolver{LookPathFunc: binPath},
		Users: usersWith(dogecoinUser),
		Creds: creds,
	}
}

func TestLauncherInterface(t *testing.T) {
	var _ Launcher = &ProcessLauncher{}
	var _ Launcher = NewProcessLauncher()
}

func TestProcessLauncher_Launch(t *testing.T) {
	calls := captureExec(t, nil)
	creds := &recordingCredentials{}

	err := newTestLauncher(creds).Launch(Request{
		Name: "dogecoind",
		Args: []string{"-datadir=/data", "-printtoconsole"},
		Env:  envargs.Environ{"USER": "dogecoin", "PATH": "/usr/local/bin"},
		User: "dogecoin",
	})

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/usr/local/bin/dogecoind", call.binary)
	assert.Equal(t, []string{"/usr/local/bin/dogecoind", "-datadir=/data", "-printtoconsole"}, call.argv)
	assert.Equal(t, []string{"PATH=/usr/local/bin", "USER=dogecoin"}, call.env)
	assert.Equal(t, []string{"setgroups", "setgid", "setuid"}, creds.calls)
}

func TestProcessLauncher_GroupBeforeUser(t *testing.T) {
	for _, name := range []string{"dogecoind", "dogecoin-cli", "dogecoin-tx"} {
		t.Run(name, func(t *testing.T) {
			captureExec(t, nil)
			creds := &recordingCredentials{}

			require.NoError(t, newTestLauncher(creds).Launch(Request{Name: name, User: "dogecoin"}))

			assert.Equal(t, []string{"setgroups", "setgid", "setuid"}, creds.calls)
		})
	}
}

func TestProcessLauncher_NoUserKeepsIdentity(t *testing.T) {
	calls := captureExec(t, nil)
	creds := &recordingCredentials{}

	err := newTestLauncher(creds).Launch(Request{Name: "bash", Args: []string{"-c", "echo wow"}})

	require.NoError(t, err)
	assert.Empty(t, creds.calls)
	assert.Equal(t, []string{"/usr/local/bin/bash", "-c", "echo wow"}, (*calls)[0].argv)
	assert.Empty(t, (*calls)[0].env)
}

func TestProcessLauncher_AlreadyTargetUser(t *testing.T) {
	calls := captureExec(t, nil)
	creds := &recordingCredentials{uid: 1000, failOn: "setgroups"}

	err := newTestLauncher(creds).Launch(Request{Name: "dogecoind", User: "dogecoin"})

	require.NoError(t, err)
	assert.Empty(t, creds.calls, "identity is kept when already running as the account")
	assert.Len(t, *calls, 1)
}

func TestProcessLauncher_OtherUserStillSwitches(t *testing.T) {
	captureExec(t, nil)
	creds := &recordingCredentials{uid: 1002, failOn: "setgroups"}

	err := newTestLauncher(creds).Launch(Request{Name: "dogecoind", User: "dogecoin"})

	var privErr *PrivilegeError
	require.ErrorAs(t, err, &privErr)
	assert.Equal(t, "setgroups", privErr.Op)
}

func TestProcessLauncher_NotFound(t *testing.T) {
	calls := captureExec(t, nil)
	creds := &recordingCredentials{}

	err := newTestLauncher(creds).Launch(Request{Name: "much-missing", User: "dogecoin"})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "much-missing", notFound.Name)
	assert.Equal(t, "much-missing not found.", err.Error())
	assert.Empty(t, creds.calls, "privileges must not change for a missing executable")
	assert.Empty(t, *calls)
}

func TestProcessLauncher_PrivilegeFailures(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		failOn    string
		wantOp    string
		wantCalls []string
	}{
		{"unknown user", "shibe", "", "lookup", nil},
		{"setgroups fails", "dogecoin", "setgroups", "setgroups", []string{"setgroups"}},
		{"setgid fails before setuid", "dogecoin", "setgid", "setgid", []string{"setgroups", "setgid"}},
		{"setuid fails", "dogecoin", "setuid", "setuid", []string{"setgroups", "setgid", "setuid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := captureExec(t, nil)
			creds := &recordingCredentials{failOn: tt.failOn}

			err := newTestLauncher(creds).Launch(Request{Name: "dogecoind", User: tt.user})

			var privErr *PrivilegeError
			require.ErrorAs(t, err, &privErr)
			assert.Equal(t, tt.wantOp, privErr.Op)
			assert.Equal(t, tt.user, privErr.User)
			assert.Equal(t, tt.wantCalls, creds.calls)
			assert.Empty(t, *calls, "exec must not run after a failed privilege drop")
		})
	}
}

func TestProcessLauncher_ExecFailure(t *testing.T) {
	execErr := errors.New("exec format error")
	captureExec(t, execErr)

	err := newTestLauncher(&recordingCredentials{}).Launch(Request{Name: "dogecoin-tx", User: "dogecoin"})

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.ErrorIs(t, err, execErr)
	assert.Equal(t, "/usr/local/bin/dogecoin-tx", launchErr.Path)
	assert.Equal(t, "exec /usr/local/bin/dogecoin-tx: exec format error", err.Error())
}

func TestLookupIdentity(t *testing.T) {
	tests := []struct {
		name     string
		username string
		u        *user.User
		want     Identity
		wantErr  error
	}{
		{"resolved", "dogecoin", dogecoinUser, Identity{Name: "dogecoin", UID: 1000, GID: 1001}, nil},
		{"empty name", "", dogecoinUser, Identity{}, ErrNoUser},
		{"unknown", "shibe", dogecoinUser, Identity{}, user.UnknownUserError("shibe")},
		{"non numeric uid", "dogecoin", &user.User{Username: "dogecoin", Uid: "S-1-5-21", Gid: "1"}, Identity{}, nil},
		{"non numeric gid", "dogecoin", &user.User{Username: "dogecoin", Uid: "1", Gid: "wow"}, Identity{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupIdentity(usersWith(tt.u), tt.username)

			if tt.want == (Identity{}) {
				var privErr *PrivilegeError
				require.ErrorAs(t, err, &privErr)
				assert.Equal(t, "lookup", privErr.Op)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrivilegeError_Message(t *testing.T) {
	err := &PrivilegeError{User: "dogecoin", Op: "setgid", Err: errors.New("operation not permitted")}

	assert.Equal(t, `switch to user "dogecoin": setgid: operation not permitted`, err.Error())
}

func TestRealPathResolver(t *testing.T) {
	path, err := (&RealPathResolver{}).LookPath("sh")
	if err != nil {
		t.Skipf("sh not found in PATH, skipping: %v", err)
	}
	assert.NotEmpty(t, path)

	_, err = (&RealPathResolver{}).LookPath("nonexistent-command-xyz-12345")
	assert.Error(t, err)
}
