package testutil

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
)

// HelpRunner fakes the dogecoin executables' -help output. The debug-only
// entries of dogecoind are printed only when -help-debug is passed.
type HelpRunner struct {
	Calls [][]string
	Err   error
}

// RunCommandContext records the call and returns the recorded help menu.
func (h *HelpRunner) RunCommandContext(_ context.Context, name string, args ...string) (stdout, stderr string, err error) {
	h.Calls = append(h.Calls, append([]string{name}, args...))
	if h.Err != nil {
		return "", "error: " + h.Err.Error(), h.Err
	}
	if !slices.Contains(args, "-help") {
		return "", "", fmt.Errorf("%s: unexpected arguments %v", name, args)
	}

	switch name {
	case "dogecoind", "dogecoin-qt":
		out := DogecoindHelp
		if slices.Contains(args, "-help-debug") {
			out += DogecoindDebugHelp
		}
		return out, "", nil
	case "dogecoin-cli":
		return DogecoinCLIHelp, "", nil
	case "dogecoin-tx":
		return DogecoinTxHelp, "", nil
	}
	return "", "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// MapFiles is an in-memory FileReader keyed by path.
type MapFiles map[string]string

// ReadFile returns the stored content or fs.ErrNotExist.
func (m MapFiles) ReadFile(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}
