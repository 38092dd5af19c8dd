// Package entrypoint runs the container command: it turns the environment
// into arguments for the dogecoin executables, prepares the data directory
// as root and replaces itself with the target process.
package entrypoint

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dogecoin/docker-entrypoint/pkg/assemble"
	"github.com/dogecoin/docker-entrypoint/pkg/catalog"
	"github.com/dogecoin/docker-entrypoint/pkg/envargs"
	"github.com/dogecoin/docker-entrypoint/pkg/launch"
	"github.com/dogecoin/docker-entrypoint/pkg/output"
)

// UserEnv names the unprivileged account dogecoin executables run as.
const UserEnv = "USER"

// Supervisor wires the startup steps together. Every collaborator is
// injected so the whole sequence runs in tests without root or execve.
type Supervisor struct {
	Registry *assemble.Registry
	Source   catalog.Source
	Users    launch.UserLookup
	Dirs     launch.FileSystem
	Launcher launch.Launcher
	Out      *output.Printer
}

// Run executes the container command args with environment env. With the
// real launcher it only returns on failure.
func (s *Supervisor) Run(ctx context.Context, args []string, env envargs.Environ) error {
	inv := s.Registry.Resolve(args)
	if !inv.Known {
		s.out().OK("command: "+inv.Command, "mode: passthrough")
		return s.launch(launch.Request{Name: inv.Command, Args: inv.Args, Env: env})
	}

	req, err := s.Prepare(ctx, inv, env)
	if err != nil {
		return err
	}
	return s.launch(req)
}

// Prepare performs every step before the launch of a dogecoin executable:
// option discovery, translation, assembly and data directory setup.
func (s *Supervisor) Prepare(ctx context.Context, inv assemble.Invocation, env envargs.Environ) (launch.Request, error) {
	name := inv.Executable.Name

	cat, err := catalog.Discover(ctx, s.Source, name)
	if err != nil {
		s.out().Fail("catalog: "+name, err)
		return launch.Request{}, err
	}
	s.out().OK("catalog: "+name, catalogDetails(cat)...)

	envArgs, rest := envargs.Translate(cat, env)
	plan := assemble.Assemble(inv.Executable, envArgs, inv.Args, env)
	s.out().OK("arguments: "+name, "argv: "+maskValues(plan.Args))

	username := env[UserEnv]
	id, err := launch.LookupIdentity(s.Users, username)
	if err != nil {
		s.out().Fail("user: "+username, err)
		return launch.Request{}, err
	}

	if plan.DataDir != "" {
		if err := launch.PrepareDataDir(s.Dirs, plan.DataDir, id); err != nil {
			s.out().Fail("datadir: "+plan.DataDir, err)
			return launch.Request{}, err
		}
		s.out().OK("datadir: "+plan.DataDir, fmt.Sprintf("owner: %d:%d", id.UID, id.GID))
	}

	return launch.Request{Name: name, Args: plan.Args, Env: rest, User: username}, nil
}

func (s *Supervisor) launch(req launch.Request) error {
	if err := s.Launcher.Launch(req); err != nil {
		s.out().Fail("launch: "+req.Name, err)
		return err
	}
	return nil
}

func (s *Supervisor) out() *output.Printer {
	if s.Out == nil {
		return &output.Printer{W: io.Discard}
	}
	return s.Out
}

// maskValues renders args for the trace output. Values often carry RPC
// credentials, so only option names are shown.
func maskValues(args []string) string {
	masked := make([]string, len(args))
	for i, arg := range args {
		name, _, hasValue := strings.Cut(arg, "=")
		switch {
		case !strings.HasPrefix(arg, "-"):
			masked[i] = "***"
		case hasValue:
			masked[i] = name + "=***"
		default:
			masked[i] = arg
		}
	}
	return strings.Join(masked, " ")
}

func catalogDetails(cat *catalog.Catalog) []string {
	details := []string{fmt.Sprintf("options: %d", cat.Len())}
	for key, names := range cat.Collisions() {
		details = append(details, fmt.Sprintf("collision: %s <- %v", key, names))
	}
	return details
}
