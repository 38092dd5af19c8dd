package assemble

import (
	"strings"

	"github.com/dogecoin/docker-entrypoint/pkg/envargs"
)

// ConsoleFlag sends the daemon logs to stdout instead of debug.log.
const ConsoleFlag = "-printtoconsole"

// Plan is what the entrypoint runs for a dogecoin executable.
type Plan struct {
	Executable Executable
	Args       []string
	DataDir    string // empty when no data directory is configured
}

// Assemble builds the argument vector: environment arguments first, with
// the data directory leading, then explicit arguments, then -printtoconsole
// for console executables. env is the environment before translation and
// only serves the data directory lookup.
//
// Arguments are not deduplicated. An option given both ways appears twice
// and the executable applies its own precedence (last wins for dogecoin).
func Assemble(exe Executable, envArgs, explicit []string, env envargs.Environ) Plan {
	plan := Plan{Executable: exe}
	plan.DataDir, _ = ResolveDataDir(explicit, env)

	args := make([]string, 0, len(envArgs)+len(explicit)+1)
	var rest []string
	for _, a := range envArgs {
		if isDataDirArg(a) {
			args = append(args, a)
			continue
		}
		rest = append(rest, a)
	}
	args = append(args, rest...)
	args = append(args, explicit...)

	if exe.Console {
		args = append(args, ConsoleFlag)
	}
	plan.Args = args
	return plan
}

func isDataDirArg(arg string) bool {
	name, _, _ := strings.Cut(arg, "=")
	return name == "-"+DataDirOption
}
