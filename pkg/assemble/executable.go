// Package assemble merges environment-derived, explicit and default
// arguments into the final argument vector of a dogecoin executable.
package assemble

import "strings"

// Names of the dogecoin executables shipped in the images.
const (
	Daemon    = "dogecoind"
	GUIDaemon = "dogecoin-qt"
	CLI       = "dogecoin-cli"
	TX        = "dogecoin-tx"
)

// Executable describes how the entrypoint treats a known executable.
type Executable struct {
	Name     string
	Console  bool // logs go to stdout: -printtoconsole is appended
	Extended bool // options include the -help-debug set
}

// Registry is the set of executables an image supports.
type Registry struct {
	executables []Executable
}

// NewRegistry returns a registry of the given executables.
func NewRegistry(executables ...Executable) *Registry {
	return &Registry{executables: executables}
}

// DefaultRegistry returns the executables of an image, including the GUI
// daemon when gui is set.
func DefaultRegistry(gui bool) *Registry {
	r := NewRegistry(
		Executable{Name: Daemon, Console: true, Extended: true},
		Executable{Name: CLI},
		Executable{Name: TX},
	)
	if gui {
		r.executables = append(r.executables, Executable{Name: GUIDaemon, Console: true, Extended: true})
	}
	return r
}

// Lookup returns the executable called name.
func (r *Registry) Lookup(name string) (Executable, bool) {
	for _, e := range r.executables {
		if e.Name == name {
			return e, true
		}
	}
	return Executable{}, false
}

// Names lists the known executables.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.executables))
	for _, e := range r.executables {
		names = append(names, e.Name)
	}
	return names
}

// Extended lists the executables whose catalog includes debug options.
func (r *Registry) Extended() []string {
	var names []string
	for _, e := range r.executables {
		if e.Extended {
			names = append(names, e.Name)
		}
	}
	return names
}

// Invocation is the container command split into what to run and with
// which arguments.
type Invocation struct {
	Command    string
	Args       []string
	Known      bool       // Command is a dogecoin executable
	Executable Executable // set when Known
}

// Resolve splits the container command. Without a command, or when the
// first token is an option, the daemon runs with every token as argument.
// A command that is not a dogecoin executable is returned as is, so the
// container can run arbitrary programs.
func (r *Registry) Resolve(args []string) Invocation {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		daemon, ok := r.Lookup(Daemon)
		return Invocation{Command: Daemon, Args: args, Known: ok, Executable: daemon}
	}

	exe, ok := r.Lookup(args[0])
	return Invocation{Command: args[0], Args: args[1:], Known: ok, Executable: exe}
}
