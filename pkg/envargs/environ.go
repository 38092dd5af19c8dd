// Package envargs turns environment variables into command-line arguments.
package envargs

import (
	"os"
	"slices"
	"strings"
)

// Getter abstracts environment lookups.
type Getter interface {
	LookupEnv(key string) (string, bool)
}

// Environ is a process environment held as an explicit value, threaded
// through the entrypoint instead of mutating the process table.
type Environ map[string]string

// FromList parses KEY=VALUE entries as found in os.Environ. Entries without
// "=" are ignored and a later entry overrides an earlier one.
func FromList(list []string) Environ {
	env := make(Environ, len(list))
	for _, kv := range list {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// OS returns the current process environment.
func OS() Environ {
	return FromList(os.Environ())
}

// LookupEnv returns the value of key and whether it is set.
func (e Environ) LookupEnv(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}

// Clone returns an independent copy.
func (e Environ) Clone() Environ {
	out := make(Environ, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Without returns a copy lacking keys.
func (e Environ) Without(keys ...string) Environ {
	out := e.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// List renders the environment as sorted KEY=VALUE entries for execve.
func (e Environ) List() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	list := make([]string, 0, len(keys))
	for _, k := range keys {
		list = append(list, k+"="+e[k])
	}
	return list
}
