// Package catalog discovers the command-line options a dogecoin executable
// accepts, either from its man page or from its own -help output.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// OptionName is an option as the executable accepts it, without leading
// dashes and without any value placeholder, e.g. "rpcuser" or "help-debug".
type OptionName string

// EnvKey returns the environment variable that carries the option:
// upper-cased with every hyphen replaced by an underscore.
func (o OptionName) EnvKey() string {
	return strings.ToUpper(strings.ReplaceAll(string(o), "-", "_"))
}

// ErrNoOptions is returned when a reference text yields no options at all.
var ErrNoOptions = errors.New("no options found")

// DiscoveryError reports that the options of an executable could not be
// obtained.
type DiscoveryError struct {
	Executable string
	Err        error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover options of %s: %v", e.Executable, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// Source provides the raw option tokens of an executable, in the order its
// reference text lists them.
type Source interface {
	Options(ctx context.Context, executable string) ([]string, error)
}

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

// Catalog is the ordered set of options an executable accepts.
type Catalog struct {
	executable string
	names      []OptionName
	seen       map[OptionName]struct{}
}

// New builds a catalog from raw option tokens. Tokens are cleaned with
// Normalize; invalid tokens are dropped and duplicates keep their first
// position.
func New(executable string, raw ...string) *Catalog {
	c := &Catalog{
		executable: executable,
		seen:       make(map[OptionName]struct{}, len(raw)),
	}
	for _, r := range raw {
		name, ok := Normalize(r)
		if !ok {
			continue
		}
		if _, dup := c.seen[name]; dup {
			continue
		}
		c.seen[name] = struct{}{}
		c.names = append(c.names, name)
	}
	return c
}

// Normalize turns a raw token like "  -rpcpassword=<pw>" or "help\-debug="
// into an OptionName.
func Normalize(raw string) (OptionName, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), `\`, "")
	s = strings.TrimLeft(s, "-")
	s, _, _ = strings.Cut(s, "=")
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	}
	if !validName.MatchString(s) {
		return "", false
	}
	return OptionName(s), true
}

// Discover builds the catalog of executable from src.
func Discover(ctx context.Context, src Source, executable string) (*Catalog, error) {
	raw, err := src.Options(ctx, executable)
	if err != nil {
		return nil, &DiscoveryError{Executable: executable, Err: err}
	}

	c := New(executable, raw...)
	if c.Len() == 0 {
		return nil, &DiscoveryError{Executable: executable, Err: ErrNoOptions}
	}
	return c, nil
}

// Executable returns the name of the executable the catalog describes.
func (c *Catalog) Executable() string {
	return c.executable
}

// Names returns the options in discovery order.
func (c *Catalog) Names() []OptionName {
	out := make([]OptionName, len(c.names))
	copy(out, c.names)
	return out
}

// Has reports whether the executable accepts name.
func (c *Catalog) Has(name OptionName) bool {
	_, ok := c.seen[name]
	return ok
}

// Len returns the number of distinct options.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Collisions returns the environment keys shared by more than one option.
// Translation consumes such a key for the first option in discovery order
// only; callers needing determinism should reject catalogs with collisions.
func (c *Catalog) Collisions() map[string][]OptionName {
	byKey := make(map[string][]OptionName)
	for _, name := range c.names {
		key := name.EnvKey()
		byKey[key] = append(byKey[key], name)
	}
	for key, names := range byKey {
		if len(names) < 2 {
			delete(byKey, key)
		}
	}
	return byKey
}
