package envargs

import "github.com/dogecoin/docker-entrypoint/pkg/catalog"

// Argument is an option taken from the environment.
type Argument struct {
	Name  catalog.OptionName
	Value string
}

// String renders the argument: "-name=value", or "-name" for an empty value
// so flag-only options can be enabled with an empty variable.
func (a Argument) String() string {
	if a.Value == "" {
		return "-" + string(a.Name)
	}
	return "-" + string(a.Name) + "=" + a.Value
}

// Arguments looks up every catalog option in env, in discovery order, and
// returns those found along with env minus the consumed variables. env is
// not modified. Variables that match no option stay in the returned
// environment untouched.
func Arguments(cat *catalog.Catalog, env Environ) ([]Argument, Environ) {
	rest := env.Clone()

	var found []Argument
	for _, name := range cat.Names() {
		key := name.EnvKey()
		value, ok := rest[key]
		if !ok {
			continue
		}
		delete(rest, key)
		found = append(found, Argument{Name: name, Value: value})
	}
	return found, rest
}

// Translate is Arguments rendered as command-line strings.
func Translate(cat *catalog.Catalog, env Environ) ([]string, Environ) {
	found, rest := Arguments(cat, env)

	args := make([]string, 0, len(found))
	for _, a := range found {
		args = append(args, a.String())
	}
	return args, rest
}
