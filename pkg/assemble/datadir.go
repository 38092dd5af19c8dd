package assemble

import (
	"strings"

	"github.com/dogecoin/docker-entrypoint/pkg/envargs"
)

// DataDirEnv is the fallback source of the data directory.
const DataDirEnv = "DATADIR"

// DataDirOption is the option the executables use for the data directory.
const DataDirOption = "datadir"

// ExplicitDataDir returns the data directory given on the command line as
// -datadir or --datadir, either as "-datadir=PATH" or "-datadir PATH". The
// last occurrence wins. Empty values are treated as absent.
func ExplicitDataDir(args []string) (string, bool) {
	var dir string
	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(args[i], "=")
		if name != "-"+DataDirOption && name != "--"+DataDirOption {
			continue
		}
		if !hasValue {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				continue
			}
			i++
			value = args[i]
		}
		dir = value
	}
	return dir, dir != ""
}

// ResolveDataDir picks the data directory: explicit argument first, then
// the DATADIR variable. It reports false when neither is set.
func ResolveDataDir(explicit []string, env envargs.Environ) (string, bool) {
	if dir, ok := ExplicitDataDir(explicit); ok {
		return dir, true
	}
	if dir, ok := env.LookupEnv(DataDirEnv); ok && dir != "" {
		return dir, true
	}
	return "", false
}
