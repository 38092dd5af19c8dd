// Package config selects how the entrypoint discovers options for the image
// it runs in.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"

	"github.com/dogecoin/docker-entrypoint/pkg/assemble"
	"github.com/dogecoin/docker-entrypoint/pkg/catalog"
	"github.com/dogecoin/docker-entrypoint/pkg/envargs"
)

// Variables read by the entrypoint itself.
const (
	FileEnv    = "ENTRYPOINT_CONFIG"
	TraceEnv   = "ENTRYPOINT_TRACE"
	VersionEnv = "DOGECOIN_VERSION"
)

// DefaultFile is read when present; ENTRYPOINT_CONFIG overrides it.
const DefaultFile = "/etc/dogecoin/entrypoint.json"

// ImageVersion is the dogecoin version baked in at build time via ldflags.
var ImageVersion = ""

// Variant is the option discovery strategy of an image.
type Variant string

const (
	VariantHelp    Variant = "help"    // parse `-help` output
	VariantManPage Variant = "manpage" // parse the installed man pages
)

// Releases before 1.14.5 were packaged with man pages and the GUI daemon.
var helpTextReleases = mustConstraint(">= 1.14.5-0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// Config is the resolved entrypoint configuration.
type Config struct {
	Version     string
	Variant     Variant
	GUI         bool
	ManDir      string
	HelpTimeout time.Duration
	Trace       bool
}

// Default is used when neither a version nor a file says otherwise.
func Default() Config {
	return Config{
		Variant:     VariantHelp,
		ManDir:      catalog.DefaultManDir,
		HelpTimeout: catalog.DefaultTimeout,
	}
}

// VariantFor returns the discovery strategy and GUI support of a release.
func VariantFor(version string) (Variant, bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", false, fmt.Errorf("invalid version %q: %w", version, err)
	}
	if helpTextReleases.Check(v) {
		return VariantHelp, false, nil
	}
	return VariantManPage, true, nil
}

// Load resolves the configuration: defaults, then the image version, then
// the config file.
func Load(env envargs.Getter, files catalog.FileReader) (Config, error) {
	cfg := Default()

	cfg.Version = ImageVersion
	if v, ok := env.LookupEnv(VersionEnv); ok && v != "" {
		cfg.Version = v
	}
	if cfg.Version != "" {
		variant, gui, err := VariantFor(cfg.Version)
		if err != nil {
			return Config{}, err
		}
		cfg.Variant, cfg.GUI = variant, gui
	}

	path, explicit := env.LookupEnv(FileEnv)
	if !explicit || path == "" {
		path, explicit = DefaultFile, false
	}
	data, err := files.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.apply(data); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if v, ok := env.LookupEnv(TraceEnv); ok {
		cfg.Trace = v != "" && v != "0" && v != "false"
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	if v := doc.Get("variant"); v.Exists() {
		switch variant := Variant(v.String()); variant {
		case VariantHelp, VariantManPage:
			c.Variant = variant
		default:
			return fmt.Errorf("unknown variant %q", v.String())
		}
	}
	if v := doc.Get("gui"); v.Exists() {
		c.GUI = v.Bool()
	}
	if v := doc.Get("man_dir"); v.Exists() {
		c.ManDir = v.String()
	}
	if v := doc.Get("help_timeout"); v.Exists() {
		timeout, err := parseTimeout(v)
		if err != nil {
			return err
		}
		c.HelpTimeout = timeout
	}
	return nil
}

// parseTimeout accepts a number of seconds or a Go duration string.
func parseTimeout(v gjson.Result) (time.Duration, error) {
	if v.Type == gjson.Number {
		return time.Duration(v.Float() * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(v.String())
	if err != nil {
		return 0, fmt.Errorf("invalid help_timeout: %w", err)
	}
	return d, nil
}

// Registry returns the executables of the image.
func (c Config) Registry() *assemble.Registry {
	return assemble.DefaultRegistry(c.GUI)
}

// Source returns the option source of the image.
func (c Config) Source(runner catalog.CommandRunner, files catalog.FileReader) catalog.Source {
	if c.Variant == VariantManPage {
		return &catalog.ManPageSource{Dir: c.ManDir, Files: files}
	}
	return &catalog.HelpSource{
		Runner:      runner,
		Timeout:     c.HelpTimeout,
		ExtendedFor: c.Registry().Extended(),
	}
}

// Strip removes the entrypoint's own variables so they do not reach the
// executable.
func Strip(env envargs.Environ) envargs.Environ {
	return env.Without(FileEnv, TraceEnv)
}
