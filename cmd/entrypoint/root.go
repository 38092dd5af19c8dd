package main

import (
	"github.com/spf13/cobra"

	"github.com/dogecoin/docker-entrypoint/pkg/assemble"
	"github.com/dogecoin/docker-entrypoint/pkg/catalog"
	"github.com/dogecoin/docker-entrypoint/pkg/config"
	"github.com/dogecoin/docker-entrypoint/pkg/entrypoint"
	"github.com/dogecoin/docker-entrypoint/pkg/envargs"
	"github.com/dogecoin/docker-entrypoint/pkg/launch"
	"github.com/dogecoin/docker-entrypoint/pkg/output"
)

var rootCmd = &cobra.Command{
	Use:   "entrypoint [executable] [args...]",
	Short: "Container entrypoint for the dogecoin images",
	Long: `Entrypoint starts a dogecoin executable as the unprivileged USER.

Environment variables named after an option of the executable become
arguments: MAXCONNECTIONS=150 becomes -maxconnections=150, TESTNET= becomes
-testnet. Arguments starting with a dash are passed to dogecoind. Any other
command runs unchanged.`,
	Version:            Version,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runEntrypoint,
}

// Overridden in tests.
var (
	environ                          = envargs.OS
	configFiles   catalog.FileReader = &catalog.RealFileReader{}
	newSupervisor                    = defaultSupervisor
)

func defaultSupervisor(cfg config.Config, out *output.Printer) *entrypoint.Supervisor {
	files := &catalog.RealFileReader{}
	return &entrypoint.Supervisor{
		Registry: cfg.Registry(),
		Source:   cfg.Source(&catalog.RealCommandRunner{}, files),
		Users:    &launch.RealUserLookup{},
		Dirs:     &launch.RealFileSystem{},
		Launcher: launch.NewProcessLauncher(),
		Out:      out,
	}
}

func runEntrypoint(cmd *cobra.Command, args []string) error {
	env := environ()

	cfg, err := config.Load(env, configFiles)
	if err != nil {
		// The configuration only serves dogecoin executables. Other commands
		// still run so a broken image can be inspected with a shell.
		if assemble.DefaultRegistry(true).Resolve(args).Known {
			(&output.Printer{W: cmd.ErrOrStderr()}).Fail("config", err)
			return err
		}
		cfg = config.Default()
	}
	out := &output.Printer{W: cmd.ErrOrStderr(), Trace: cfg.Trace}
	details := []string{"variant: " + string(cfg.Variant)}
	if cfg.Version != "" {
		details = append(details, "dogecoin: "+cfg.Version)
	}
	out.OK("entrypoint "+Version, details...)

	return newSupervisor(cfg, out).Run(cmd.Context(), args, config.Strip(env))
}
