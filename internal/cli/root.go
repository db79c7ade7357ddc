package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/velen-dev/velen/internal/branding"
	"github.com/velen-dev/velen/internal/config"
	"github.com/velen-dev/velen/internal/scaffold"
)

// buildInfo is injected via ldflags.
type buildInfo struct {
	version string
	commit  string
	date    string
}

// rootOptions is shared by every subcommand of one command tree.
type rootOptions struct {
	build      buildInfo
	configFile string
	cfg        *config.Config
	emitter    *scaffold.Emitter
}

// newRootCmd assembles the command tree. The declaration template is compiled
// here, once per process.
func newRootCmd(info buildInfo) *cobra.Command {
	opts := &rootOptions{
		build:   info,
		emitter: scaffold.New(scaffold.MustTemplate()),
	}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` generates command (.velen) and category (.vecomp) declaration
files for the Velen framework, one at a time or in batch from a manifest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		fmt.Sprintf("Settings file (default: ./%s)", branding.ConfigFile()))

	cmd.AddCommand(newMakeCmd(opts))
	cmd.AddCommand(newApplyCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd(opts))

	return cmd
}

// Execute runs the root command with build info injected via ldflags. Any
// error is printed once to stderr.
func Execute(version, commit, date string) error {
	cmd := newRootCmd(buildInfo{version: version, commit: commit, date: date})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
