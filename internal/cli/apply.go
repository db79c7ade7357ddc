package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/velen-dev/velen/internal/manifest"
	"github.com/velen-dev/velen/internal/scaffold"
)

func newApplyCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply [manifest]",
		Short: "Generate every declaration listed in a manifest",
		Long: `Validate a batch manifest and generate each category and command it lists,
categories first. Generation stops at the first failure.

The manifest defaults to the "manifest" setting (velen.yaml).

Example manifest:
  requires: ">= 1.0.0"
  categories:
    - name: Fun
      desc: Fun stuff
  commands:
    - name: ping
      model: slash
      handler: PingHandler
      category: Fun`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.ManifestPath()
			if len(args) == 1 {
				path = args[0]
			}

			valResult, err := manifest.ValidateFile(path)
			if err != nil {
				return err
			}
			if err := valResult.Err(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			f, err := manifest.ParseFile(path)
			if err != nil {
				return err
			}
			if err := manifest.CheckRequires(f.Requires, opts.build.version); err != nil {
				return err
			}

			records, err := f.Records(manifest.Defaults{
				CommandsPath:   opts.cfg.CommandsPath(),
				CategoriesPath: opts.cfg.CategoriesPath(),
			})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				if dryRun {
					content, err := opts.emitter.Render(rec)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "# %s\n%s\n", scaffold.ResolvePath(rec), content)
					continue
				}

				result, err := opts.emitter.Emit(rec)
				if err != nil {
					return err
				}
				printResult(cmd, result)
			}

			if !dryRun {
				fmt.Fprintf(out, "Generated %d declaration(s) from %s\n", len(records), path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the declarations and their paths without writing files")
	return cmd
}
