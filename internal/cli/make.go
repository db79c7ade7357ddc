package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/velen-dev/velen/internal/entity"
	"github.com/velen-dev/velen/internal/scaffold"
)

func newMakeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make",
		Short: "Generate a command or category declaration",
		Long:  `Generate a single Velen command (.velen) or category (.vecomp) declaration file.`,
	}

	cmd.AddCommand(newMakeCommandCmd(opts))
	cmd.AddCommand(newMakeCategoryCmd(opts))
	return cmd
}

// ─── make command ──────────────────────────────────────────────────

type commandFlags struct {
	model       string
	handler     string
	desc        string
	category    string
	cooldown    int
	middlewares []string
	afterwares  []string
	shortcuts   []string
	usages      []string
	path        string
}

func newMakeCommandCmd(opts *rootOptions) *cobra.Command {
	var f commandFlags

	cmd := &cobra.Command{
		Use:   "command <name>",
		Short: "Generate a command declaration",
		Long: `Generate a command declaration at ./<path>/<name>.velen.

List flags are repeated once per value; each value is kept verbatim, in order.

Examples:
  velen make command ping --model slash --handler PingHandler
  velen make command ban -m hybrid --handler BanHandler --cooldown 5000 \
    --middlewares auth --middlewares mod --shortcuts b --usages "ban <user>"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := entity.ParseModel(f.model)
			if err != nil {
				return err
			}

			rec := &entity.Command{
				Name:        args[0],
				Model:       model,
				Handler:     f.handler,
				Middlewares: f.middlewares,
				Afterwares:  f.afterwares,
				Shortcuts:   f.shortcuts,
				Usages:      f.usages,
				Path:        opts.cfg.CommandsPath(),
			}
			flags := cmd.Flags()
			if flags.Changed("desc") {
				rec.Desc = &f.desc
			}
			if flags.Changed("category") {
				rec.Category = &f.category
			}
			if flags.Changed("cooldown") {
				rec.Cooldown = &f.cooldown
			}
			if flags.Changed("path") {
				rec.Path = f.path
			}

			return emitRecord(cmd, opts.emitter, rec)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.model, "model", "m", "", "The type of the command: slash, hybrid or message (required)")
	flags.StringVar(&f.handler, "handler", "", "The handler name of the command (required)")
	flags.StringVar(&f.desc, "desc", "", "The description of the command")
	flags.StringVar(&f.category, "category", "", "The category of the command")
	flags.IntVar(&f.cooldown, "cooldown", 0, "The cooldown of the command, in milliseconds")
	flags.StringArrayVar(&f.middlewares, "middlewares", nil, "The middlewares of the command")
	flags.StringArrayVar(&f.afterwares, "afterwares", nil, "The afterwares of the command")
	flags.StringArrayVar(&f.shortcuts, "shortcuts", nil, "The shortcuts or aliases of the command")
	flags.StringArrayVar(&f.usages, "usages", nil, "The usages of the command")
	flags.StringVar(&f.path, "path", "", "The directory to store the command (default: commands)")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("handler")

	return cmd
}

// ─── make category ─────────────────────────────────────────────────

type categoryFlags struct {
	desc        string
	middlewares []string
	afterwares  []string
	path        string
}

func newMakeCategoryCmd(opts *rootOptions) *cobra.Command {
	var f categoryFlags

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Generate a category declaration",
		Long: `Generate a category declaration at ./<path>/<name>.vecomp.

Example:
  velen make category Fun -d "Fun stuff" --middlewares auth`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := &entity.Category{
				Name:        args[0],
				Middlewares: f.middlewares,
				Afterwares:  f.afterwares,
				Path:        opts.cfg.CategoriesPath(),
			}
			if cmd.Flags().Changed("desc") {
				rec.Desc = &f.desc
			}
			if cmd.Flags().Changed("path") {
				rec.Path = f.path
			}

			return emitRecord(cmd, opts.emitter, rec)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.desc, "desc", "d", "", "The description of the category")
	flags.StringArrayVar(&f.middlewares, "middlewares", nil, "The middlewares of the category")
	flags.StringArrayVar(&f.afterwares, "afterwares", nil, "The afterwares of the category")
	flags.StringVar(&f.path, "path", "", "The directory to store the category (default: categories)")

	return cmd
}

// ─── Helpers ───────────────────────────────────────────────────────

type validator interface {
	Validate() error
}

// emitRecord validates rec, writes it and prints the confirmation line.
func emitRecord(cmd *cobra.Command, e *scaffold.Emitter, rec entity.Record) error {
	if v, ok := rec.(validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	result, err := e.Emit(rec)
	if err != nil {
		return err
	}

	printResult(cmd, result)
	return nil
}

func printResult(cmd *cobra.Command, result *scaffold.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "The file was created at %s\n", result.Path)
}
