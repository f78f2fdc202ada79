// Package cli implements the remainder command-line interface.
//
// Commands:
//   - window: animate in an Ebitengine window
//   - tui: animate in the terminal
//   - run: run headless and print the tallies, the summary and a progress chart
//
// Every command takes --items and --recipients, or reads them from a YAML
// file given with --config. Flags override the file.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/phanxgames/remainder"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	items      int
	recipients int
	verbose    bool
}

// Execute runs the remainder CLI with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "remainder",
		Short:        "animate integer division by dealing items to recipients",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file path (yaml)")
	pf.IntVar(&opts.items, "items", remainder.DefaultTotalItems, "number of items to deal")
	pf.IntVar(&opts.recipients, "recipients", remainder.DefaultTotalRecipients, "number of recipients")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newWindowCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newRunCmd(opts))
	return root
}

// resolveConfig loads the config file if one was given, then applies the
// flags the user set explicitly.
func (o *options) resolveConfig(cmd *cobra.Command) (remainder.Config, error) {
	cfg := remainder.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = remainder.LoadConfig(o.configPath); err != nil {
			return remainder.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("items") {
		cfg.TotalItems = o.items
	}
	if flags.Changed("recipients") {
		cfg.TotalRecipients = o.recipients
	}
	return cfg, cfg.Validate()
}
