package cli

import (
	"io"
	"os"

	"github.com/phanxgames/remainder/tui"
	"github.com/spf13/cobra"
)

func newTUICmd(opts *options) *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "animate in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal, so log lines go to a
			// file or nowhere.
			level := loggerFromContext(cmd.Context()).GetLevel()
			logger := newLogger(io.Discard, level)
			if logPath != "" {
				f, err := os.Create(logPath)
				if err != nil {
					return err
				}
				defer f.Close()
				logger = newLogger(f, level)
			}
			return tui.Run(cfg, logger)
		},
	}
	cmd.Flags().StringVar(&logPath, "log-file", "", "write logs to this file")
	return cmd
}
