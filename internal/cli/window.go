package cli

import (
	"fmt"
	"os"

	"github.com/phanxgames/remainder"
	"github.com/spf13/cobra"
)

func newWindowCmd(opts *options) *cobra.Command {
	var (
		width, height int
		showFPS       bool
		debug         bool
		shotDir       string
		scriptPath    string
		exitWhenDone  bool
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "animate in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			rc := remainder.RunConfig{
				Title:         fmt.Sprintf("%d ÷ %d", cfg.TotalItems, cfg.TotalRecipients),
				Width:         width,
				Height:        height,
				ShowFPS:       showFPS,
				Debug:         debug,
				ScreenshotDir: shotDir,
				ExitWhenDone:  exitWhenDone,
				Logger:        logger,
			}
			if scriptPath != "" {
				if rc.Script, err = loadScript(scriptPath); err != nil {
					return err
				}
			}
			logger.Debug("opening window", "width", width, "height", height)
			return remainder.Run(cfg, rc)
		},
	}

	f := cmd.Flags()
	f.IntVar(&width, "width", 420, "window width")
	f.IntVar(&height, "height", 300, "window height")
	f.BoolVar(&showFPS, "fps", false, "show FPS counter")
	f.BoolVar(&debug, "debug", false, "log frame timings")
	f.StringVar(&shotDir, "screenshots", remainder.DefaultScreenshotDir, "screenshot directory")
	f.StringVar(&scriptPath, "script", "", "playback script (yaml or json)")
	f.BoolVar(&exitWhenDone, "exit", false, "close the window when the script finishes")
	return cmd
}

func loadScript(path string) (*remainder.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return remainder.LoadScript(data)
}
