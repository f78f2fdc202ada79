package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/phanxgames/remainder"
	"github.com/spf13/cobra"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleNumber  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
)

// headlessHost lets a playback script drive an animator that renders into a
// Recorder. Screenshots become log lines describing the recorded frame.
type headlessHost struct {
	animator *remainder.Animator
	recorder *remainder.Recorder
	logger   *log.Logger
}

func (h *headlessHost) Resize(containerWidth float64) {
	h.animator.Resize(containerWidth)
}

func (h *headlessHost) Screenshot(label string) {
	st := h.animator.State()
	h.logger.Info("snapshot",
		"label", label,
		"frame", h.recorder.Frames(),
		"phase", h.animator.Phase(),
		"next", st.Next,
		"commands", len(h.recorder.Commands()))
}

// runResult is what a headless run produced.
type runResult struct {
	frames     int
	progress   []float64 // items dealt after each frame
	recipients []remainder.Recipient
	summary    remainder.Summary
	complete   bool
}

// simulate steps the animator until it completes and the script (if any) is
// done, or maxFrames have run.
func simulate(a *remainder.Animator, host *headlessHost, script *remainder.Script, maxFrames int) runResult {
	var res runResult
	for res.frames < maxFrames {
		if a.Phase() == remainder.PhaseComplete && (script == nil || script.Done()) {
			break
		}
		if script != nil {
			script.Step(host)
		}
		a.Frame()
		res.frames++
		res.progress = append(res.progress, float64(a.State().Next))
	}
	res.recipients = a.Recipients()
	res.summary, res.complete = a.Summary()
	return res
}

// framesToComplete is the number of frames needed to deal every item.
func framesToComplete(items int) int {
	return items * (remainder.AssignInterval + 1)
}

func newRunCmd(opts *options) *cobra.Command {
	var (
		width      float64
		maxFrames  int
		scriptPath string
		noChart    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			rec := remainder.NewRecorder()
			a := remainder.NewAnimator(cfg, rec)
			a.SetLogger(logger)
			if err := a.Setup(width); err != nil {
				return err
			}

			var script *remainder.Script
			if scriptPath != "" {
				if script, err = loadScript(scriptPath); err != nil {
					return err
				}
			}
			if maxFrames <= 0 {
				maxFrames = framesToComplete(cfg.TotalItems)
			}

			host := &headlessHost{animator: a, recorder: rec, logger: logger}
			res := simulate(a, host, script, maxFrames)
			writeReport(cmd.OutOrStdout(), cfg, res, !noChart)
			if !res.complete {
				return fmt.Errorf("stopped after %d frames with %d of %d items dealt",
					res.frames, a.State().Next, cfg.TotalItems)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&width, "width", 420, "container width")
	f.IntVar(&maxFrames, "max-frames", 0, "frame limit (0 = until complete)")
	f.StringVar(&scriptPath, "script", "", "playback script (yaml or json)")
	f.BoolVar(&noChart, "no-chart", false, "skip the progress chart")
	return cmd
}

func writeReport(w io.Writer, cfg remainder.Config, res runResult, chart bool) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%d ÷ %d", cfg.TotalItems, cfg.TotalRecipients)))
	for i, r := range res.recipients {
		bar := strings.Repeat("●", r.Received)
		fmt.Fprintf(w, "  %s %s %s\n",
			styleDim.Render(fmt.Sprintf("#%-3d", i+1)),
			styleNumber.Render(fmt.Sprintf("%3d", r.Received)),
			bar)
	}
	if res.complete {
		fmt.Fprintln(w, styleSuccess.Render(res.summary.String()))
	}
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("%d frames", res.frames)))

	if chart && len(res.progress) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(res.progress,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("items dealt")))
	}
}
