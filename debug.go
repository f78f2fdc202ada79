package remainder

import "time"

// debugStats accumulates per-frame timings. Only populated when
// RunConfig.Debug is set.
type debugStats struct {
	frames     int
	updateTime time.Duration
	drawTime   time.Duration
}

// debugLogEvery is the number of frames between debug log lines.
const debugLogEvery = 60

// recordUpdate adds one frame's update timing and logs the averages once every
// debugLogEvery frames.
func (g *Game) recordUpdate(d time.Duration) {
	g.stats.frames++
	g.stats.updateTime += d
	if g.stats.frames < debugLogEvery {
		return
	}
	n := time.Duration(g.stats.frames)
	st := g.animator.State()
	g.logger.Debug("frame stats",
		"update", g.stats.updateTime/n,
		"draw", g.stats.drawTime/n,
		"phase", g.animator.Phase(),
		"next", st.Next,
		"elapsed", st.Elapsed)
	g.stats = debugStats{}
}

func (g *Game) recordDraw(d time.Duration) {
	g.stats.drawTime += d
}
