package remainder

import (
	"reflect"

	"github.com/tanema/gween/ease"
)

// Motion moves assigned items toward their targets. Each frame an item covers
// the fraction Ease(Factor) of its remaining distance, so the approach is
// exponential: it slows as it nears the target and never overshoots for
// fractions in (0, 1].
//
// The default is ease.Linear with Factor 0.1, i.e. 10% of the remaining
// distance per frame. Other gween curves reshape the fraction, not the
// per-frame cadence.
type Motion struct {
	Factor float64
	Ease   ease.TweenFunc
}

// DefaultMotion covers 10% of the remaining distance every frame.
var DefaultMotion = Motion{Factor: 0.1, Ease: ease.Linear}

var linearPC = reflect.ValueOf(ease.Linear).Pointer()

// Fraction returns the share of the remaining distance covered per frame,
// clamped to [0, 1]. A nil or linear Ease returns Factor unchanged; gween
// curves work in float32.
func (m Motion) Fraction() float64 {
	if m.Ease == nil || reflect.ValueOf(m.Ease).Pointer() == linearPC {
		return clamp01(m.Factor)
	}
	return clamp01(float64(m.Ease(float32(m.Factor), 0, 1, 1)))
}

// Step returns pos advanced one frame toward target.
func (m Motion) Step(pos, target Vec2) Vec2 {
	return pos.Lerp(target, m.Fraction())
}
