package compass

import "github.com/Boboshiok123/SoundCompass/internal/config"

// StepEasing advances the eased scales one frame toward their targets. The
// approach is exponential: it never overshoots and converges asymptotically,
// so comparisons against the target need an epsilon.
func (a *Animation) StepEasing() {
	a.ArcScale = approach(a.ArcScale, a.ArcTarget)
	a.GaugeScale = approach(a.GaugeScale, a.GaugeTarget)
}

func approach(current, target float64) float64 {
	return current + (target-current)*config.EasingFactor
}
