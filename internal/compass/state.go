// Package compass implements the interactive compass: pointer handling,
// scale/rotation animation and the frame compositor.
package compass

import "github.com/Boboshiok123/SoundCompass/internal/config"

// Interaction is the pointer-driven state. It is owned by the render loop and
// mutated only from pointer events.
type Interaction struct {
	Dragging     bool
	LastAngleDeg float64
	LastClickMs  int64
	Fullscreen   bool
}

// Animation holds the continuously animated values. The arc and gauge scales
// ease toward their targets each frame; the rotation angles are applied
// directly by the pointer handlers.
type Animation struct {
	ArcScale    float64
	ArcTarget   float64
	GaugeScale  float64
	GaugeTarget float64

	// GaugeAngleDeg accumulates without bound, the gauge may spin freely.
	GaugeAngleDeg  float64
	HandleAngleDeg float64

	LinesScale float64
}

// NewAnimation returns the resting state: everything at unit scale, no
// rotation.
func NewAnimation() Animation {
	return Animation{
		ArcScale:    1.0,
		ArcTarget:   1.0,
		GaugeScale:  1.0,
		GaugeTarget: 1.0,
		LinesScale:  config.LinesScaleMin,
	}
}
