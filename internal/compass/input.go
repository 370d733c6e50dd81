package compass

import (
	"math"

	"github.com/Boboshiok123/SoundCompass/internal/config"
)

// SnapAngles are the handle rest positions, in degrees. On release the handle
// jumps to whichever is closest.
var SnapAngles = []float64{90, 180}

// PointerAngleDeg returns the angle of (x, y) around the viewport centre
// (cx, cy), in degrees. Screen coordinates, so angles grow clockwise.
func PointerAngleDeg(x, y, cx, cy float64) float64 {
	return math.Atan2(y-cy, x-cx) * 180 / math.Pi
}

// NormalizeDeltaDeg folds a raw angle difference into (-180, 180]. Pointer
// samples never jump more than a full turn between events, so a single
// correction suffices.
func NormalizeDeltaDeg(d float64) float64 {
	if d > 180 {
		return d - 360
	}
	if d <= -180 {
		return d + 360
	}
	return d
}

// SnapAngleDeg returns the member of snaps closest to angle. Ties go to the
// earlier entry.
func SnapAngleDeg(angle float64, snaps []float64) float64 {
	best := snaps[0]
	for _, s := range snaps[1:] {
		if math.Abs(s-angle) < math.Abs(best-angle) {
			best = s
		}
	}
	return best
}

// PointerDown handles a primary-button press at (x, y). nowMs is the event's
// wall-clock timestamp in milliseconds and must be positive. The return value
// reports whether the press completed a double-click, in which case
// Fullscreen has been toggled and the caller should change the display mode.
func (st *Interaction) PointerDown(anim *Animation, x, y, cx, cy float64, nowMs int64) bool {
	toggled := false
	if st.LastClickMs > 0 && nowMs-st.LastClickMs < config.DoubleClickMs {
		st.Fullscreen = !st.Fullscreen
		toggled = true
		// Consume the pair so a third click cannot chain another toggle.
		st.LastClickMs = 0
	} else {
		st.LastClickMs = nowMs
	}

	st.Dragging = true
	st.LastAngleDeg = PointerAngleDeg(x, y, cx, cy)
	anim.ArcTarget = config.ArcPressScale
	anim.GaugeTarget = config.GaugePressScale
	return toggled
}

// PointerMove rotates the handle and gauge while dragging. Outside a drag it
// is a no-op.
func (st *Interaction) PointerMove(anim *Animation, x, y, cx, cy float64) {
	if !st.Dragging {
		return
	}

	newAngle := PointerAngleDeg(x, y, cx, cy)
	delta := NormalizeDeltaDeg(newAngle - st.LastAngleDeg)

	anim.HandleAngleDeg += delta
	anim.GaugeAngleDeg += delta * config.RotationSpeedFactor

	// Rotation direction alone drives the lines scale, one fixed step per
	// event regardless of magnitude.
	switch {
	case delta > 0:
		anim.LinesScale -= config.LinesScaleStep
	case delta < 0:
		anim.LinesScale += config.LinesScaleStep
	}
	if anim.LinesScale < config.LinesScaleMin {
		anim.LinesScale = config.LinesScaleMin
	}
	if anim.LinesScale > config.LinesScaleMax {
		anim.LinesScale = config.LinesScaleMax
	}

	st.LastAngleDeg = newAngle
}

// PointerUp ends the drag, relaxes the arc and gauge scales and snaps the
// handle to its nearest rest angle.
func (st *Interaction) PointerUp(anim *Animation) {
	st.Dragging = false
	anim.ArcTarget = 1.0
	anim.GaugeTarget = 1.0
	anim.HandleAngleDeg = SnapAngleDeg(anim.HandleAngleDeg, SnapAngles)
}
