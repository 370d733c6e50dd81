package compass

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Boboshiok123/SoundCompass/internal/config"
)

const (
	testCX = float64(config.WindowWidth) / 2
	testCY = float64(config.WindowHeight) / 2
)

// pointAt returns the screen position at angleDeg around the viewport centre.
func pointAt(angleDeg float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	return testCX + 200*math.Cos(rad), testCY + 200*math.Sin(rad)
}

func TestPointerAngleDeg(t *testing.T) {
	require.InDelta(t, 0, PointerAngleDeg(testCX+100, testCY, testCX, testCY), 1e-9)
	require.InDelta(t, 90, PointerAngleDeg(testCX, testCY+100, testCX, testCY), 1e-9)
	require.InDelta(t, 180, PointerAngleDeg(testCX-100, testCY, testCX, testCY), 1e-9)
	require.InDelta(t, -90, PointerAngleDeg(testCX, testCY-100, testCX, testCY), 1e-9)
}

func TestNormalizeDeltaDeg(t *testing.T) {
	cases := []struct {
		raw, want float64
	}{
		{0, 0},
		{10, 10},
		{-10, -10},
		{180, 180},
		{-180, 180},
		{350, -10},
		{-350, 10},
		{181, -179},
	}
	for _, c := range cases {
		got := NormalizeDeltaDeg(c.raw)
		require.InDelta(t, c.want, got, 1e-9, "raw %v", c.raw)
		require.Greater(t, got, -180.0)
		require.LessOrEqual(t, got, 180.0)
	}
}

func TestSnapAngleDeg(t *testing.T) {
	require.Equal(t, 90.0, SnapAngleDeg(100, SnapAngles))
	require.Equal(t, 180.0, SnapAngleDeg(170, SnapAngles))
	// Equidistant: the first listed angle wins.
	require.Equal(t, 90.0, SnapAngleDeg(135, SnapAngles))
	require.Equal(t, 90.0, SnapAngleDeg(-1000, SnapAngles))
	require.Equal(t, 180.0, SnapAngleDeg(4000, SnapAngles))
}

func TestPointerDownStartsDragAndRaisesTargets(t *testing.T) {
	var st Interaction
	anim := NewAnimation()

	x, y := pointAt(40)
	toggled := st.PointerDown(&anim, x, y, testCX, testCY, 1000)

	require.False(t, toggled, "a first click must never toggle fullscreen")
	require.True(t, st.Dragging)
	require.InDelta(t, 40, st.LastAngleDeg, 1e-9)
	require.Equal(t, config.ArcPressScale, anim.ArcTarget)
	require.Equal(t, config.GaugePressScale, anim.GaugeTarget)
}

func TestDragRotatesHandleAndGauge(t *testing.T) {
	var st Interaction
	anim := NewAnimation()

	x, y := pointAt(10)
	st.PointerDown(&anim, x, y, testCX, testCY, 1000)

	x, y = pointAt(35)
	st.PointerMove(&anim, x, y, testCX, testCY)

	require.InDelta(t, 25, anim.HandleAngleDeg, 1e-9)
	require.InDelta(t, 25*config.RotationSpeedFactor, anim.GaugeAngleDeg, 1e-9)
	require.InDelta(t, 35, st.LastAngleDeg, 1e-9)
}

func TestDragAcrossWraparound(t *testing.T) {
	var st Interaction
	anim := NewAnimation()

	// Start just left of the negative x axis and cross it.
	x, y := pointAt(175)
	st.PointerDown(&anim, x, y, testCX, testCY, 1000)

	x, y = pointAt(-175) // raw delta -350, true motion +10
	st.PointerMove(&anim, x, y, testCX, testCY)

	require.InDelta(t, 10, anim.HandleAngleDeg, 1e-9)
	require.InDelta(t, 20, anim.GaugeAngleDeg, 1e-9)
}

func TestPointerMoveWhileIdleIsNoOp(t *testing.T) {
	var st Interaction
	anim := NewAnimation()
	before := anim

	x, y := pointAt(120)
	st.PointerMove(&anim, x, y, testCX, testCY)

	require.Equal(t, before, anim)
	require.False(t, st.Dragging)
}

func TestPointerUpSnapsHandleAndRelaxesTargets(t *testing.T) {
	var st Interaction
	anim := NewAnimation()

	x, y := pointAt(0)
	st.PointerDown(&anim, x, y, testCX, testCY, 1000)
	x, y = pointAt(100)
	st.PointerMove(&anim, x, y, testCX, testCY)
	require.InDelta(t, 100, anim.HandleAngleDeg, 1e-9)

	st.PointerUp(&anim)

	require.False(t, st.Dragging)
	require.Equal(t, 90.0, anim.HandleAngleDeg)
	require.Equal(t, 1.0, anim.ArcTarget)
	require.Equal(t, 1.0, anim.GaugeTarget)
}

func TestLinesScaleStaysClamped(t *testing.T) {
	var st Interaction
	anim := NewAnimation()

	// Clockwise motion shrinks and must hold the floor.
	x, y := pointAt(0)
	st.PointerDown(&anim, x, y, testCX, testCY, 1000)
	for deg := 5.0; deg <= 50; deg += 5 {
		x, y = pointAt(deg)
		st.PointerMove(&anim, x, y, testCX, testCY)
		require.GreaterOrEqual(t, anim.LinesScale, config.LinesScaleMin)
	}
	require.Equal(t, config.LinesScaleMin, anim.LinesScale)

	// Near the ceiling a counter-clockwise step must clamp, not exceed.
	anim.LinesScale = config.LinesScaleMax - config.LinesScaleStep/2
	x, y = pointAt(45)
	st.PointerMove(&anim, x, y, testCX, testCY)
	require.Equal(t, config.LinesScaleMax, anim.LinesScale)
}

func TestLinesScaleBoundedForRandomDrags(t *testing.T) {
	var st Interaction
	anim := NewAnimation()
	rng := rand.New(rand.NewSource(42))

	angle := 0.0
	x, y := pointAt(angle)
	st.PointerDown(&anim, x, y, testCX, testCY, 1000)
	for i := 0; i < 2000; i++ {
		angle += rng.Float64()*80 - 40
		x, y = pointAt(angle)
		st.PointerMove(&anim, x, y, testCX, testCY)
		require.GreaterOrEqual(t, anim.LinesScale, config.LinesScaleMin)
		require.LessOrEqual(t, anim.LinesScale, config.LinesScaleMax)
	}
}

func TestDoubleClickTogglesFullscreenOncePerPair(t *testing.T) {
	var st Interaction
	anim := NewAnimation()
	x, y := pointAt(0)

	require.False(t, st.PointerDown(&anim, x, y, testCX, testCY, 1000))
	require.True(t, st.PointerDown(&anim, x, y, testCX, testCY, 1200))
	require.True(t, st.Fullscreen)

	// A third click shortly after a qualifying pair starts a new pair, it
	// does not extend the old one.
	require.False(t, st.PointerDown(&anim, x, y, testCX, testCY, 1400))
	require.True(t, st.Fullscreen)

	// And its partner toggles back.
	require.True(t, st.PointerDown(&anim, x, y, testCX, testCY, 1500))
	require.False(t, st.Fullscreen)
}

func TestSlowClicksNeverToggle(t *testing.T) {
	var st Interaction
	anim := NewAnimation()
	x, y := pointAt(0)

	require.False(t, st.PointerDown(&anim, x, y, testCX, testCY, 1000))
	require.False(t, st.PointerDown(&anim, x, y, testCX, testCY, 1000+config.DoubleClickMs))
	require.False(t, st.Fullscreen)
}
