package compass

// Layer is anything the compositor can place on the canvas. The concrete
// implementation wraps a decoded image; tests substitute fixed-size fakes.
type Layer interface {
	Size() (w, h int)
}

// DrawOp places one layer on the frame, centre-anchored on the viewport
// centre. RotateDeg is counter-clockwise positive (mathematical convention);
// the renderer flips the sign for the y-down screen.
type DrawOp struct {
	Layer     Layer
	Scale     float64
	RotateDeg float64
}

// Scene binds the loaded layers to their compositing roles.
type Scene struct {
	Overlays map[string][]Layer // parameter name -> layers, in draw order
	Order    []string           // overlay iteration order, fixed at load time

	Mask       Layer
	BoldCircle Layer
	ThinCircle Layer
	ThickArc   Layer
	ThinArc    Layer
	Gauge      Layer
	Handle     Layer
}

// Compose builds one frame's draw list, back to front: active overlays first,
// then the static chrome, the gauge, the arcs and finally the handle. The
// same inputs always produce the same list.
func (s *Scene) Compose(active map[string]bool, anim *Animation) []DrawOp {
	ops := make([]DrawOp, 0, 16)

	for _, name := range s.Order {
		if !active[name] {
			continue
		}
		for _, l := range s.Overlays[name] {
			ops = append(ops, DrawOp{Layer: l, Scale: anim.LinesScale})
		}
	}

	ops = append(ops,
		DrawOp{Layer: s.Mask, Scale: 1},
		DrawOp{Layer: s.BoldCircle, Scale: 1},
		DrawOp{Layer: s.ThinCircle, Scale: 1},
		DrawOp{Layer: s.Gauge, Scale: anim.GaugeScale, RotateDeg: -anim.GaugeAngleDeg},
		DrawOp{Layer: s.ThickArc, Scale: anim.ArcScale},
		DrawOp{Layer: s.ThinArc, Scale: anim.ArcScale},
		DrawOp{Layer: s.Handle, Scale: 1, RotateDeg: -anim.HandleAngleDeg},
	)
	return ops
}
