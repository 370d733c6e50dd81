package compass

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLayer wraps a decoded ebiten image so the compositor can stay
// image-library-agnostic.
type ImageLayer struct {
	img *ebiten.Image
}

func NewImageLayer(img *ebiten.Image) *ImageLayer {
	return &ImageLayer{img: img}
}

func (l *ImageLayer) Size() (int, int) {
	b := l.img.Bounds()
	return b.Dx(), b.Dy()
}

func (l *ImageLayer) Image() *ebiten.Image {
	return l.img
}

// GeoM builds the op's transform: move the layer to the origin, scale, rotate
// and recentre on (cx, cy). Rotating about the centre keeps the layer centred
// no matter how its bounding box changes.
func (op DrawOp) GeoM(cx, cy float64) ebiten.GeoM {
	w, h := op.Layer.Size()

	var g ebiten.GeoM
	g.Translate(-float64(w)/2, -float64(h)/2)
	if op.Scale != 1 {
		g.Scale(op.Scale, op.Scale)
	}
	if op.RotateDeg != 0 {
		g.Rotate(-op.RotateDeg * math.Pi / 180)
	}
	g.Translate(cx, cy)
	return g
}
