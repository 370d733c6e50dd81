package compass

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Boboshiok123/SoundCompass/internal/config"
	"github.com/Boboshiok123/SoundCompass/internal/params"
)

// Game drives the compass. Each Update handles pointer input and advances the
// easing; each Draw snapshots the parameter table and composites the frame.
type Game struct {
	scene *Scene
	table *params.Table
	inter Interaction
	anim  Animation

	now func() int64 // wall clock in ms, swappable in tests
}

func NewGame(scene *Scene, table *params.Table) *Game {
	return &Game{
		scene: scene,
		table: table,
		anim:  NewAnimation(),
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight) / 2
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.inter.PointerDown(&g.anim, float64(mx), float64(my), cx, cy, g.now()) {
			ebiten.SetFullscreen(g.inter.Fullscreen)
		}
	}
	if g.inter.Dragging {
		g.inter.PointerMove(&g.anim, float64(mx), float64(my), cx, cy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.inter.PointerUp(&g.anim)
	}

	g.anim.StepEasing()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight) / 2

	for _, op := range g.scene.Compose(g.table.Snapshot(), &g.anim) {
		layer, ok := op.Layer.(*ImageLayer)
		if !ok {
			continue
		}
		screen.DrawImage(layer.Image(), &ebiten.DrawImageOptions{GeoM: op.GeoM(cx, cy)})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
