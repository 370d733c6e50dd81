// Package assets loads the compass artwork at startup.
package assets

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Boboshiok123/SoundCompass/internal/compass"
	"github.com/Boboshiok123/SoundCompass/internal/params"
)

// LoadScene reads every image the compositor needs from dir. Any missing or
// undecodable file is an error; the caller aborts before entering the render
// loop.
func LoadScene(dir string) (*compass.Scene, error) {
	load := func(name string) (compass.Layer, error) {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		return compass.NewImageLayer(img), nil
	}

	scene := &compass.Scene{Overlays: make(map[string][]compass.Layer)}
	for _, ov := range params.Registry {
		scene.Order = append(scene.Order, ov.Name)
		for _, file := range ov.Layers {
			layer, err := load(file)
			if err != nil {
				return nil, err
			}
			scene.Overlays[ov.Name] = append(scene.Overlays[ov.Name], layer)
		}
	}

	chrome := []struct {
		dst  *compass.Layer
		file string
	}{
		{&scene.Mask, "Mask.png"},
		{&scene.BoldCircle, "BoldCircle.png"},
		{&scene.ThinCircle, "ThinCircle.png"},
		{&scene.ThickArc, "ThickArc.png"},
		{&scene.ThinArc, "ThinArc.png"},
		{&scene.Gauge, "Gauge.png"},
		{&scene.Handle, "Handle.png"},
	}
	for _, c := range chrome {
		layer, err := load(c.file)
		if err != nil {
			return nil, err
		}
		*c.dst = layer
	}

	return scene, nil
}
