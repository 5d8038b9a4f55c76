// Package slides is the MLL symposium talk: one scene per section, in the
// order the talk is given.
package slides

import (
	"path/filepath"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/scene"
	"github.com/ivlev/deck2video/internal/surface"
)

const screenWidth = 13 * unit

// DefaultOrder is the order the talk is given in.
var DefaultOrder = []string{
	"Intro",
	"Pandas",
	"Problem",
	"Generator",
	"CSGM",
	"Regularization",
	"SGILO",
	"Results",
}

// deckScene carries what every scene of the talk needs: its name and the
// directory images are loaded from.
type deckScene struct {
	name   string
	assets string
}

func (d *deckScene) Name() string { return d.name }

func (d *deckScene) Setup(*surface.Surface) error { return nil }

func (d *deckScene) image(file string, w, h float64) *mobject.Image {
	return mobject.NewImage(d.path("images", file), w, h)
}

func (d *deckScene) path(elem ...string) string {
	return filepath.Join(append([]string{d.assets}, elem...)...)
}

// Register adds every scene of the talk to r and sets the default order.
// Image paths are resolved under assets.
func Register(r *scene.Registry, assets string) error {
	ds := func(name string) deckScene { return deckScene{name: name, assets: assets} }
	entries := []struct {
		name, desc string
		f          scene.Factory
	}{
		{"Intro", "Title and subtitle", func() scene.Scene { return &Intro{ds("Intro")} }},
		{"Pandas", "Text-to-image samples, StyleGAN faces, GPT-3 quote", func() scene.Scene { return &Pandas{ds("Pandas")} }},
		{"Problem", "Inverse problems we care about", func() scene.Scene { return &Problem{ds("Problem")} }},
		{"SuperResolution", "Zoomed comparison of a low and high resolution image", func() scene.Scene { return &SuperResolution{deckScene: ds("SuperResolution")} }},
		{"Generator", "Layered generator and latent interpolation", func() scene.Scene { return &Generator{deckScene: ds("Generator")} }},
		{"CSGM", "Compressed sensing with generative models and ILO", func() scene.Scene { return &CSGM{ds("CSGM")} }},
		{"Regularization", "Why ILO needs regularization", func() scene.Scene { return &Regularization{ds("Regularization")} }},
		{"SGILO", "Score guided intermediate layer optimization", func() scene.Scene { return &SGILO{ds("SGILO")} }},
		{"Results", "Posterior sampling, inpainting, frogs", func() scene.Scene { return &Results{ds("Results")} }},
		{"Outro", "Thanks and a QR code to the paper", func() scene.Scene { return &Outro{deckScene: ds("Outro")} }},
	}
	for _, e := range entries {
		if err := r.Register(e.name, e.desc, e.f); err != nil {
			return err
		}
	}
	return r.SetDefault(DefaultOrder...)
}
