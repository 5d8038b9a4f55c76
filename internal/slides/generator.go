package slides

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/source"
	"github.com/ivlev/deck2video/internal/surface"
)

// Generator builds the layered generator step by step, then walks the
// latent space and shows the interpolated samples.
type Generator struct {
	deckScene
	frames []string
}

// Setup collects the interpolation frames in name order.
func (sc *Generator) Setup(*surface.Surface) error {
	dir := sc.path("images", "interpolations")
	frames, err := source.ListImages(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[!] %s: нет кадров интерполяции в %s", sc.name, dir)
		return nil
	}
	if err != nil {
		return err
	}
	sc.frames = frames
	return nil
}

func (sc *Generator) Construct(s *surface.Surface) error {
	g := newGenerator()
	for i := range g.layers {
		anims := []surface.Animation{surface.FadeIn(g.layers[i]), surface.Create(g.zs[i])}
		if i > 0 {
			anims = append(anims,
				surface.FadeIn(g.arrows[2*(i-1)]), surface.FadeIn(g.arrows[2*(i-1)+1]),
				surface.Create(g.gs[i-1]))
		}
		s.Play(anims...)
	}
	s.Wait(0)
	s.EndSlide()

	axisStart := mobject.Point{X: 2 * mobject.DefaultBuff, Y: mobject.FrameHeight - 2*mobject.DefaultBuff}
	axisEnd := axisStart.Add(mobject.Point{X: 10 * 0.6 * unit})
	axis := mobject.NewArrow(axisStart, axisEnd, mobject.White)
	dot := mobject.NewDot(axisStart, mobject.Blue)
	z0 := g.zs[0].Bounds().Corner(mobject.Down)
	line := mobject.NewLine(dot.Bounds().Center(), z0, mobject.White)

	anims := []surface.Animation{surface.FadeIn(dot), surface.FadeIn(line), surface.FadeIn(axis)}
	var sample *mobject.Image
	if len(sc.frames) > 0 {
		sample = mobject.NextTo(mobject.NewImage(sc.frames[0], 2.6*unit, 2.6*unit), g.last(), mobject.Right, 4*mobject.DefaultBuff)
		anims = append(anims, surface.FadeIn(sample))
	}
	s.Play(anims...)
	s.EndSlide()

	// Точка едет по оси до значения 5 из 10, линия и картинка следуют за ней.
	const walk = 4 * time.Second
	target := axisStart.Lerp(axisEnd, 0.5)
	moved := mobject.NewLine(target, z0, mobject.White)
	anims = []surface.Animation{
		surface.Animate(dot, func(m mobject.Mobject) { mobject.MoveTo(m, target) }).WithRunTime(walk),
		surface.Transform(line, moved).WithRunTime(walk),
	}
	if sample != nil {
		next := mobject.NewImage(sc.frames[len(sc.frames)/2], 2.6*unit, 2.6*unit)
		mobject.MoveTo(next, sample.Bounds().Center())
		anims = append(anims, surface.Transform(sample, next).WithRunTime(walk))
	}
	s.Play(anims...)
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}

// SuperResolution compares a downsampled image with the clean one through
// two zoom frames. It has no slide boundaries of its own.
type SuperResolution struct {
	deckScene
}

func (sc *SuperResolution) Construct(s *surface.Surface) error {
	image := sc.image("downsampled_white.jpg", 4*unit, 4*unit)
	s.Add(image)
	s.Wait(0)

	aligned := mobject.AlignOnBorder(sc.image("downsampled_white.jpg", 5*unit, 5*unit), mobject.Left, 2*mobject.DefaultBuff)
	clean := mobject.NextTo(sc.image("test_image.jpg", 4*unit, 4*unit), aligned, mobject.Right, 2*unit)
	up, down := ConnectShapes(aligned, clean, mobject.White)
	s.Play(surface.Transform(image, aligned), surface.FadeIn(up), surface.FadeIn(down), surface.FadeIn(clean))
	s.Wait(0)

	dot1 := mobject.NewDot(aligned.Bounds().Center(), mobject.Yellow)
	dot2 := mobject.NewDot(clean.Bounds().Center(), mobject.Blue)
	s.Add(dot1, dot2)

	frame1 := mobject.MoveTo(mobject.NewBox(1.2*unit, 0.6*unit, mobject.Yellow), dot1.Bounds().Center())
	frame2 := mobject.MoveTo(mobject.NewBox(1.2*unit, 0.6*unit, mobject.Blue), dot2.Bounds().Center())
	s.Add(frame2)
	pair1 := mobject.NewGroup(frame1, dot1)
	pair2 := mobject.NewGroup(frame2, dot2)
	s.Play(surface.Create(frame1), surface.Animate(pair2, func(m mobject.Mobject) {
		mobject.SetY(m, frame1.Bounds().Center().Y)
	}))

	display := mobject.NewBox(6*unit, 1*unit, mobject.White)
	mobject.ShiftBy(mobject.ShiftBy(display, mobject.Down, 3*unit), mobject.Right, 0.9*unit)
	s.Play(surface.Create(display))

	s.Play(
		surface.Animate(pair2, func(m mobject.Mobject) { mobject.ShiftBy(m, mobject.Down, unit) }),
		surface.Animate(pair1, func(m mobject.Mobject) { mobject.ShiftBy(m, mobject.Down, 0.5*unit) }),
	)
	s.Wait(0)
	s.Wait(0)
	return s.Err()
}
