package slides

import (
	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/surface"
)

// CSGM explains compressed sensing with a generative model, then moves the
// optimization to an intermediate layer (ILO).
type CSGM struct{ deckScene }

func (sc *CSGM) Construct(s *surface.Surface) error {
	g := newGenerator()
	s.Play(surface.FadeIn(g.all()...))
	s.Wait(0)
	s.EndSlide()

	loop := lossLoop(g, "||G_3 G_2 G_1(z_0) - x||^2", lossWidth, sc.path("images", "alex_real.png"), g.zs[0])
	s.Play(fadeInEach(loop)...)
	s.Wait(0)
	s.EndSlide()

	diagram := mobject.NewGroup(append(g.all(), loop...)...)
	home := diagram.Bounds().Center()
	s.Play(surface.Animate(diagram, shrinkToCorner))
	s.Wait(0)
	s.EndSlide()

	recImage := mobject.MoveTo(sc.image("alex_csgm.png", 2.5*unit, 2.5*unit), center(3*unit, 0))
	recText := mobject.NextTo(mobject.NewText("G(z_0*)", mobject.WithColor(mobject.Yellow), mobject.WithFontSize(bodySize)), recImage, mobject.Down, mobject.DefaultBuff)
	s.Play(surface.FadeIn(recImage), surface.FadeIn(recText))
	s.Wait(0)
	s.EndSlide()

	s.Play(surface.FadeOut(recText, recImage), surface.Animate(diagram, func(m mobject.Mobject) {
		m.Scale(2)
		mobject.MoveTo(m, home)
	}))
	s.Wait(0)
	s.EndSlide()

	// ILO: тот же генератор, но оптимизируется z_1, а не z_0.
	ilo := newGenerator()
	iloLoop := lossLoop(ilo, "||G_2 G_1(z_1) - x||^2", lossWidth, sc.path("images", "alex_real.png"), ilo.zs[1])
	iloParts := append(ilo.all(), iloLoop...)
	s.Play(surface.FadeOut(diagram.Children()...), surface.FadeIn(iloParts...))
	s.Wait(0)
	s.EndSlide()

	iloDiagram := mobject.NewGroup(iloParts...)
	s.Play(surface.Animate(iloDiagram, shrinkToCorner))
	s.Wait(0)
	s.EndSlide()

	fake := mobject.MoveTo(sc.image("alex_fake.png", 3*unit, 3*unit), center(2*unit, 0))
	fakeText := mobject.NextTo(mobject.NewText("G_2 G_1(z_1*)", mobject.WithColor(mobject.Yellow), mobject.WithFontSize(bodySize)), fake, mobject.Down, mobject.DefaultBuff)
	s.Play(surface.FadeIn(fake), surface.FadeIn(fakeText))
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}

// Regularization shows an inpainting that works next to one that fails.
type Regularization struct{ deckScene }

func (sc *Regularization) Construct(s *surface.Surface) error {
	text := mobject.ToCorner(mobject.NewText("The issue of regularization", mobject.WithColor(mobject.Yellow)), mobject.UpLeft)
	good := mobject.MoveTo(sc.image("alex_inp.png", 3*unit, 3*unit), center(-2*unit, 0))
	s.Play(surface.FadeIn(text), surface.FadeIn(good))
	s.Wait(0)
	s.EndSlide()

	bad := mobject.MoveTo(sc.image("alex_inp_failure.png", 3*unit, 3*unit), center(2*unit, 0))
	s.Play(surface.FadeIn(bad))
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}

// SGILO adds the score-based prior to the ILO loss.
type SGILO struct{ deckScene }

func (sc *SGILO) Construct(s *surface.Surface) error {
	g := newGenerator()
	loop := lossLoop(g, "||G_2 G_1(z_1) - x||^2\n - lambda log p(z_1)", 1.2*lossWidth, sc.path("images", "alex_inp.png"), g.zs[1])
	s.Play(surface.FadeIn(append(g.all(), loop...)...))
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}

func shrinkToCorner(m mobject.Mobject) {
	m.Scale(0.5)
	mobject.AlignOnBorder(m, mobject.UpLeft, 2*mobject.DefaultBuff)
}

// center returns the frame center offset by dx, dy.
func center(dx, dy float64) mobject.Point {
	return mobject.Point{X: mobject.FrameWidth/2 + dx, Y: mobject.FrameHeight/2 + dy}
}
