package slides

import (
	"time"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/surface"
)

const headline = "Generative models are impressive"

// Intro is the title slide.
type Intro struct{ deckScene }

func (sc *Intro) Construct(s *surface.Surface) error {
	title := mobject.ScaleToFitWidth(
		mobject.NewText("Generative Models for Reconstruction, Art and Things in Between"),
		screenWidth)
	subtitle := mobject.ScaleToFitWidth(
		mobject.NewText("A short introduction to Intermediate Layer Optimization"),
		0.8*screenWidth)
	mobject.Arrange(mobject.Down, mobject.DefaultBuff, title, subtitle)

	s.Play(surface.FadeIn(title))
	s.Wait(0)
	s.EndSlide()
	s.Play(surface.FadeIn(subtitle))
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}

// Pandas shows what text-to-image models produce.
type Pandas struct{ deckScene }

func (sc *Pandas) Construct(s *surface.Surface) error {
	title := mobject.NewText(headline, mobject.WithColor(mobject.White))
	s.Play(surface.FadeIn(title).WithRunTime(TextRunTime(headline)))
	s.Wait(0)
	s.EndSlide()

	corner := mobject.ToCorner(mobject.NewText(headline), mobject.UpLeft)
	s.Play(surface.Transform(title, corner))
	s.Wait(0)
	s.EndSlide()

	prompts := []struct{ caption, image string }{
		{"A toilet car", "toilet_car.jpeg"},
		{"Cute golden retriever puppy\nwearing glasses and a suit", "golden_retriever.jpeg"},
		{"Hyperrealistic painting of an\nextraterrestrial alien lovingly\nholding a rabbit", "alien.jpeg"},
	}
	var groups []mobject.Mobject
	var prev *mobject.Text
	for _, p := range prompts {
		text := caption(p.caption)
		if prev == nil {
			mobject.SetY(mobject.AlignOnBorder(text, mobject.Left, unit), 6.2*unit)
		} else {
			mobject.AlignTo(mobject.NextTo(text, prev, mobject.Right, 0.4*unit), prev, mobject.Up)
		}
		img := mobject.NextTo(sc.image(p.image, 3*unit, 3*unit), text, mobject.Up, mobject.DefaultBuff)
		s.Play(surface.FadeIn(text), surface.FadeIn(img))
		s.Wait(0)
		s.EndSlide()
		groups = append(groups, mobject.NewGroup(text, img))
		prev = text
	}

	// Подписи с картинками уменьшаются и уходят под заголовок.
	gallery := mobject.NewGroup(groups...)
	s.Play(surface.Animate(gallery, func(m mobject.Mobject) {
		m.Scale(0.5)
		mobject.AlignTo(mobject.NextTo(m, corner, mobject.Down, mobject.DefaultBuff), corner, mobject.Left)
	}))
	s.Wait(0)
	s.EndSlide()

	face1 := mobject.AlignTo(
		mobject.NextTo(sc.image("stylegan2.jpeg", 2.4*unit, 2.4*unit), gallery, mobject.Down, mobject.DefaultBuff),
		corner, mobject.Left)
	face2 := mobject.NextTo(sc.image("stylegan3.jpeg", 2.4*unit, 2.4*unit), face1, mobject.Right, mobject.DefaultBuff)
	s.Play(surface.FadeIn(face1), surface.FadeIn(face2))
	s.Wait(0)
	s.EndSlide()

	quote := SplitLines("\"It is important for AI researchers to be aware of the potential biases "+
		"in large generative models like GPT-3 and to take steps to mitigate these biases.\" "+
		"-- Written by GPT-3.", 18)
	gpt := mobject.NewText(quote, mobject.WithFontSize(bodySize), mobject.WithColor(mobject.Yellow))
	mobject.NextTo(gpt, mobject.NewGroup(face1, face2), mobject.Right, 2*unit)
	s.Play(surface.FadeIn(gpt).WithRunTime(3 * time.Second))
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}

// Problem asks whether generative models are useful and lists the inverse
// problems the talk is about.
type Problem struct{ deckScene }

func (sc *Problem) Construct(s *surface.Surface) error {
	title := mobject.NewText(headline)
	s.Play(surface.FadeIn(title).WithRunTime(2 * time.Second))
	s.EndSlide()

	useful := mobject.NewText("Are they useful?")
	s.Remove(title)
	s.Play(surface.Create(useful))
	s.Wait(0)
	s.EndSlide()

	s.Play(surface.Animate(useful, func(m mobject.Mobject) {
		mobject.AlignOnBorder(m, mobject.UpLeft, 2*mobject.DefaultBuff)
	}))
	examples := mobject.NewText("Examples of problems we care about:", mobject.WithFontSize(bodySize))
	mobject.AlignTo(mobject.NextTo(examples, useful, mobject.Down, 3*mobject.DefaultBuff), useful, mobject.Left)

	bullets := []*mobject.Text{
		mobject.NewText("* Inpainting", mobject.WithFontSize(bodySize), mobject.WithColor(mobject.Red)),
		mobject.NewText("* Denoising", mobject.WithFontSize(bodySize), mobject.WithColor(mobject.Green)),
		mobject.NewText("* Accelerating MRI", mobject.WithFontSize(bodySize), mobject.WithColor(mobject.Blue)),
	}
	var prev mobject.Mobject = examples
	anims := []surface.Animation{surface.FadeIn(examples)}
	for _, b := range bullets {
		mobject.AlignTo(mobject.NextTo(b, prev, mobject.Down, mobject.DefaultBuff), examples, mobject.Left)
		mobject.ShiftBy(b, mobject.Right, unit)
		anims = append(anims, surface.FadeIn(b))
		prev = b
	}
	s.Play(anims...)
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}
