package slides

import (
	"log"
	"os"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/source"
	"github.com/ivlev/deck2video/internal/surface"
)

const paperURL = "https://arxiv.org/abs/2102.07364"

// Results shows posterior samples, inpainting and out of distribution
// reconstructions.
type Results struct{ deckScene }

func (sc *Results) Construct(s *surface.Surface) error {
	title := mobject.ToCorner(mobject.NewText("Results", mobject.WithColor(mobject.Yellow)), mobject.UpLeft)
	posterior := mobject.MoveTo(sc.image("posterior.png", 10*unit, 5*unit), center(0, 0.5*unit))
	s.Play(surface.FadeIn(title), surface.FadeIn(posterior))
	s.Wait(0)
	s.EndSlide()

	s.Play(surface.Animate(posterior, func(m mobject.Mobject) {
		m.Scale(0.5)
		mobject.NextTo(m, title, mobject.Down, 2*mobject.DefaultBuff)
		mobject.AlignTo(m, title, mobject.Left)
	}))
	inpaint := mobject.NextTo(sc.image("ilo_inp.png", 6*unit, 3*unit), posterior, mobject.Right, unit)
	s.Play(surface.FadeIn(inpaint))
	s.Wait(0)
	s.EndSlide()

	s.Play(surface.FadeOut(posterior, inpaint))
	frog := mobject.MoveTo(sc.image("frog.png", 8*unit, 4*unit), center(0, 0.5*unit))
	s.Play(surface.FadeIn(frog))
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}

// Outro thanks the audience and links to the paper. When the paper's PDF is
// shipped with the assets its first page is shown next to the QR code.
type Outro struct {
	deckScene
	paper  string
	aspect float64 // высота/ширина первой страницы
}

func (sc *Outro) Setup(*surface.Surface) error {
	path := sc.path("paper.pdf")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	sc.paper = path
	sc.aspect = 4.0 / 3.0

	src, err := source.Open(path)
	if err != nil {
		log.Printf("[!] %s: не удалось открыть %s: %v", sc.name, path, err)
		return nil
	}
	defer src.Close()
	if w, h, err := src.GetPageDimensions(0); err == nil && w > 0 {
		sc.aspect = h / w
	}
	return nil
}

func (sc *Outro) Construct(s *surface.Surface) error {
	thanks := mobject.ToCorner(mobject.NewText("Thank you!", mobject.WithColor(mobject.Yellow)), mobject.UpLeft)
	qr := mobject.MoveTo(mobject.NewQRCode(paperURL, 3*unit), center(-2*unit, 0.5*unit))
	link := mobject.NextTo(mobject.NewText(paperURL, mobject.WithFontSize(captionSize)), qr, mobject.Down, mobject.DefaultBuff)
	anims := []surface.Animation{surface.FadeIn(thanks), surface.FadeIn(qr), surface.Create(link)}
	if sc.paper != "" {
		page := mobject.NextTo(mobject.NewPDFPage(sc.paper, 0, 3*unit, 3*unit*sc.aspect), qr, mobject.Right, 2*unit)
		anims = append(anims, surface.FadeIn(page))
	} else {
		log.Printf("[*] %s: paper.pdf не найден, показываем только QR", sc.name)
	}
	s.Play(anims...)
	s.Wait(0)
	s.EndSlide()
	return s.Err()
}
