package slides

import (
	"image/color"
	"strings"
	"time"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/surface"
)

// unit is one layout unit in frame pixels.
const unit = 90.0

const (
	timePerChar = 50 * time.Millisecond

	captionSize = 28.0
	bodySize    = 36.0

	genWidth   = 0.5 * unit
	numLayers  = 4
	layersDist = 1.5 * unit

	lossWidth  = 4.5 * unit
	lossHeight = 1.5 * unit
)

var (
	captionColor = mobject.Yellow
	genColor     = mobject.Yellow
	lossColor    = mobject.Red
)

// TextRunTime is how long a text takes to appear: proportional to its length.
func TextRunTime(text string) time.Duration {
	return time.Duration(len(text)) * timePerChar
}

// SplitLines wraps text on word boundaries once a line would pass limit
// characters. The word that starts a new line is not counted towards it.
func SplitLines(text string, limit int) string {
	var b strings.Builder
	counter := 0
	for i, word := range strings.Split(text, " ") {
		if len(word)+counter > limit {
			if i > 0 {
				b.WriteByte('\n')
			}
			counter = 0
		} else {
			if i > 0 {
				b.WriteByte(' ')
			}
			counter += len(word)
		}
		b.WriteString(word)
	}
	return b.String()
}

// ConnectShapes returns two arrows joining the right corners of a to the
// left corners of b.
func ConnectShapes(a, b mobject.Mobject, c color.Color) (up, down *mobject.Arrow) {
	ra, rb := a.Bounds(), b.Bounds()
	up = mobject.NewArrow(ra.Corner(mobject.UpRight), rb.Corner(mobject.UpLeft), c)
	down = mobject.NewArrow(ra.Corner(mobject.DownRight), rb.Corner(mobject.DownLeft), c)
	return up, down
}

func caption(text string) *mobject.Text {
	return mobject.NewText(text, mobject.WithFontSize(captionSize), mobject.WithColor(captionColor))
}

// generator is the layered G_3 G_2 G_1 diagram several scenes share.
type generator struct {
	layers []*mobject.Box
	zs     []*mobject.Text // z_i under each layer
	gs     []*mobject.Text // G_i between layers
	arrows []*mobject.Arrow
}

func newGenerator() *generator {
	g := &generator{}
	height := 1.0
	for i := 0; i < numLayers; i++ {
		height *= 1.4
		layer := mobject.NewBox(genWidth, height*unit, mobject.White)
		if i == 0 {
			mobject.ShiftBy(mobject.AlignOnBorder(layer, mobject.Left, 2*mobject.DefaultBuff), mobject.Up, 1.8*unit)
		} else {
			prev := g.layers[i-1]
			mobject.NextTo(layer, prev, mobject.Right, layersDist)
			up, down := ConnectShapes(prev, layer, genColor)
			gen := mobject.NewText(subscript("G", i), mobject.WithColor(genColor), mobject.WithFontSize(bodySize))
			mobject.NextTo(gen, prev, mobject.Right, 0.5*unit)
			g.gs = append(g.gs, gen)
			g.arrows = append(g.arrows, up, down)
		}
		z := mobject.NewText(subscript("z", i), mobject.WithFontSize(bodySize))
		mobject.NextTo(z, layer, mobject.Down, mobject.DefaultBuff)
		g.layers = append(g.layers, layer)
		g.zs = append(g.zs, z)
	}
	return g
}

// step returns what appears when layer i is revealed.
func (g *generator) step(i int) []mobject.Mobject {
	out := []mobject.Mobject{g.layers[i], g.zs[i]}
	if i > 0 {
		out = append(out, g.gs[i-1], g.arrows[2*(i-1)], g.arrows[2*(i-1)+1])
	}
	return out
}

func (g *generator) all() []mobject.Mobject {
	var out []mobject.Mobject
	for i := range g.layers {
		out = append(out, g.step(i)...)
	}
	return out
}

func (g *generator) last() *mobject.Box { return g.layers[len(g.layers)-1] }

// lossLoop builds the reconstruction loss box and the arrows closing the
// loop from the generator output back to target.
func lossLoop(g *generator, formula string, boxWidth float64, observed string, target mobject.Mobject) []mobject.Mobject {
	mid := g.layers[1].Bounds().Center().Lerp(g.layers[2].Bounds().Center(), 0.5)
	box := mobject.NewBox(boxWidth, lossHeight, lossColor)
	mobject.MoveTo(box, mobject.Point{X: mid.X + 0.25*unit, Y: mobject.FrameHeight - lossHeight/2 - 2*mobject.DefaultBuff})
	loss := mobject.MoveTo(mobject.NewText(formula, mobject.WithFontSize(captionSize)), box.Bounds().Center())

	lb := g.last().Bounds()
	dot1 := mobject.NewDot(mobject.Point{X: lb.X + lb.W + 2.5*unit, Y: lb.Center().Y}, mobject.White)
	xText := mobject.NextTo(mobject.NewText("x", mobject.WithFontSize(bodySize)), dot1, mobject.Up, mobject.DefaultBuff)
	xImage := mobject.NextTo(mobject.NewImage(observed, 1.6*unit, 1.6*unit), xText, mobject.Right, mobject.DefaultBuff)

	bb := box.Bounds()
	dot2 := mobject.NewDot(mobject.Point{X: dot1.Bounds().Center().X, Y: bb.Center().Y}, mobject.White)
	dot3 := mobject.NewDot(bb.Corner(mobject.Right), mobject.White)
	dot4 := mobject.NewDot(bb.Corner(mobject.Left), mobject.White)
	dot5 := mobject.NewDot(mobject.Point{X: target.Bounds().Center().X, Y: bb.Center().Y}, mobject.White)

	chain := []mobject.Point{
		lb.Center(),
		dot1.Bounds().Center(),
		dot2.Bounds().Center(),
		dot3.Bounds().Center(),
	}
	var parts []mobject.Mobject
	parts = append(parts, loss, box, dot1, dot2, dot3, dot4, dot5)
	for i := 0; i+1 < len(chain); i++ {
		parts = append(parts, mobject.NewArrow(chain[i], chain[i+1], mobject.White))
	}
	parts = append(parts,
		mobject.NewArrow(dot4.Bounds().Center(), dot5.Bounds().Center(), mobject.White),
		mobject.NewArrow(dot5.Bounds().Center(), target.Bounds().Corner(mobject.Down), mobject.White),
		xText, xImage,
	)
	return parts
}

func subscript(base string, i int) string {
	return base + "_" + string(rune('0'+i))
}

// fadeInEach fades every object in on its own, all at once.
func fadeInEach(objs []mobject.Mobject) []surface.Animation {
	out := make([]surface.Animation, len(objs))
	for i, m := range objs {
		out[i] = surface.FadeIn(m)
	}
	return out
}
