package mobject

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

const (
	DefaultStroke = 4.0
	arrowTip      = 18.0
	dotRadius     = 6.0
)

// Box is an axis-aligned rectangle with an optional fill.
type Box struct {
	base
	Stroke      color.Color
	StrokeWidth float64
	Fill        color.Color // nil for no fill
}

// NewBox creates a w×h box centered in the frame.
func NewBox(w, h float64, stroke color.Color) *Box {
	return &Box{
		base:        newBase("box", Rect{(FrameWidth - w) / 2, (FrameHeight - h) / 2, w, h}),
		Stroke:      stroke,
		StrokeWidth: DefaultStroke,
	}
}

func (b *Box) Clone() Mobject {
	c := *b
	return &c
}

func (b *Box) Draw(dst draw.Image, scale float64) error {
	r := b.rect.Pixels(scale)
	if b.Fill != nil {
		draw.Draw(dst, r, image.NewUniform(b.Fill), image.Point{}, draw.Over)
	}
	z := newRasterizer(dst)
	tl, br := b.rect.Min(), b.rect.Max()
	tr, bl := Point{br.X, tl.Y}, Point{tl.X, br.Y}
	for _, seg := range [][2]Point{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}} {
		strokeSegment(z, seg[0], seg[1], b.StrokeWidth, scale)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(b.Stroke), image.Point{})
	return nil
}

// Line is a straight segment between two points.
type Line struct {
	base
	Start, End Point
	Color      color.Color
	Width      float64
}

func NewLine(start, end Point, c color.Color) *Line {
	return &Line{
		base:  newBase("line", rectFromPoints(start, end)),
		Start: start,
		End:   end,
		Color: c,
		Width: DefaultStroke,
	}
}

func (l *Line) Shift(dx, dy float64) {
	l.base.Shift(dx, dy)
	l.Start = l.Start.Add(Point{dx, dy})
	l.End = l.End.Add(Point{dx, dy})
}

func (l *Line) Scale(f float64) {
	origin := l.rect.Min()
	l.Start = scalePoint(l.Start, origin, f)
	l.End = scalePoint(l.End, origin, f)
	l.rect = rectFromPoints(l.Start, l.End)
}

func (l *Line) Clone() Mobject {
	c := *l
	return &c
}

func (l *Line) Draw(dst draw.Image, scale float64) error {
	z := newRasterizer(dst)
	strokeSegment(z, l.Start, l.End, l.Width, scale)
	z.Draw(dst, dst.Bounds(), image.NewUniform(l.Color), image.Point{})
	return nil
}

// Arrow is a line with a triangular tip at End.
type Arrow struct {
	Line
}

func NewArrow(start, end Point, c color.Color) *Arrow {
	a := &Arrow{Line: *NewLine(start, end, c)}
	a.kind = "arrow"
	return a
}

func (a *Arrow) Clone() Mobject {
	c := *a
	return &c
}

func (a *Arrow) Draw(dst draw.Image, scale float64) error {
	dx, dy := a.End.X-a.Start.X, a.End.Y-a.Start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	tip := math.Min(arrowTip, length/2)
	neck := Point{a.End.X - ux*tip, a.End.Y - uy*tip}

	z := newRasterizer(dst)
	strokeSegment(z, a.Start, neck, a.Width, scale)
	half := tip / 2
	polygon(z, scale,
		a.End,
		Point{neck.X - uy*half, neck.Y + ux*half},
		Point{neck.X + uy*half, neck.Y - ux*half},
	)
	z.Draw(dst, dst.Bounds(), image.NewUniform(a.Color), image.Point{})
	return nil
}

// Dot is a small filled disc.
type Dot struct {
	base
	Color color.Color
}

// NewDot creates a dot centered at p.
func NewDot(p Point, c color.Color) *Dot {
	return &Dot{
		base:  newBase("dot", Rect{p.X - dotRadius, p.Y - dotRadius, 2 * dotRadius, 2 * dotRadius}),
		Color: c,
	}
}

func (d *Dot) Clone() Mobject {
	c := *d
	return &c
}

func (d *Dot) Draw(dst draw.Image, scale float64) error {
	const segments = 24
	c := d.rect.Center()
	rx, ry := d.rect.W/2, d.rect.H/2
	pts := make([]Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = Point{c.X + rx*math.Cos(a), c.Y + ry*math.Sin(a)}
	}
	z := newRasterizer(dst)
	polygon(z, scale, pts...)
	z.Draw(dst, dst.Bounds(), image.NewUniform(d.Color), image.Point{})
	return nil
}

func newRasterizer(dst draw.Image) *vector.Rasterizer {
	b := dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// strokeSegment adds a quad of the given width around a→b.
func strokeSegment(z *vector.Rasterizer, a, b Point, width, scale float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	polygon(z, scale,
		Point{a.X + nx, a.Y + ny},
		Point{b.X + nx, b.Y + ny},
		Point{b.X - nx, b.Y - ny},
		Point{a.X - nx, a.Y - ny},
	)
}

func polygon(z *vector.Rasterizer, scale float64, pts ...Point) {
	if len(pts) < 3 {
		return
	}
	z.MoveTo(float32(pts[0].X*scale), float32(pts[0].Y*scale))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X*scale), float32(p.Y*scale))
	}
	z.ClosePath()
}
