package mobject

import (
	"image"
	"image/color"
	"math"
)

// Логический кадр, в котором авторы сцен задают координаты.
// Рендерер масштабирует его под итоговое разрешение.
const (
	FrameWidth  = 1280.0
	FrameHeight = 720.0

	// DefaultBuff is the gap used by the layout helpers when none is given.
	DefaultBuff = 16.0
)

// Palette
var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Red    = color.RGBA{252, 98, 85, 255}
	Green  = color.RGBA{131, 193, 103, 255}
	Blue   = color.RGBA{88, 196, 221, 255}
	Gray   = color.RGBA{136, 136, 136, 255}
)

// Point is a position in frame units.
type Point struct {
	X, Y float64
}

// Add returns p shifted by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Lerp returns the point at fraction t between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Direction is a unit step on the frame grid. Y grows downwards.
type Direction struct {
	X, Y float64
}

var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}

	UpLeft    = Direction{-1, -1}
	UpRight   = Direction{1, -1}
	DownLeft  = Direction{-1, 1}
	DownRight = Direction{1, 1}
)

// Plus combines two directions, e.g. Right.Plus(Up) for a corner.
func (d Direction) Plus(o Direction) Direction { return Direction{d.X + o.X, d.Y + o.Y} }

// Rect is an axis-aligned bounding box in frame units.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Min() Point    { return Point{r.X, r.Y} }
func (r Rect) Max() Point    { return Point{r.X + r.W, r.Y + r.H} }
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Corner returns the point of r in direction d from its center:
// Up.Plus(Left) is the top-left corner, Right the middle of the right edge.
func (r Rect) Corner(d Direction) Point {
	c := r.Center()
	return Point{c.X + sign(d.X)*r.W/2, c.Y + sign(d.Y)*r.H/2}
}

// Union returns the smallest rectangle containing r and o.
// An empty rectangle does not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Empty reports whether r has no area and no position worth keeping.
func (r Rect) Empty() bool {
	return r.W <= 0 && r.H <= 0 && r.X == 0 && r.Y == 0
}

// Pixels converts r to a pixel rectangle for a canvas that is scale times
// the logical frame.
func (r Rect) Pixels(scale float64) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X*scale)),
		int(math.Round(r.Y*scale)),
		int(math.Round((r.X+r.W)*scale)),
		int(math.Round((r.Y+r.H)*scale)),
	)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func rectFromPoints(a, b Point) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// scalePoint maps p after scaling by f around origin.
func scalePoint(p, origin Point, f float64) Point {
	return Point{origin.X + (p.X-origin.X)*f, origin.Y + (p.Y-origin.Y)*f}
}
