// Package mobject holds the visual objects scenes place on a surface:
// text, raster images, PDF pages, QR codes, shapes, arrows and groups.
package mobject

import (
	"image/draw"

	"github.com/google/uuid"
)

// Mobject is any renderable element tracked by a surface.
type Mobject interface {
	ID() string
	Kind() string
	Bounds() Rect
	// Shift moves the object by dx, dy frame units.
	Shift(dx, dy float64)
	// Scale resizes the object by f around the top-left corner of its bounds.
	Scale(f float64)
	// Draw paints the object onto dst, a canvas scale times the logical frame.
	Draw(dst draw.Image, scale float64) error
	// Clone returns an independent copy with the same ID. Moving or scaling
	// the copy does not touch the original.
	Clone() Mobject
}

type base struct {
	id   string
	kind string
	rect Rect
}

func newBase(kind string, r Rect) base {
	return base{id: uuid.NewString(), kind: kind, rect: r}
}

func (b *base) ID() string   { return b.id }
func (b *base) Kind() string { return b.kind }
func (b *base) Bounds() Rect { return b.rect }

func (b *base) Shift(dx, dy float64) {
	b.rect.X += dx
	b.rect.Y += dy
}

func (b *base) Scale(f float64) {
	b.rect.W *= f
	b.rect.H *= f
}
