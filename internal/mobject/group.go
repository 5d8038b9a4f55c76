package mobject

import (
	"image/draw"

	"github.com/google/uuid"
)

// Group moves, scales and draws its children as one object.
type Group struct {
	id       string
	children []Mobject
}

func NewGroup(children ...Mobject) *Group {
	return &Group{id: uuid.NewString(), children: children}
}

func (g *Group) ID() string   { return g.id }
func (g *Group) Kind() string { return "group" }

// Add appends children to the group.
func (g *Group) Add(children ...Mobject) {
	g.children = append(g.children, children...)
}

// Children returns the group members in draw order.
func (g *Group) Children() []Mobject {
	out := make([]Mobject, len(g.children))
	copy(out, g.children)
	return out
}

func (g *Group) Bounds() Rect {
	var r Rect
	for _, c := range g.children {
		r = r.Union(c.Bounds())
	}
	return r
}

func (g *Group) Shift(dx, dy float64) {
	for _, c := range g.children {
		c.Shift(dx, dy)
	}
}

// Scale keeps the children's relative layout: positions are scaled around
// the group's top-left corner, then every child is scaled in place.
func (g *Group) Scale(f float64) {
	origin := g.Bounds().Min()
	for _, c := range g.children {
		before := c.Bounds().Min()
		c.Scale(f)
		after := scalePoint(before, origin, f)
		c.Shift(after.X-before.X, after.Y-before.Y)
	}
}

func (g *Group) Clone() Mobject {
	c := &Group{id: g.id, children: make([]Mobject, len(g.children))}
	for i, ch := range g.children {
		c.children[i] = ch.Clone()
	}
	return c
}

func (g *Group) Draw(dst draw.Image, scale float64) error {
	for _, c := range g.children {
		if err := c.Draw(dst, scale); err != nil {
			return err
		}
	}
	return nil
}
