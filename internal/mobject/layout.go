package mobject

// Layout helpers return their first argument so calls can be chained
// while building a slide.

// MoveTo centers m at p.
func MoveTo[M Mobject](m M, p Point) M {
	c := m.Bounds().Center()
	m.Shift(p.X-c.X, p.Y-c.Y)
	return m
}

// ShiftBy moves m by d scaled to frame units.
func ShiftBy[M Mobject](m M, d Direction, units float64) M {
	m.Shift(d.X*units, d.Y*units)
	return m
}

// NextTo places m beside ref in direction d, buff units apart,
// centered on the other axis.
func NextTo[M Mobject](m M, ref Mobject, d Direction, buff float64) M {
	return nextTo(m, ref.Bounds(), d, buff)
}

// NextToPoint is NextTo with a bare point as the reference.
func NextToPoint[M Mobject](m M, p Point, d Direction, buff float64) M {
	return nextTo(m, Rect{X: p.X, Y: p.Y}, d, buff)
}

func nextTo[M Mobject](m M, ref Rect, d Direction, buff float64) M {
	b := m.Bounds()
	target := ref.Center()
	if d.X != 0 {
		target.X = ref.Corner(Direction{X: d.X}).X + sign(d.X)*(buff+b.W/2)
	}
	if d.Y != 0 {
		target.Y = ref.Corner(Direction{Y: d.Y}).Y + sign(d.Y)*(buff+b.H/2)
	}
	return MoveTo(m, target)
}

// AlignOnBorder pushes m against the frame edge(s) named by d, buff units in.
func AlignOnBorder[M Mobject](m M, d Direction, buff float64) M {
	b := m.Bounds()
	dx, dy := 0.0, 0.0
	switch {
	case d.X < 0:
		dx = buff - b.X
	case d.X > 0:
		dx = FrameWidth - buff - (b.X + b.W)
	}
	switch {
	case d.Y < 0:
		dy = buff - b.Y
	case d.Y > 0:
		dy = FrameHeight - buff - (b.Y + b.H)
	}
	m.Shift(dx, dy)
	return m
}

// ToCorner is AlignOnBorder with the default margin.
func ToCorner[M Mobject](m M, d Direction) M {
	return AlignOnBorder(m, d, 2*DefaultBuff)
}

// AlignTo lines up the edge of m named by d with the same edge of ref.
func AlignTo[M Mobject](m M, ref Mobject, d Direction) M {
	b, r := m.Bounds(), ref.Bounds()
	dx, dy := 0.0, 0.0
	if d.X != 0 {
		dx = r.Corner(Direction{X: d.X}).X - b.Corner(Direction{X: d.X}).X
	}
	if d.Y != 0 {
		dy = r.Corner(Direction{Y: d.Y}).Y - b.Corner(Direction{Y: d.Y}).Y
	}
	m.Shift(dx, dy)
	return m
}

// SetX moves m horizontally so its center is at x.
func SetX[M Mobject](m M, x float64) M {
	m.Shift(x-m.Bounds().Center().X, 0)
	return m
}

// SetY moves m vertically so its center is at y.
func SetY[M Mobject](m M, y float64) M {
	m.Shift(0, y-m.Bounds().Center().Y)
	return m
}

// ScaleToFitWidth scales m uniformly to the given width.
func ScaleToFitWidth[M Mobject](m M, w float64) M {
	if cur := m.Bounds().W; cur > 0 {
		m.Scale(w / cur)
	}
	return m
}

// Arrange stacks ms one after another in direction d and centers the
// result in the frame.
func Arrange(d Direction, buff float64, ms ...Mobject) *Group {
	for i := 1; i < len(ms); i++ {
		nextTo(ms[i], ms[i-1].Bounds(), d, buff)
	}
	g := NewGroup(ms...)
	MoveTo(g, Point{FrameWidth / 2, FrameHeight / 2})
	return g
}
