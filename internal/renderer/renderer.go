// Package renderer rasterizes the end state of a slide into a video frame.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/system"
)

// Frame describes the output canvas.
type Frame struct {
	Width, Height int
	Background    color.Color
}

// Layout returns the scale from logical units to pixels and the offset
// that centers the logical frame on the canvas. Aspect ratios that differ
// from 16:9 get bars.
func (f Frame) Layout() (scale float64, offset image.Point) {
	scale = math.Min(float64(f.Width)/mobject.FrameWidth, float64(f.Height)/mobject.FrameHeight)
	w := int(math.Round(mobject.FrameWidth * scale))
	h := int(math.Round(mobject.FrameHeight * scale))
	return scale, image.Pt((f.Width-w)/2, (f.Height-h)/2)
}

// Render draws objs in order on a canvas taken from the image pool.
// The caller returns the canvas with system.PutImage when done.
func Render(objs []mobject.Mobject, f Frame) (*image.RGBA, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("размер кадра %dx%d", f.Width, f.Height)
	}
	bg := image.NewUniform(f.Background)
	canvas := system.GetImage(f.Width, f.Height)
	draw.Draw(canvas, canvas.Rect, bg, image.Point{}, draw.Src)

	scale, offset := f.Layout()
	target := canvas
	if offset != (image.Point{}) {
		// Объекты рисуются от (0,0), поэтому при полосах нужен отдельный холст.
		w, h := f.Width-2*offset.X, f.Height-2*offset.Y
		target = system.GetImage(w, h)
		defer system.PutImage(target)
		draw.Draw(target, target.Rect, bg, image.Point{}, draw.Src)
	}

	for _, m := range objs {
		if err := m.Draw(target, scale); err != nil {
			system.PutImage(canvas)
			return nil, fmt.Errorf("%s %s: %w", m.Kind(), m.ID(), err)
		}
	}

	if target != canvas {
		draw.Draw(canvas, target.Rect.Add(offset), target, image.Point{}, draw.Src)
	}
	return canvas, nil
}
