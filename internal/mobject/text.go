package mobject

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultFontSize matches the height of a title line.
	DefaultFontSize = 48.0

	glyphW = 7
	glyphH = 13
)

// Text is a block of one or more lines drawn with a fixed-width face.
type Text struct {
	base
	Content string
	Size    float64
	Color   color.Color
}

// TextOption customizes a Text at construction.
type TextOption func(*Text)

func WithFontSize(size float64) TextOption {
	return func(t *Text) { t.Size = size }
}

func WithColor(c color.Color) TextOption {
	return func(t *Text) { t.Color = c }
}

// NewText creates a text block centered in the frame. Lines are split on '\n'.
func NewText(content string, opts ...TextOption) *Text {
	t := &Text{Content: content, Size: DefaultFontSize, Color: White}
	for _, opt := range opts {
		opt(t)
	}
	cols, rows := t.grid()
	k := t.Size / glyphH
	w, h := float64(cols*glyphW)*k, float64(rows*glyphH)*k
	t.base = newBase("text", Rect{(FrameWidth - w) / 2, (FrameHeight - h) / 2, w, h})
	return t
}

func (t *Text) grid() (cols, rows int) {
	lines := strings.Split(t.Content, "\n")
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		cols = 1
	}
	return cols, len(lines)
}

func (t *Text) Scale(f float64) {
	t.base.Scale(f)
	t.Size *= f
}

func (t *Text) Clone() Mobject {
	c := *t
	return &c
}

// Draw rasterizes the glyphs at their native size and scales the result
// into the object's bounds.
func (t *Text) Draw(dst draw.Image, scale float64) error {
	cols, rows := t.grid()
	glyphs := image.NewRGBA(image.Rect(0, 0, cols*glyphW, rows*glyphH))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(t.Color),
		Face: basicfont.Face7x13,
	}
	for i, line := range strings.Split(t.Content, "\n") {
		d.Dot = fixed.P(0, i*glyphH+basicfont.Face7x13.Ascent)
		d.DrawString(line)
	}
	xdraw.BiLinear.Scale(dst, t.rect.Pixels(scale), glyphs, glyphs.Bounds(), xdraw.Over, nil)
	return nil
}
