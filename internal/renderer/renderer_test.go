package renderer

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/system"
)

var black = color.RGBA{A: 0xff}

func TestLayout(t *testing.T) {
	tests := []struct {
		name   string
		frame  Frame
		scale  float64
		offset image.Point
	}{
		{"native", Frame{Width: 1280, Height: 720}, 1, image.Point{}},
		{"1080p", Frame{Width: 1920, Height: 1080}, 1.5, image.Point{}},
		{"vertical", Frame{Width: 720, Height: 1280}, 0.5625, image.Pt(0, 437)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, offset := tt.frame.Layout()
			assert.InDelta(t, tt.scale, scale, 1e-9)
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestRenderDrawsInOrder(t *testing.T) {
	under := mobject.NewBox(200, 200, mobject.Red)
	under.Fill = mobject.Red
	over := mobject.NewBox(100, 100, mobject.Blue)
	over.Fill = mobject.Blue

	img, err := Render([]mobject.Mobject{under, over}, Frame{Width: 640, Height: 360, Background: black})
	require.NoError(t, err)
	defer system.PutImage(img)

	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(5, 5), "background")
	assert.Equal(t, mobject.Blue, img.RGBAAt(320, 180), "top object wins")
	assert.Equal(t, mobject.Red, img.RGBAAt(320-40, 180-40), "lower object visible around it")
}

func TestRenderLetterbox(t *testing.T) {
	full := mobject.NewBox(mobject.FrameWidth, mobject.FrameHeight, mobject.White)
	full.Fill = mobject.White

	img, err := Render([]mobject.Mobject{full}, Frame{Width: 360, Height: 640, Background: black})
	require.NoError(t, err)
	defer system.PutImage(img)

	assert.Equal(t, black, img.RGBAAt(180, 10), "bar above the frame")
	assert.Equal(t, mobject.White, img.RGBAAt(180, 320), "frame center")
}

func TestRenderMissingImage(t *testing.T) {
	img := mobject.NewImage(filepath.Join(t.TempDir(), "nope.png"), 100, 100)
	_, err := Render([]mobject.Mobject{img}, Frame{Width: 640, Height: 360, Background: black})
	require.Error(t, err)
	assert.Contains(t, err.Error(), img.ID())
}
