// Package effects builds the ffmpeg filter that turns one rendered slide
// into a video segment.
package effects

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ivlev/deck2video/internal/config"
)

type Effect interface {
	GenerateFilter(params config.SegmentParams) string
}

// maxZoom caps the Ken Burns zoom so text stays readable.
const maxZoom = 1.3

var corners = []string{"center", "top-left", "top-right", "bottom-left", "bottom-right"}

// DefaultEffect holds the slide still, or slowly zooms into it when a zoom
// mode is set.
type DefaultEffect struct{}

func (e *DefaultEffect) GenerateFilter(p config.SegmentParams) string {
	mode := strings.ToLower(p.ZoomMode)
	if mode == "" || mode == "none" {
		return fmt.Sprintf("scale=%d:%d,setsar=1,tpad=stop_mode=clone:stop_duration=%f",
			p.Width, p.Height, p.Duration)
	}
	if mode == "random" {
		// Один и тот же слайд всегда получает один и тот же угол.
		r := rand.New(rand.NewSource(int64(p.SlideIndex)*99 + 1))
		mode = corners[r.Intn(len(corners))]
	}

	zoomX, zoomY := zoomOrigin(mode)

	fFPS := float64(p.FPS)
	fTotal := p.Duration * fFPS
	fActive := fTotal - p.FadeDuration*fFPS
	if fActive <= 0 {
		fActive = fTotal
	}

	zSpeed := p.ZoomSpeed
	if zSpeed <= 0 {
		zSpeed = 0.001
	}
	peak := 1.0 + zSpeed*fActive
	if peak > maxZoom {
		peak = maxZoom
	}

	// Зум растет до пика за активную часть и держится во время перехода.
	zFormula := fmt.Sprintf("min(1.0+%f*on,%f)", zSpeed, peak)

	upscale := fmt.Sprintf("scale=%d:%d,setsar=1", p.Width*2, p.Height*2)
	zoomFilter := fmt.Sprintf("zoompan=z='%s':d=%d:s=%dx%d:x='%s':y='%s':fps=%d",
		zFormula, int(fTotal+0.5), p.Width, p.Height, zoomX, zoomY, p.FPS)

	return fmt.Sprintf("%s,%s", upscale, zoomFilter)
}

func zoomOrigin(mode string) (x, y string) {
	switch mode {
	case "top-left":
		return "0", "0"
	case "top-right":
		return "iw-(iw/zoom)", "0"
	case "bottom-left":
		return "0", "ih-(ih/zoom)"
	case "bottom-right":
		return "iw-(iw/zoom)", "ih-(ih/zoom)"
	default:
		return "iw/2-(iw/zoom/2)", "ih/2-(ih/zoom/2)"
	}
}
