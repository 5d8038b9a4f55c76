package effects

import (
	"strings"
	"testing"

	"github.com/ivlev/deck2video/internal/config"
)

func params(mode string, index int) config.SegmentParams {
	return config.SegmentParams{
		Width: 1280, Height: 720, FPS: 30,
		Duration: 4, FadeDuration: 0.5,
		ZoomMode: mode, ZoomSpeed: 0.002,
		SlideIndex: index,
	}
}

func TestStillSlide(t *testing.T) {
	e := &DefaultEffect{}
	f := e.GenerateFilter(params("none", 0))
	if strings.Contains(f, "zoompan") {
		t.Errorf("still slide must not zoom: %s", f)
	}
	if !strings.Contains(f, "stop_duration=4.000000") {
		t.Errorf("expected slide to be held for its duration: %s", f)
	}
}

func TestZoomFrames(t *testing.T) {
	e := &DefaultEffect{}
	f := e.GenerateFilter(params("top-left", 0))
	if !strings.Contains(f, "d=120:s=1280x720") {
		t.Errorf("expected 120 frames at 1280x720: %s", f)
	}
	if !strings.Contains(f, "x='0':y='0'") {
		t.Errorf("expected top-left origin: %s", f)
	}
	if !strings.Contains(f, "1.210000") {
		t.Errorf("expected peak 1+0.002*105: %s", f)
	}
}

func TestZoomCappedAtMax(t *testing.T) {
	e := &DefaultEffect{}
	p := params("center", 0)
	p.ZoomSpeed = 0.1
	if f := e.GenerateFilter(p); !strings.Contains(f, "1.300000") {
		t.Errorf("expected zoom capped at %.1f: %s", maxZoom, f)
	}
}

func TestRandomIsStablePerSlide(t *testing.T) {
	e := &DefaultEffect{}
	for i := 0; i < 5; i++ {
		a := e.GenerateFilter(params("random", i))
		b := e.GenerateFilter(params("random", i))
		if a != b {
			t.Errorf("slide %d: random zoom changed between runs", i)
		}
	}
}
