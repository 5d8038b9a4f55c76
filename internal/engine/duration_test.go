package engine

import (
	"io"
	"log"
	"math"
	"testing"

	"github.com/ivlev/deck2video/internal/config"
)

func newTestProject(cfg *config.Config) *Project {
	return &Project{Config: cfg, Logger: log.New(io.Discard, "", 0), Out: io.Discard}
}

func TestFitDurationsWithTransitions(t *testing.T) {
	cfg := config.Default() // fade 0.5, 30 fps, min slide 1s
	project := newTestProject(cfg)

	project.fitDurations([]float64{2, 0.2, 3}, 0)

	want := []float64{2.5, 1.5, 3}
	for i, d := range cfg.SlideDurations {
		if math.Abs(d-want[i]) > 1e-9 {
			t.Errorf("slide %d: expected %.3f, got %.3f", i, want[i], d)
		}
	}
	if cfg.TotalDuration != 6 {
		t.Errorf("expected total 6s, got %.3f", cfg.TotalDuration)
	}

	// Длина видео после xfade: сумма сегментов минус перекрытия.
	sum := 0.0
	for _, d := range cfg.SlideDurations {
		sum += d
	}
	if got := sum - 2*cfg.FadeDuration; math.Abs(got-cfg.TotalDuration) > 1e-9 {
		t.Errorf("video length %.3f does not match total %.3f", got, cfg.TotalDuration)
	}
}

func TestFitDurationsScalesToAudio(t *testing.T) {
	cfg := config.Default()
	cfg.TransitionType = "none"
	project := newTestProject(cfg)

	project.fitDurations([]float64{1, 3}, 100)

	if cfg.TotalDuration != 100 {
		t.Errorf("expected total 100s, got %.3f", cfg.TotalDuration)
	}
	if cfg.SlideDurations[0] != 25 || cfg.SlideDurations[1] != 75 {
		t.Errorf("expected [25 75], got %v", cfg.SlideDurations)
	}
}

func TestFitDurationsClampsFade(t *testing.T) {
	cfg := config.Default()
	cfg.FadeDuration = 2
	cfg.FPS = 10
	project := newTestProject(cfg)

	project.fitDurations([]float64{1, 4}, 0)

	if cfg.FadeDuration != 0.5 {
		t.Errorf("expected fade clamped to 0.5, got %.3f", cfg.FadeDuration)
	}
	if cfg.SlideDurations[0] != 1.5 {
		t.Errorf("expected first segment 1.5s, got %.3f", cfg.SlideDurations[0])
	}
}

func TestFitDurationsAlignsToFrames(t *testing.T) {
	cfg := config.Default()
	cfg.TransitionType = "none"
	cfg.FPS = 24
	project := newTestProject(cfg)

	project.fitDurations([]float64{1.013, 2.0}, 0)

	for i, d := range cfg.SlideDurations {
		frames := d * 24
		if math.Abs(frames-math.Round(frames)) > 1e-9 {
			t.Errorf("slide %d: %.4fs is not a whole number of frames", i, d)
		}
	}
}
