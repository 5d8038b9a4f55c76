// Package engine runs a deck2video project: compose the deck, export its
// timeline and, in render mode, turn every slide into a video segment.
package engine

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/deck2video/internal/config"
	"github.com/ivlev/deck2video/internal/deck"
	"github.com/ivlev/deck2video/internal/effects"
	"github.com/ivlev/deck2video/internal/renderer"
	"github.com/ivlev/deck2video/internal/scene"
	"github.com/ivlev/deck2video/internal/surface"
	"github.com/ivlev/deck2video/internal/system"
	"github.com/ivlev/deck2video/internal/timeline"
	"github.com/ivlev/deck2video/internal/video"
)

// TimelineDir is where timelines are written when no path is configured.
const TimelineDir = "output/timelines"

type Project struct {
	Config   *config.Config
	Registry *scene.Registry
	Encoder  video.VideoEncoder
	Effect   effects.Effect
	Logger   *log.Logger
	Out      io.Writer // отчет и прогресс

	tempDir string
}

// Result is what a run produced.
type Result struct {
	Timeline     *timeline.Timeline
	Stats        []timeline.SceneStats
	TimelinePath string
	VideoPath    string
	Timings      Timings
}

// Timings are wall-clock durations of the pipeline stages.
type Timings struct {
	Compose time.Duration
	Render  time.Duration
	Concat  time.Duration
	Total   time.Duration
}

func NewProject(cfg *config.Config, reg *scene.Registry, ve video.VideoEncoder, eff effects.Effect) *Project {
	return &Project{
		Config:   cfg,
		Registry: reg,
		Encoder:  ve,
		Effect:   eff,
		Logger:   log.Default(),
		Out:      os.Stdout,
	}
}

// Scenes resolves the configured scene names. An unknown name is an
// authoring error of the deck, reported before any scene runs.
func (p *Project) Scenes() ([]scene.Scene, error) {
	names := p.Config.Scenes
	if len(names) == 0 {
		names = p.Registry.Default()
	}
	scenes := make([]scene.Scene, 0, len(names))
	for i, name := range names {
		built, err := p.Registry.Build([]string{name})
		if err != nil {
			return nil, &deck.AuthoringError{Index: i, Name: name, Reason: err}
		}
		scenes = append(scenes, built...)
	}
	return scenes, nil
}

// Compose runs the deck on a fresh surface and records its timeline.
func (p *Project) Compose() (*timeline.Recorder, error) {
	scenes, err := p.Scenes()
	if err != nil {
		return nil, err
	}
	d, err := deck.New(scenes, deck.WithLogger(p.Logger))
	if err != nil {
		return nil, err
	}

	rec := timeline.NewRecorder(p.Config.Title)
	surf := surface.New(surface.Tee(rec, &progress{out: p.Out}))
	if err := d.Run(surf); err != nil {
		return nil, err
	}
	return rec, nil
}

// Export composes the deck and writes its timeline as YAML.
func (p *Project) Export() (*Result, error) {
	start := time.Now()
	rec, err := p.Compose()
	if err != nil {
		return nil, err
	}
	tl := rec.Timeline()
	if len(tl.Slides) == 0 {
		return nil, fmt.Errorf("колода не показала ни одного слайда")
	}

	path := p.Config.TimelinePath
	if path == "" {
		path = timeline.GenerateTimelinePath(TimelineDir)
	}
	if err := timeline.WriteTimeline(tl, path); err != nil {
		return nil, fmt.Errorf("ошибка записи таймлайна: %w", err)
	}
	fmt.Fprintf(p.Out, "[*] Таймлайн: %s (слайдов: %d, %.1fs)\n", path, len(tl.Slides), tl.TotalDuration())

	return &Result{
		Timeline:     tl,
		Stats:        rec.Stats(),
		TimelinePath: path,
		Timings:      Timings{Compose: time.Since(start)},
	}, nil
}

// Run exports the timeline and renders it into the output video.
func (p *Project) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	res, err := p.Export()
	if err != nil {
		return nil, err
	}
	slides := res.Timeline.Slides

	target := 0.0
	if p.Config.AudioPath != "" && p.Config.AudioSync {
		audioDur, err := system.GetAudioDuration(ctx, p.Config.AudioPath)
		if err != nil {
			p.Logger.Printf("[!] Не удалось получить длительность аудио: %v", err)
		} else {
			target = audioDur
			fmt.Fprintf(p.Out, "[*] Длительность видео установлена по аудио: %.2fs\n", target)
		}
	}
	p.fitDurations(res.Timeline.Durations(), target)

	if p.Config.VideoEncoder == "" {
		p.Config.VideoEncoder = system.GetBestH264Encoder(ctx)
		if p.Config.VideoEncoder != "libx264" {
			fmt.Fprintf(p.Out, "[*] Обнаружено аппаратное ускорение: %s\n", p.Config.VideoEncoder)
		}
	}
	if p.Config.Quality == 0 {
		p.Config.Quality = system.DefaultQuality(p.Config.VideoEncoder)
	}
	bg, err := p.Config.BackgroundColor()
	if err != nil {
		return nil, err
	}

	p.tempDir, err = os.MkdirTemp("", "deck2video_")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(p.tempDir)

	workers := p.Config.Workers
	if workers <= 0 {
		workers = system.Workers()
	}

	fmt.Fprintln(p.Out, "--- [DECK2VIDEO] ---")
	fmt.Fprintf(p.Out, "[*] Колода: %s | Слайдов: %d | Потоков: %d\n", p.Config.Title, len(slides), workers)
	fmt.Fprintf(p.Out, "[*] Разрешение: %dx%d @ %d FPS | Энкодер: %s\n", p.Config.Width, p.Config.Height, p.Config.FPS, p.Config.VideoEncoder)
	fmt.Fprintln(p.Out, "--------------------")

	renderStart := time.Now()
	frame := renderer.Frame{Width: p.Config.Width, Height: p.Config.Height, Background: bg}
	segments := make([]string, len(slides))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, slide := range slides {
		g.Go(func() error {
			segPath, err := p.encodeSlide(gctx, i, slide, frame)
			if err != nil {
				return fmt.Errorf("слайд %d (%s): %w", slide.ID, slide.Scene, err)
			}
			segments[i] = segPath
			fmt.Fprintf(p.Out, "[>] Ready: %d/%d\n", i+1, len(slides))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Timings.Render = time.Since(renderStart)

	res.VideoPath = p.Config.OutputVideo
	if res.VideoPath == "" {
		res.VideoPath = outputPath(p.Config.Title, time.Now())
	}

	fmt.Fprintln(p.Out, "[*] Сборка финального видео (с эффектами переходов)...")
	concatStart := time.Now()
	if err := p.Encoder.Concatenate(ctx, segments, res.VideoPath, p.tempDir, p.Config); err != nil {
		return nil, fmt.Errorf("ошибка сборки финального видео: %w", err)
	}
	res.Timings.Concat = time.Since(concatStart)
	res.Timings.Total = time.Since(startTime)

	if p.Config.ShowStats {
		p.report(res)
	}
	return res, nil
}

func (p *Project) encodeSlide(ctx context.Context, i int, slide timeline.Slide, frame renderer.Frame) (string, error) {
	img, err := renderer.Render(slide.Visible(), frame)
	if err != nil {
		return "", err
	}
	defer system.PutImage(img)

	params := config.SegmentParams{
		Width:        p.Config.Width,
		Height:       p.Config.Height,
		FPS:          p.Config.FPS,
		Duration:     p.Config.SlideDurations[i],
		ZoomMode:     p.Config.ZoomMode,
		ZoomSpeed:    p.Config.ZoomSpeed,
		FadeDuration: p.Config.FadeDuration,
		SlideIndex:   i,
	}
	segPath := filepath.Join(p.tempDir, fmt.Sprintf("s%03d.mp4", i))
	filter := p.Effect.GenerateFilter(params)
	if err := p.Encoder.EncodeSegment(ctx, img, segPath, params, filter, p.Config); err != nil {
		return "", err
	}
	return segPath, nil
}

func outputPath(title string, now time.Time) string {
	name := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	if name == "" {
		name = "deck"
	}
	return filepath.Join("output", fmt.Sprintf("%s_%s.mp4", name, now.Format("2006-01-02_15-04-05")))
}
