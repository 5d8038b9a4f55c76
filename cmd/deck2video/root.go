package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/deck2video/internal/config"
	"github.com/ivlev/deck2video/internal/scene"
	"github.com/ivlev/deck2video/internal/slides"
	"github.com/ivlev/deck2video/internal/system"
)

const audioDir = "input/audio"

// options are the flags shared by every command. A flag that was set on
// the command line wins over the deck file.
type options struct {
	configPath string

	title      string
	assets     string
	scenes     []string
	output     string
	timeline   string
	audio      string
	preset     string
	transition string
	zoomMode   string
	background string

	width   int
	height  int
	fps     int
	workers int
	quality int
	fade    float64

	noAudioSync bool
	stats       bool
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "deck2video",
		Short:         "Compose a deck of scenes into a slide timeline and an MP4",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML-файл колоды")
	flags.StringVar(&opts.title, "title", "", "Название колоды")
	flags.StringVar(&opts.assets, "assets", "", "Папка с изображениями и paper.pdf")
	flags.StringSliceVar(&opts.scenes, "scenes", nil, "Сцены по порядку (по умолчанию: порядок доклада)")
	flags.StringVar(&opts.timeline, "timeline", "", "Путь к YAML таймлайну (по умолчанию: output/timelines/)")

	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newExportCommand(opts))
	rootCmd.AddCommand(newScenesCommand(opts))
	rootCmd.AddCommand(newInspectCommand(opts))
	return rootCmd
}

func addRenderFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	flags.StringVar(&opts.audio, "audio", "", "Путь к аудио (по умолчанию: самый свежий файл в input/audio/)")
	flags.BoolVar(&opts.noAudioSync, "no-audio-sync", false, "Не подгонять длительность видео под аудио")
	flags.StringVar(&opts.preset, "preset", "", "Пресет формата: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	flags.IntVar(&opts.width, "width", 0, "Ширина")
	flags.IntVar(&opts.height, "height", 0, "Высота")
	flags.IntVar(&opts.fps, "fps", 0, "FPS")
	flags.IntVar(&opts.workers, "workers", 0, "Потоки (0 - по числу ядер и свободной памяти)")
	flags.IntVar(&opts.quality, "quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	flags.Float64Var(&opts.fade, "fade", 0, "Длительность перехода (сек)")
	flags.StringVar(&opts.transition, "transition", "", "Тип перехода xfade: fade, wipeleft, slideup, pixelize, circlecrop, dissolve, none")
	flags.StringVar(&opts.zoomMode, "zoom-mode", "", "Зум: none, center, top-left, top-right, bottom-left, bottom-right, random")
	flags.StringVar(&opts.background, "background", "", "Цвет фона #rrggbb")
	flags.BoolVar(&opts.stats, "stats", false, "Показать отчет о производительности")
}

// loadConfig reads the deck file, applies flags that were set and validates
// the result.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	setString := func(name string, dst *string, v string) {
		if changed(name) {
			*dst = v
		}
	}
	setInt := func(name string, dst *int, v int) {
		if changed(name) {
			*dst = v
		}
	}

	setString("title", &cfg.Title, opts.title)
	setString("assets", &cfg.Assets, opts.assets)
	setString("timeline", &cfg.TimelinePath, opts.timeline)
	setString("output", &cfg.OutputVideo, opts.output)
	setString("audio", &cfg.AudioPath, opts.audio)
	setString("preset", &cfg.Preset, opts.preset)
	setString("transition", &cfg.TransitionType, opts.transition)
	setString("zoom-mode", &cfg.ZoomMode, opts.zoomMode)
	setString("background", &cfg.Background, opts.background)
	setInt("width", &cfg.Width, opts.width)
	setInt("height", &cfg.Height, opts.height)
	setInt("fps", &cfg.FPS, opts.fps)
	setInt("workers", &cfg.Workers, opts.workers)
	setInt("quality", &cfg.Quality, opts.quality)
	if changed("scenes") {
		cfg.Scenes = opts.scenes
	}
	if changed("fade") {
		cfg.FadeDuration = opts.fade
	}
	if changed("no-audio-sync") {
		cfg.AudioSync = !opts.noAudioSync
	}
	if changed("stats") {
		cfg.ShowStats = opts.stats
	}
	cfg.BuildVersion = version

	if err := cfg.ApplyPreset(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация:\n%w", err)
	}
	return cfg, nil
}

// discoverAudio picks the newest file in input/audio when none is set.
func discoverAudio(cfg *config.Config) {
	if cfg.AudioPath != "" {
		return
	}
	latest, err := system.FindLatestAudio(audioDir)
	if err != nil {
		return
	}
	cfg.AudioPath = latest
	fmt.Printf("[*] Выбрано аудио: %s\n", latest)
}

func newRegistry(assets string) (*scene.Registry, error) {
	reg := scene.NewRegistry()
	if err := slides.Register(reg, assets); err != nil {
		return nil, err
	}
	return reg, nil
}
