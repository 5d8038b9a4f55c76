package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ivlev/deck2video/internal/config"
	"github.com/ivlev/deck2video/internal/effects"
	"github.com/ivlev/deck2video/internal/engine"
	"github.com/ivlev/deck2video/internal/system"
	"github.com/ivlev/deck2video/internal/timeline"
	"github.com/ivlev/deck2video/internal/video"
)

func newProject(cfg *config.Config) (*engine.Project, error) {
	reg, err := newRegistry(cfg.Assets)
	if err != nil {
		return nil, err
	}
	return engine.NewProject(cfg, reg, &video.FFmpegEncoder{}, &effects.DefaultEffect{}), nil
}

func newRenderCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose the deck, export its timeline and encode the video",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			system.InitResourceLimits()
			discoverAudio(cfg)

			project, err := newProject(cfg)
			if err != nil {
				return err
			}
			res, err := project.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("[+++] Успех! Результат: %s\n", res.VideoPath)
			return nil
		},
	}
	addRenderFlags(cmd, opts)
	return cmd
}

func newExportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Compose the deck and write its slide timeline, without ffmpeg",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			project, err := newProject(cfg)
			if err != nil {
				return err
			}
			res, err := project.Export()
			if err != nil {
				return err
			}
			fmt.Println(engine.SceneTable(res.Stats))
			fmt.Printf("[+++] Успех! Таймлайн сохранен: %s\n", res.TimelinePath)
			return nil
		},
	}
}

func newScenesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List registered scenes and the default order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			reg, err := newRegistry(cfg.Assets)
			if err != nil {
				return err
			}

			position := make(map[string]int)
			for i, name := range reg.Default() {
				position[name] = i + 1
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Scene", "Default #", "Description"})
			for _, e := range reg.Entries() {
				pos := "-"
				if n, ok := position[e.Name]; ok {
					pos = fmt.Sprint(n)
				}
				tw.AppendRow(table.Row{e.Name, pos, e.Description})
			}
			fmt.Println(tw.Render())
			return nil
		},
	}
}

func newInspectCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [timeline.yaml]",
		Short: "Show the slides of a timeline (the latest one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.timeline
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				latest, err := timeline.FindLatestTimeline(engine.TimelineDir)
				if err != nil {
					return err
				}
				path = latest
			}

			tl, err := timeline.ReadTimeline(path)
			if err != nil {
				return fmt.Errorf("ошибка чтения таймлайна %s: %w", path, err)
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.SetTitle(fmt.Sprintf("%s (%s)", tl.Title, path))
			tw.AppendHeader(table.Row{"#", "Scene", "Start", "Duration", "Objects"})
			for _, s := range tl.Slides {
				scene := s.Scene
				if s.Implicit {
					scene += " *"
				}
				kinds := make([]string, len(s.Objects))
				for i, o := range s.Objects {
					kinds[i] = o.Kind
				}
				tw.AppendRow(table.Row{
					s.ID, scene,
					fmt.Sprintf("%.1fs", s.Start), fmt.Sprintf("%.1fs", s.Duration),
					strings.Join(kinds, ","),
				})
			}
			tw.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%.1fs", tl.TotalDuration()), ""})
			fmt.Println(tw.Render())
			return nil
		},
	}
}
