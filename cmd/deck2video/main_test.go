package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/deck2video/internal/timeline"
)

func TestFlagsOverrideDeckFile(t *testing.T) {
	deckFile := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(deckFile, []byte("fps: 25\ntitle: From file\nscenes: [Intro]\n"), 0644))

	opts := &options{}
	root := newRootCommand(opts)
	render, _, err := root.Find([]string{"render"})
	require.NoError(t, err)
	require.NoError(t, render.ParseFlags([]string{
		"--config", deckFile,
		"--fps", "60",
		"--preset", "9:16",
		"--no-audio-sync",
	}))

	cfg, err := loadConfig(render, opts)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS, "flag wins over file")
	assert.Equal(t, "From file", cfg.Title, "file wins over default")
	assert.Equal(t, []string{"Intro"}, cfg.Scenes)
	assert.Equal(t, 720, cfg.Width)
	assert.Equal(t, 1280, cfg.Height)
	assert.False(t, cfg.AudioSync)
	assert.Equal(t, version, cfg.BuildVersion)
}

func TestUnknownSceneFails(t *testing.T) {
	root := newRootCommand(&options{})
	root.SetArgs([]string{"export", "--assets", t.TempDir(), "--scenes", "Intro,Nope", "--timeline", filepath.Join(t.TempDir(), "t.yaml")})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope")
}

func TestExportWritesTimeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.yaml")
	root := newRootCommand(&options{})
	root.SetArgs([]string{"export", "--assets", t.TempDir(), "--scenes", "Intro,Outro", "--timeline", path, "--title", "talk"})
	require.NoError(t, root.Execute())

	tl, err := timeline.ReadTimeline(path)
	require.NoError(t, err)
	assert.Equal(t, "talk", tl.Title)
	require.Len(t, tl.Slides, 3)
	assert.Equal(t, "Intro", tl.Slides[0].Scene)
	assert.Equal(t, "Outro", tl.Slides[2].Scene)
}
