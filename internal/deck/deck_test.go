package deck

import (
	"errors"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/scene"
	"github.com/ivlev/deck2video/internal/surface"
)

var quiet = WithLogger(log.New(io.Discard, "", 0))

// fakeScene adds n objects and records every hook call into calls.
type fakeScene struct {
	name   string
	n      int
	calls  *[]string
	seen   *[]int // registry size observed when Construct starts
	failOn string
	err    error
}

func (p *fakeScene) Name() string { return p.name }

func (p *fakeScene) Setup(s *surface.Surface) error {
	*p.calls = append(*p.calls, "setup:"+p.name)
	if p.failOn == "setup" {
		return p.err
	}
	return nil
}

func (p *fakeScene) Construct(s *surface.Surface) error {
	*p.calls = append(*p.calls, "construct:"+p.name)
	if p.seen != nil {
		*p.seen = append(*p.seen, s.Len())
	}
	for i := 0; i < p.n; i++ {
		s.Add(mobject.NewText(fmt.Sprintf("%s-%d", p.name, i)))
	}
	if p.failOn == "construct" {
		return p.err
	}
	return nil
}

type counter struct {
	added  int
	clears []int
}

func (c *counter) SceneEntered(string) {}
func (c *counter) Added(objs []mobject.Mobject) { c.added += len(objs) }
func (c *counter) Removed([]mobject.Mobject) {}
func (c *counter) Changed([]mobject.Mobject) {}
func (c *counter) Cleared(n int) { c.clears = append(c.clears, n) }
func (c *counter) Played([]surface.Animation, time.Duration) {}
func (c *counter) Waited(time.Duration) {}
func (c *counter) SlideEnded([]mobject.Mobject) {}

func fakeScenes(calls *[]string, seen *[]int, sizes ...int) []scene.Scene {
	out := make([]scene.Scene, len(sizes))
	for i, n := range sizes {
		out[i] = &fakeScene{name: string(rune('A' + i)), n: n, calls: calls, seen: seen}
	}
	return out
}

func TestRunSetupsBeforeConstructsInOrder(t *testing.T) {
	var calls []string
	d, err := New(fakeScenes(&calls, nil, 1, 1, 1), quiet)
	require.NoError(t, err)

	require.NoError(t, d.Run(surface.New(nil)))

	assert.Equal(t, []string{
		"setup:A", "setup:B", "setup:C",
		"construct:A", "construct:B", "construct:C",
	}, calls)
}

func TestRunStartsEverySceneOnEmptySurface(t *testing.T) {
	var calls []string
	var seen []int
	surf := surface.New(nil)
	d, err := New(fakeScenes(&calls, &seen, 4, 2, 7), quiet)
	require.NoError(t, err)

	require.NoError(t, d.Run(surf))

	assert.Equal(t, []int{0, 0, 0}, seen)
	assert.Zero(t, surf.Len(), "last scene is cleared too")
}

func TestRunEndToEndCounts(t *testing.T) {
	var calls []string
	c := &counter{}
	surf := surface.New(c)
	d, err := New(fakeScenes(&calls, nil, 2, 3, 0), quiet)
	require.NoError(t, err)

	require.NoError(t, d.Run(surf))

	assert.Equal(t, 5, c.added)
	assert.Equal(t, []int{2, 3, 0}, c.clears)
	assert.Zero(t, surf.Len())
}

func TestRunStopsAtFailingConstruct(t *testing.T) {
	boom := errors.New("boom")
	var calls []string
	scenes := fakeScenes(&calls, nil, 1, 1, 1, 1)
	scenes[1].(*fakeScene).failOn = "construct"
	scenes[1].(*fakeScene).err = boom

	d, err := New(scenes, quiet)
	require.NoError(t, err)

	err = d.Run(surface.New(nil))
	assert.Same(t, boom, err, "error is surfaced unmodified")
	assert.Equal(t, []string{
		"setup:A", "setup:B", "setup:C", "setup:D",
		"construct:A", "construct:B",
	}, calls)
}

func TestRunStopsAtFailingSetup(t *testing.T) {
	boom := errors.New("no camera")
	var calls []string
	scenes := fakeScenes(&calls, nil, 1, 1, 1)
	scenes[1].(*fakeScene).failOn = "setup"
	scenes[1].(*fakeScene).err = boom

	d, err := New(scenes, quiet)
	require.NoError(t, err)

	assert.Same(t, boom, d.Run(surface.New(nil)))
	assert.Equal(t, []string{"setup:A", "setup:B"}, calls)
}

func TestRunSurfacesInvalidStep(t *testing.T) {
	var calls []string
	scenes := []scene.Scene{
		&scene.Func{SceneName: "Bad", ConstructFn: func(s *surface.Surface) error {
			s.Play(surface.FadeIn())
			return nil
		}},
		fakeScenes(&calls, nil, 1)[0],
	}
	d, err := New(scenes, quiet)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Run(surface.New(nil)), surface.ErrNoTargets)
	assert.Equal(t, []string{"setup:A"}, calls)
}

func TestRunBlamesInvalidStepInSetup(t *testing.T) {
	var calls []string
	scenes := []scene.Scene{
		fakeScenes(&calls, nil, 1)[0],
		&scene.Func{
			SceneName: "Eager",
			SetupFn: func(s *surface.Surface) error {
				s.Play(surface.FadeIn())
				return nil
			},
			ConstructFn: func(*surface.Surface) error { return nil },
		},
	}
	d, err := New(scenes, quiet)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Run(surface.New(nil)), surface.ErrNoTargets)
	assert.Equal(t, []string{"setup:A"}, calls, "no construct runs")
}

func TestSceneClearingItselfIsNoop(t *testing.T) {
	c := &counter{}
	self := &scene.Func{SceneName: "Self", ConstructFn: func(s *surface.Surface) error {
		s.Add(mobject.NewText("x"))
		s.Clear()
		return nil
	}}
	d, err := New([]scene.Scene{self}, quiet)
	require.NoError(t, err)

	require.NoError(t, d.Run(surface.New(c)))
	assert.Equal(t, []int{1, 0}, c.clears)
}

func TestNewRejectsInvalidDecks(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyDeck)
	var ae *AuthoringError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, -1, ae.Index)
	assert.Equal(t, "deck has no scenes", err.Error())

	var calls []string
	_, err = New([]scene.Scene{fakeScenes(&calls, nil, 1)[0], nil})
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 1, ae.Index)

	_, err = New([]scene.Scene{&scene.Func{SceneName: "Hollow"}})
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Hollow", ae.Name)
	assert.ErrorIs(t, err, scene.ErrNoConstruct)
	assert.Empty(t, calls, "nothing runs before the deck is valid")
}
