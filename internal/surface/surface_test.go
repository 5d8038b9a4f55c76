package surface

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/deck2video/internal/mobject"
)

type eventLog struct {
	added, removed int
	clears         []int
	played         []time.Duration
	waited         []time.Duration
	slides         [][]mobject.Mobject
	scenes         []string
	order          []mobject.Mobject
}

func (l *eventLog) SceneEntered(name string) { l.scenes = append(l.scenes, name) }
func (l *eventLog) Added(objs []mobject.Mobject) { l.added += len(objs) }
func (l *eventLog) Removed(objs []mobject.Mobject) { l.removed += len(objs) }
func (l *eventLog) Changed(v []mobject.Mobject) { l.order = v }
func (l *eventLog) Cleared(n int) { l.clears = append(l.clears, n) }
func (l *eventLog) Played(_ []Animation, d time.Duration) { l.played = append(l.played, d) }
func (l *eventLog) Waited(d time.Duration) { l.waited = append(l.waited, d) }
func (l *eventLog) SlideEnded(v []mobject.Mobject) { l.slides = append(l.slides, v) }

func TestAddKeepsSingleEntryPerObject(t *testing.T) {
	log := &eventLog{}
	s := New(log)
	a, b := mobject.NewText("a"), mobject.NewText("b")

	s.Add(a, b)
	s.Add(a)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []mobject.Mobject{b, a}, s.Mobjects(), "re-added object moves to the top")
	assert.Equal(t, 2, log.added)
}

func TestRemoveIgnoresUnknownObjects(t *testing.T) {
	log := &eventLog{}
	s := New(log)
	a, b := mobject.NewText("a"), mobject.NewText("b")
	s.Add(a)

	s.Remove(a, b)

	assert.Zero(t, s.Len())
	assert.Equal(t, 1, log.removed)
}

func TestClearIsIdempotent(t *testing.T) {
	log := &eventLog{}
	s := New(log)
	s.Add(mobject.NewText("a"), mobject.NewDot(mobject.Point{}, mobject.Red))

	assert.Equal(t, 2, s.Clear())
	assert.Equal(t, 0, s.Clear())
	assert.Zero(t, s.Len())
	assert.Equal(t, []int{2, 0}, log.clears)
}

func TestPlayAppliesEndState(t *testing.T) {
	s := New(nil)
	title := mobject.NewText("title")
	subtitle := mobject.NewText("subtitle")
	corner := mobject.NewText("title")

	s.Play(FadeIn(title), Create(subtitle).WithRunTime(3*time.Second))
	require.NoError(t, s.Err())
	assert.Equal(t, 3*time.Second, s.Elapsed())
	assert.True(t, s.Contains(title))

	s.Play(Transform(title, corner))
	assert.False(t, s.Contains(title))
	assert.Equal(t, []mobject.Mobject{corner, subtitle}, s.Mobjects(), "transform keeps the draw position")

	s.Play(FadeOut(subtitle))
	assert.Equal(t, []mobject.Mobject{corner}, s.Mobjects())
}

func TestAnimateMutatesInPlace(t *testing.T) {
	s := New(nil)
	a, b := mobject.NewBox(100, 50, mobject.Red), mobject.NewBox(100, 50, mobject.Blue)
	s.Add(a, b)
	pair := mobject.NewGroup(a, b)

	s.Play(Animate(pair, func(m mobject.Mobject) { m.Scale(0.5) }))

	require.NoError(t, s.Err())
	assert.False(t, s.Contains(pair), "group is not drawn on top of its members")
	assert.Equal(t, 2, s.Len())
	assert.InDelta(t, 50, a.Bounds().W, 1e-9)
}

func TestInvalidStepIsSticky(t *testing.T) {
	log := &eventLog{}
	s := New(log)
	s.Enter("Broken")

	s.Play(FadeIn())
	require.ErrorIs(t, s.Err(), ErrNoTargets)

	s.Play(FadeIn(mobject.NewText("late")))
	s.Wait(0)
	s.EndSlide()
	assert.Zero(t, s.Len())
	assert.Empty(t, log.waited)
	assert.Empty(t, log.slides)
}

func TestTransformIntoRegisteredObject(t *testing.T) {
	log := &eventLog{}
	s := New(log)
	a, b, c := mobject.NewText("a"), mobject.NewText("b"), mobject.NewText("c")
	s.Add(a, b, c)

	s.Play(Transform(c, a))
	assert.Equal(t, []mobject.Mobject{b, a}, s.Mobjects())
	assert.Equal(t, s.Mobjects(), log.order)
	assert.Equal(t, 3, log.added)
	assert.Equal(t, 1, log.removed)

	s.Remove(a)
	assert.False(t, s.Contains(a))
	assert.Equal(t, 1, s.Len())
}

func TestChangedFollowsDrawOrder(t *testing.T) {
	log := &eventLog{}
	s := New(log)
	a, b, c := mobject.NewText("a"), mobject.NewText("b"), mobject.NewText("c")

	s.Play(FadeIn(a, b))
	s.Play(Transform(a, c))
	assert.Equal(t, []mobject.Mobject{c, b}, log.order)

	s.Add(c)
	assert.Equal(t, []mobject.Mobject{b, c}, log.order, "re-adding moves to the top")
	assert.Equal(t, 3, log.added)

	s.Play(Transform(b, b))
	assert.Equal(t, []mobject.Mobject{b, c}, s.Mobjects())
}

func TestTransformRequiresDestination(t *testing.T) {
	s := New(nil)
	s.Play(Transform(mobject.NewText("a"), nil))
	assert.Error(t, s.Err())
}

func TestWaitDefaultsAndSlideSnapshot(t *testing.T) {
	log := &eventLog{}
	s := New(log)
	a := mobject.NewText("a")

	s.Add(a)
	s.Wait(0)
	s.Wait(500 * time.Millisecond)
	s.EndSlide()
	s.Clear()

	assert.Equal(t, []time.Duration{DefaultWait, 500 * time.Millisecond}, log.waited)
	require.Len(t, log.slides, 1)
	assert.Equal(t, []mobject.Mobject{a}, log.slides[0], "snapshot survives the clear")
}

func TestTeeForwardsToAll(t *testing.T) {
	first, second := &eventLog{}, &eventLog{}
	s := New(Tee(first, second))

	s.Enter("Intro")
	s.Add(mobject.NewText("a"))
	s.Clear()

	for _, l := range []*eventLog{first, second} {
		assert.Equal(t, []string{"Intro"}, l.scenes)
		assert.Equal(t, 1, l.added)
		assert.Equal(t, []int{1}, l.clears)
	}
}
