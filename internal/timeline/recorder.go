package timeline

import (
	"time"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/surface"
)

// SceneStats counts what a scene did to the surface.
type SceneStats struct {
	Scene   string
	Added   int
	Removed int
	Cleared int // objects removed by clears
	Slides  int
}

// Recorder turns surface events into slides. Content played after the last
// explicit slide boundary of a scene becomes an implicit final slide.
type Recorder struct {
	title  string
	slides []Slide

	scene   string
	clock   time.Duration
	start   time.Duration
	steps   []Step
	pending bool
	visible []mobject.Mobject // registry in draw order, as last reported

	stats map[string]*SceneStats
	order []string
}

var _ surface.Recorder = (*Recorder)(nil)

func NewRecorder(title string) *Recorder {
	return &Recorder{title: title, stats: make(map[string]*SceneStats)}
}

func (r *Recorder) SceneEntered(name string) {
	r.flush(r.visible, true)
	r.scene = name
	r.stat()
}

func (r *Recorder) Added(objs []mobject.Mobject) {
	r.stat().Added += len(objs)
}

func (r *Recorder) Removed(objs []mobject.Mobject) {
	r.stat().Removed += len(objs)
}

func (r *Recorder) Changed(visible []mobject.Mobject) {
	r.visible = visible
}

func (r *Recorder) Cleared(n int) {
	r.flush(r.visible, true)
	r.visible = nil
	r.stat().Cleared += n
}

func (r *Recorder) Played(anims []surface.Animation, d time.Duration) {
	names := make([]string, len(anims))
	for i, a := range anims {
		names[i] = string(a.Kind)
	}
	r.step("play", d, names)
}

func (r *Recorder) Waited(d time.Duration) {
	r.step("wait", d, nil)
}

func (r *Recorder) SlideEnded(visible []mobject.Mobject) {
	r.pending = true
	r.flush(visible, false)
}

// Timeline returns the slides recorded so far.
func (r *Recorder) Timeline() *Timeline {
	r.flush(r.visible, true)
	slides := make([]Slide, len(r.slides))
	copy(slides, r.slides)
	return &Timeline{Version: Version, Title: r.title, Slides: slides}
}

// Stats returns per-scene counters in the order scenes were entered.
func (r *Recorder) Stats() []SceneStats {
	out := make([]SceneStats, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.stats[name])
	}
	return out
}

func (r *Recorder) step(action string, d time.Duration, anims []string) {
	r.steps = append(r.steps, Step{
		Time:       (r.clock - r.start).Seconds(),
		Action:     action,
		Duration:   d.Seconds(),
		Animations: anims,
	})
	r.clock += d
	r.pending = true
}

// flush closes the current slide if anything happened since the last one.
// The slide keeps copies of the objects: later steps may still move the
// originals.
func (r *Recorder) flush(visible []mobject.Mobject, implicit bool) {
	if !r.pending {
		return
	}
	objs := make([]Object, len(visible))
	snapshot := make([]mobject.Mobject, len(visible))
	for i, m := range visible {
		objs[i] = describe(m)
		snapshot[i] = m.Clone()
	}

	r.slides = append(r.slides, Slide{
		ID:       len(r.slides) + 1,
		Scene:    r.scene,
		Start:    r.start.Seconds(),
		Duration: (r.clock - r.start).Seconds(),
		Implicit: implicit,
		Steps:    r.steps,
		Objects:  objs,
		visible:  snapshot,
	})
	r.stat().Slides++

	r.start = r.clock
	r.steps = nil
	r.pending = false
}

func (r *Recorder) stat() *SceneStats {
	st, ok := r.stats[r.scene]
	if !ok {
		st = &SceneStats{Scene: r.scene}
		r.stats[r.scene] = st
		r.order = append(r.order, r.scene)
	}
	return st
}
