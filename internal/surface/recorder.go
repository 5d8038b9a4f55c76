package surface

import (
	"time"

	"github.com/ivlev/deck2video/internal/mobject"
)

// Recorder observes every change a Surface goes through.
type Recorder interface {
	SceneEntered(name string)
	Added(objs []mobject.Mobject)
	Removed(objs []mobject.Mobject)
	// Changed reports the registry in draw order after Add, Remove or a
	// transform changed its content or order. Clear reports Cleared only.
	Changed(visible []mobject.Mobject)
	Cleared(n int)
	Played(anims []Animation, d time.Duration)
	Waited(d time.Duration)
	SlideEnded(visible []mobject.Mobject)
}

// Tee fans events out to several recorders in order.
func Tee(recs ...Recorder) Recorder {
	return tee(recs)
}

type tee []Recorder

func (t tee) SceneEntered(name string) {
	for _, r := range t {
		r.SceneEntered(name)
	}
}

func (t tee) Added(objs []mobject.Mobject) {
	for _, r := range t {
		r.Added(objs)
	}
}

func (t tee) Removed(objs []mobject.Mobject) {
	for _, r := range t {
		r.Removed(objs)
	}
}

func (t tee) Changed(visible []mobject.Mobject) {
	for _, r := range t {
		r.Changed(visible)
	}
}

func (t tee) Cleared(n int) {
	for _, r := range t {
		r.Cleared(n)
	}
}

func (t tee) Played(anims []Animation, d time.Duration) {
	for _, r := range t {
		r.Played(anims, d)
	}
}

func (t tee) Waited(d time.Duration) {
	for _, r := range t {
		r.Waited(d)
	}
}

func (t tee) SlideEnded(visible []mobject.Mobject) {
	for _, r := range t {
		r.SlideEnded(visible)
	}
}
