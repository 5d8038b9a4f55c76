// Package surface is the shared registry of visible objects that scenes
// draw on and the deck composer clears between scenes.
//
// A Surface has exactly one writer at a time: the scene being constructed,
// or the composer during its cleanup step. It does no locking.
package surface

import (
	"errors"
	"fmt"
	"time"

	"github.com/ivlev/deck2video/internal/mobject"
)

// DefaultWait is the pause used by Wait when no positive duration is given.
const DefaultWait = time.Second

var ErrNoTargets = errors.New("animation has no targets")

// Surface tracks the currently visible objects in draw order and reports
// every step to an optional Recorder.
type Surface struct {
	objects []mobject.Mobject
	rec     Recorder
	scene   string
	elapsed time.Duration
	err     error
}

// New returns an empty surface. rec may be nil.
func New(rec Recorder) *Surface {
	return &Surface{rec: rec}
}

// Enter marks the start of a scene's construct phase.
func (s *Surface) Enter(name string) {
	s.scene = name
	if s.rec != nil {
		s.rec.SceneEntered(name)
	}
}

// Scene returns the name of the scene currently constructing.
func (s *Surface) Scene() string { return s.scene }

// Elapsed is the total presentation time played so far.
func (s *Surface) Elapsed() time.Duration { return s.elapsed }

// Err returns the first invalid step a scene attempted. Once set, later
// Play, Wait and EndSlide calls are ignored.
func (s *Surface) Err() error { return s.err }

func (s *Surface) Len() int { return len(s.objects) }

// Mobjects returns a snapshot of the registry in draw order.
func (s *Surface) Mobjects() []mobject.Mobject {
	out := make([]mobject.Mobject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Surface) Contains(m mobject.Mobject) bool {
	return s.indexOf(m) >= 0
}

// Add registers objects without an animation. An object already on the
// surface is moved to the top instead of being added twice.
func (s *Surface) Add(objs ...mobject.Mobject) {
	var added []mobject.Mobject
	changed := false
	for _, m := range objs {
		if m == nil {
			continue
		}
		if i := s.indexOf(m); i >= 0 {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
		} else {
			added = append(added, m)
		}
		s.objects = append(s.objects, m)
		changed = true
	}
	if s.rec == nil || !changed {
		return
	}
	if len(added) > 0 {
		s.rec.Added(added)
	}
	s.rec.Changed(s.Mobjects())
}

// Remove unregisters objects. Objects not on the surface are ignored.
func (s *Surface) Remove(objs ...mobject.Mobject) {
	var removed []mobject.Mobject
	for _, m := range objs {
		if m == nil {
			continue
		}
		if i := s.indexOf(m); i >= 0 {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			removed = append(removed, m)
		}
	}
	if len(removed) > 0 && s.rec != nil {
		s.rec.Removed(removed)
		s.rec.Changed(s.Mobjects())
	}
}

// Clear removes every registered object and returns how many there were.
// Clearing an empty surface is a no-op.
func (s *Surface) Clear() int {
	n := len(s.objects)
	s.objects = nil
	if s.rec != nil {
		s.rec.Cleared(n)
	}
	return n
}

// Play applies the animations in order and advances the clock by the
// longest run time among them.
func (s *Surface) Play(anims ...Animation) {
	if s.err != nil {
		return
	}
	for _, a := range anims {
		if err := validate(a); err != nil {
			s.err = fmt.Errorf("%s: play %s: %w", s.scene, a.Kind, err)
			return
		}
	}

	var longest time.Duration
	for _, a := range anims {
		s.apply(a)
		if a.RunTime > longest {
			longest = a.RunTime
		}
	}
	s.elapsed += longest
	if s.rec != nil {
		s.rec.Played(anims, longest)
	}
}

// Wait holds the current frame. Non-positive durations mean DefaultWait.
func (s *Surface) Wait(d time.Duration) {
	if s.err != nil {
		return
	}
	if d <= 0 {
		d = DefaultWait
	}
	s.elapsed += d
	if s.rec != nil {
		s.rec.Waited(d)
	}
}

// EndSlide marks a slide boundary: the presenter advances manually here.
func (s *Surface) EndSlide() {
	if s.err != nil {
		return
	}
	if s.rec != nil {
		s.rec.SlideEnded(s.Mobjects())
	}
}

func (s *Surface) apply(a Animation) {
	switch a.Kind {
	case KindFadeIn, KindCreate:
		s.Add(a.Targets...)
	case KindFadeOut:
		s.Remove(a.Targets...)
	case KindTransform:
		s.transform(a.Targets[0], a.Into)
	case KindAnimate:
		a.Mutate(a.Targets[0])
	}
}

// transform puts dst in src's place in the draw order. If dst is already on
// the surface its old entry is dropped, so it stays registered once.
func (s *Surface) transform(src, dst mobject.Mobject) {
	if src == dst {
		return
	}
	i := s.indexOf(src)
	if i < 0 {
		s.Add(dst)
		return
	}
	existed := false
	if j := s.indexOf(dst); j >= 0 {
		s.objects = append(s.objects[:j], s.objects[j+1:]...)
		existed = true
		if j < i {
			i--
		}
	}
	s.objects[i] = dst
	if s.rec == nil {
		return
	}
	s.rec.Removed([]mobject.Mobject{src})
	if !existed {
		s.rec.Added([]mobject.Mobject{dst})
	}
	s.rec.Changed(s.Mobjects())
}

func (s *Surface) indexOf(m mobject.Mobject) int {
	for i, o := range s.objects {
		if o == m {
			return i
		}
	}
	return -1
}

func validate(a Animation) error {
	if len(a.Targets) == 0 {
		return ErrNoTargets
	}
	for _, t := range a.Targets {
		if t == nil {
			return errors.New("nil target")
		}
	}
	if a.RunTime < 0 {
		return fmt.Errorf("negative run time %s", a.RunTime)
	}
	switch a.Kind {
	case KindFadeIn, KindCreate, KindFadeOut:
	case KindTransform:
		if a.Into == nil {
			return errors.New("transform without a destination")
		}
	case KindAnimate:
		if a.Mutate == nil {
			return errors.New("animate without a mutation")
		}
	default:
		return fmt.Errorf("unknown animation kind %q", a.Kind)
	}
	return nil
}
