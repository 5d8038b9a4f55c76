package surface

import (
	"time"

	"github.com/ivlev/deck2video/internal/mobject"
)

// DefaultRunTime is the duration of an animation when none is given.
const DefaultRunTime = time.Second

// AnimationKind names what an animation does to the registry.
type AnimationKind string

const (
	KindFadeIn    AnimationKind = "fade_in"
	KindFadeOut   AnimationKind = "fade_out"
	KindCreate    AnimationKind = "create"
	KindTransform AnimationKind = "transform"
	KindAnimate   AnimationKind = "animate"
)

// Animation is one transition passed to Surface.Play.
// Interpolation is left to the renderer; the surface only applies the
// end state to its registry.
type Animation struct {
	Kind    AnimationKind
	Targets []mobject.Mobject
	RunTime time.Duration

	// Transform: Targets[0] is replaced by Into.
	Into mobject.Mobject
	// Animate: applied to Targets[0] when the animation is played.
	Mutate func(mobject.Mobject)
}

// WithRunTime returns a copy of a with the given duration.
func (a Animation) WithRunTime(d time.Duration) Animation {
	a.RunTime = d
	return a
}

// FadeIn adds the targets to the surface.
func FadeIn(targets ...mobject.Mobject) Animation {
	return Animation{Kind: KindFadeIn, Targets: targets, RunTime: DefaultRunTime}
}

// Create adds the targets to the surface, drawn stroke by stroke.
func Create(targets ...mobject.Mobject) Animation {
	return Animation{Kind: KindCreate, Targets: targets, RunTime: DefaultRunTime}
}

// FadeOut removes the targets from the surface.
func FadeOut(targets ...mobject.Mobject) Animation {
	return Animation{Kind: KindFadeOut, Targets: targets, RunTime: DefaultRunTime}
}

// Transform morphs src into dst: dst takes src's place in the registry.
func Transform(src, dst mobject.Mobject) Animation {
	return Animation{Kind: KindTransform, Targets: []mobject.Mobject{src}, Into: dst, RunTime: DefaultRunTime}
}

// Animate changes an object in place (move, scale, ...). The target is not
// registered by the animation: a group of visible objects can be animated
// without being drawn twice.
func Animate(target mobject.Mobject, mutate func(mobject.Mobject)) Animation {
	return Animation{Kind: KindAnimate, Targets: []mobject.Mobject{target}, Mutate: mutate, RunTime: DefaultRunTime}
}
