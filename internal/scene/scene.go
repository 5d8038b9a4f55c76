// Package scene defines the unit of presentation content and a registry
// that lets a deck be described by scene names.
package scene

import (
	"errors"

	"github.com/ivlev/deck2video/internal/surface"
)

// Scene is a self-contained unit of presentation content.
//
// Setup prepares per-scene state and must not rely on any other scene's
// Construct having run. Construct emits the scene's steps onto the surface
// strictly in order; the objects it creates are cleared by the composer
// once it returns.
type Scene interface {
	Name() string
	Setup(s *surface.Surface) error
	Construct(s *surface.Surface) error
}

// Validator is implemented by scenes that can tell they are incomplete.
type Validator interface {
	Validate() error
}

var ErrNoConstruct = errors.New("scene has no construct step")

// Func builds a Scene from plain functions. SetupFn may be nil.
type Func struct {
	SceneName   string
	SetupFn     func(*surface.Surface) error
	ConstructFn func(*surface.Surface) error
}

func (f *Func) Name() string { return f.SceneName }

func (f *Func) Setup(s *surface.Surface) error {
	if f.SetupFn == nil {
		return nil
	}
	return f.SetupFn(s)
}

func (f *Func) Construct(s *surface.Surface) error {
	if f.ConstructFn == nil {
		return ErrNoConstruct
	}
	return f.ConstructFn(s)
}

func (f *Func) Validate() error {
	if f.ConstructFn == nil {
		return ErrNoConstruct
	}
	return nil
}
