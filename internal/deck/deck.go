// Package deck chains independently authored scenes into one continuous
// presentation on a shared surface.
package deck

import (
	"errors"
	"fmt"
	"log"

	"github.com/ivlev/deck2video/internal/scene"
	"github.com/ivlev/deck2video/internal/surface"
)

var ErrEmptyDeck = errors.New("deck has no scenes")

// AuthoringError reports a deck entry that cannot take part in a run.
// It is returned by New, before anything is set up or rendered.
// Index is -1 when the problem is the deck as a whole.
type AuthoringError struct {
	Index  int
	Name   string
	Reason error
}

func (e *AuthoringError) Error() string {
	if e.Index < 0 {
		return e.Reason.Error()
	}
	if e.Name == "" {
		return fmt.Sprintf("scene #%d: %v", e.Index, e.Reason)
	}
	return fmt.Sprintf("scene #%d (%s): %v", e.Index, e.Name, e.Reason)
}

func (e *AuthoringError) Unwrap() error { return e.Reason }

// Deck is a fixed, ordered sequence of scenes.
type Deck struct {
	scenes []scene.Scene
	logger *log.Logger
}

// Option customizes a Deck.
type Option func(*Deck)

// WithLogger sends progress lines to l instead of the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Deck) { d.logger = l }
}

// New validates and stores the scene order.
func New(scenes []scene.Scene, opts ...Option) (*Deck, error) {
	if len(scenes) == 0 {
		return nil, &AuthoringError{Index: -1, Reason: ErrEmptyDeck}
	}
	for i, sc := range scenes {
		if sc == nil {
			return nil, &AuthoringError{Index: i, Reason: errors.New("nil scene")}
		}
		if v, ok := sc.(scene.Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, &AuthoringError{Index: i, Name: sc.Name(), Reason: err}
			}
		}
	}

	d := &Deck{
		scenes: append([]scene.Scene(nil), scenes...),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Scenes returns the deck order.
func (d *Deck) Scenes() []scene.Scene {
	return append([]scene.Scene(nil), d.scenes...)
}

// Run plays the deck on surf in two phases: every scene's Setup, in order,
// then every scene's Construct, in order, clearing the surface after each
// one. The first error stops the run and is returned as is.
func (d *Deck) Run(surf *surface.Surface) error {
	for i, sc := range d.scenes {
		err := sc.Setup(surf)
		if err == nil {
			err = surf.Err()
		}
		if err != nil {
			d.logger.Printf("[!] Сцена %d/%d (%s): ошибка setup: %v", i+1, len(d.scenes), sc.Name(), err)
			return err
		}
	}

	for i, sc := range d.scenes {
		d.logger.Printf("[>] Сцена %d/%d: %s", i+1, len(d.scenes), sc.Name())
		surf.Enter(sc.Name())

		err := sc.Construct(surf)
		if err == nil {
			err = surf.Err()
		}
		if err != nil {
			d.logger.Printf("[!] Сцена %d/%d (%s): ошибка construct: %v", i+1, len(d.scenes), sc.Name(), err)
			return err
		}

		// Объекты, оставшиеся после сцены, не должны попасть в следующую.
		if n := surf.Clear(); n > 0 {
			d.logger.Printf("[*] Сцена %s: убрано объектов: %d", sc.Name(), n)
		}
	}
	return nil
}
