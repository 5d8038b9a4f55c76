package scene

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScene = errors.New("unknown scene")

// Factory creates a fresh scene instance.
type Factory func() Scene

// Entry describes one registered scene.
type Entry struct {
	Name        string
	Description string
	Factory     Factory
}

// Registry maps scene names to factories and remembers a default order.
type Registry struct {
	entries map[string]Entry
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a scene. Registering the same name twice is an error.
func (r *Registry) Register(name, description string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("register %q: name and factory are required", name)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("register %q: already registered", name)
	}
	r.entries[name] = Entry{Name: name, Description: description, Factory: f}
	return nil
}

// SetDefault fixes the order used when no scene list is given.
func (r *Registry) SetDefault(names ...string) error {
	for _, n := range names {
		if _, ok := r.entries[n]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownScene, n)
		}
	}
	r.order = append([]string(nil), names...)
	return nil
}

// Default returns the default scene order.
func (r *Registry) Default() []string {
	return append([]string(nil), r.order...)
}

// Entries lists every registered scene sorted by name.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Build instantiates the named scenes in the given order. An empty list
// means the default order.
func (r *Registry) Build(names []string) ([]Scene, error) {
	if len(names) == 0 {
		names = r.order
	}
	scenes := make([]Scene, 0, len(names))
	for _, n := range names {
		e, ok := r.entries[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScene, n)
		}
		scenes = append(scenes, e.Factory())
	}
	return scenes, nil
}
