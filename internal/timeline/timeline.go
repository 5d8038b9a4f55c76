// Package timeline records what a deck run put on the surface and stores
// it as a list of slides, the format the renderer and the YAML export use.
package timeline

import "github.com/ivlev/deck2video/internal/mobject"

const Version = "1.0"

// Timeline is the full presentation as a sequence of slides.
type Timeline struct {
	Version string  `yaml:"version"`
	Title   string  `yaml:"title,omitempty"`
	Slides  []Slide `yaml:"slides"`
}

// Slide is everything played between two slide boundaries.
type Slide struct {
	ID       int      `yaml:"id"`
	Scene    string   `yaml:"scene"`
	Start    float64  `yaml:"start"`    // Seconds from the start of the deck
	Duration float64  `yaml:"duration"` // Total duration in seconds
	Implicit bool     `yaml:"implicit,omitempty"`
	Steps    []Step   `yaml:"steps"`
	Objects  []Object `yaml:"objects"`

	visible []mobject.Mobject
}

// Visible returns the objects on screen at the end of the slide, frozen in
// the state they had then. It is empty for slides read back from YAML.
func (s Slide) Visible() []mobject.Mobject { return s.visible }

// Step is one play or wait call inside a slide.
type Step struct {
	Time       float64  `yaml:"time"` // Offset from the slide start
	Action     string   `yaml:"action"`
	Duration   float64  `yaml:"duration"`
	Animations []string `yaml:"animations,omitempty"`
}

// Object describes a visible object at the end of a slide.
type Object struct {
	ID    string    `yaml:"id"`
	Kind  string    `yaml:"kind"`
	Label string    `yaml:"label,omitempty"`
	Rect  Rectangle `yaml:"rect"`
}

// Rectangle is a bounding box in frame units.
type Rectangle struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Durations returns the slide durations in order.
func (t *Timeline) Durations() []float64 {
	out := make([]float64, len(t.Slides))
	for i, s := range t.Slides {
		out[i] = s.Duration
	}
	return out
}

// TotalDuration is the sum of all slide durations.
func (t *Timeline) TotalDuration() float64 {
	total := 0.0
	for _, s := range t.Slides {
		total += s.Duration
	}
	return total
}

func describe(m mobject.Mobject) Object {
	b := m.Bounds()
	o := Object{
		ID:   m.ID(),
		Kind: m.Kind(),
		Rect: Rectangle{X: b.X, Y: b.Y, W: b.W, H: b.H},
	}
	switch v := m.(type) {
	case *mobject.Text:
		o.Label = v.Content
	case *mobject.Image:
		o.Label = v.Path
	case *mobject.PDFPage:
		o.Label = v.Path
	case *mobject.QRCode:
		o.Label = v.Content
	}
	return o
}
