package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/ivlev/deck2video/internal/mobject"
	"github.com/ivlev/deck2video/internal/surface"
)

// progress prints a line per slide boundary while the deck is composed.
type progress struct {
	out    io.Writer
	scene  string
	slides int
}

var _ surface.Recorder = (*progress)(nil)

func (p *progress) SceneEntered(name string) { p.scene = name }
func (p *progress) Added([]mobject.Mobject) {}
func (p *progress) Removed([]mobject.Mobject) {}
func (p *progress) Changed([]mobject.Mobject) {}
func (p *progress) Cleared(int) {}
func (p *progress) Played([]surface.Animation, time.Duration) {}
func (p *progress) Waited(time.Duration) {}

func (p *progress) SlideEnded(visible []mobject.Mobject) {
	p.slides++
	fmt.Fprintf(p.out, "[>] Слайд %d: %s (объектов: %d)\n", p.slides, p.scene, len(visible))
}
