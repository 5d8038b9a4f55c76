package engine

import (
	"math"
)

// fitDurations turns the recorded slide durations into segment durations.
//
// Every slide lasts at least MinSlide. With a target (the audio length) the
// slides are scaled so the video lasts exactly that long. Each segment
// except the last is extended by the fade, because xfade overlaps
// neighbours by that much. Durations are aligned to whole frames so xfade
// offsets stay stable.
func (p *Project) fitDurations(recorded []float64, target float64) {
	n := len(recorded)
	durations := make([]float64, n)
	for i, d := range recorded {
		durations[i] = math.Max(d, p.Config.MinSlide)
	}

	if target > 0 {
		sum := 0.0
		for _, d := range durations {
			sum += d
		}
		scale := target / sum
		for i := range durations {
			durations[i] *= scale
		}
	}

	fade := 0.0
	if p.Config.HasTransitions() && n > 1 {
		fade = p.Config.FadeDuration
		minDur := durations[0]
		for _, d := range durations {
			minDur = math.Min(minDur, d)
		}
		if fade >= minDur {
			fade = minDur / 2.0
			p.Logger.Printf("[!] Переход уменьшен до %.2fs из-за короткого слайда", fade)
		}
		p.Config.FadeDuration = fade
	}

	fps := float64(p.Config.FPS)
	total := 0.0
	for i := range durations {
		total += durations[i]
		if i < n-1 {
			durations[i] += fade
		}
		// Выравниваем по кадрам, но не короче одного кадра.
		durations[i] = math.Max(math.Round(durations[i]*fps), 1) / fps
	}

	p.Config.SlideDurations = durations
	p.Config.TotalDuration = total
}
