package effects

import (
	"math/rand/v2"

	"github.com/plus3/strand/behavior"
)

// Sparkle ignites random pixels that fade back to black. Randomness comes
// from a PCG stream seeded by PI3, so a given seed always replays the same
// glitter. PF0 maps to spark density, PF1 to brightness, PF2 to fade rate,
// PI0..PI2 to the spark color.
type Sparkle struct {
	Levels []float64
	Budget float64
	Color  behavior.RGB

	seed int
	rng  *rand.Rand
}

func sparkleDefinition() behavior.Definition {
	return behavior.Definition{
		Id:    SparkleId,
		Key:   "sparkle",
		Title: "Sparkle",
		New:   func() behavior.Behavior { return &Sparkle{} },
		Defaults: behavior.Params{
			PF: [behavior.NumFloatParams]float64{0.3, 1, 0.5, 0},
			PI: [behavior.NumIntParams]int{255, 255, 255, 1},
		},
	}
}

const (
	sparkleMaxPerTick = 0.5  // expected sparks per pixel per tick at PF0 = 1
	sparkleMinFade    = 0.02 // level lost per tick at PF2 = 0
	sparkleMaxFade    = 0.40 // level lost per tick at PF2 = 1
)

// Init drops all sparks and discards the random stream; the next tick
// reseeds from PI3.
func (s *Sparkle) Init() {
	s.Levels = nil
	s.Budget = 0
	s.Color = behavior.RGB{}
	s.seed = 0
	s.rng = nil
}

// Tick fades live sparks and ignites new ones from the seeded stream.
func (s *Sparkle) Tick(frame *behavior.Frame) {
	s.Color = paramColor(frame.Params).Scale(frame.Params.PF[1])

	// Reseed whenever the seed parameter changes, first tick included.
	if s.rng == nil || s.seed != frame.Params.PI[3] {
		s.seed = frame.Params.PI[3]
		s.rng = rand.New(rand.NewPCG(uint64(s.seed), 0))
	}

	if len(s.Levels) != frame.Pixels {
		s.Levels = make([]float64, frame.Pixels)
	}

	fade := sparkleMinFade + frame.Params.PF[2]*(sparkleMaxFade-sparkleMinFade)
	for i, lv := range s.Levels {
		lv -= fade
		if lv < 0 {
			lv = 0
		}
		s.Levels[i] = lv
	}

	s.Budget += frame.Params.PF[0] * sparkleMaxPerTick * float64(frame.Pixels)
	for s.Budget >= 1 {
		s.Budget--
		s.Levels[s.rng.IntN(len(s.Levels))] = 1
	}
}

// Render writes each spark at its current fade level.
func (s *Sparkle) Render(fb *behavior.Framebuffer) {
	for i, lv := range s.Levels {
		if lv > 0 {
			fb.Set(i, s.Color.Scale(lv))
		}
	}
}
