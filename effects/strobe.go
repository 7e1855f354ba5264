package effects

import (
	"math"

	"github.com/plus3/strand/behavior"
)

// Strobe flashes the whole strip with a duty-cycled square wave. PF0 maps to
// flash rate (0..10 flashes per second of logical time), PF1 to brightness,
// PF2 to duty cycle, PI0..PI2 to color.
type Strobe struct {
	Phase float64
	On    bool
	Color behavior.RGB
}

func strobeDefinition() behavior.Definition {
	return behavior.Definition{
		Id:    StrobeId,
		Key:   "strobe",
		Title: "Strobe",
		New:   func() behavior.Behavior { return &Strobe{} },
		Defaults: behavior.Params{
			PF: [behavior.NumFloatParams]float64{0.4, 1, 0.25, 0},
			PI: [behavior.NumIntParams]int{255, 255, 255, 0},
		},
	}
}

const strobeMaxRate = 10.0 // flashes per logical second at PF0 = 1

// Init resets the wave to the start of its off phase.
func (s *Strobe) Init() {
	s.Phase = 0
	s.On = false
	s.Color = behavior.RGB{}
}

// Tick advances the flash phase and latches the on/off color.
func (s *Strobe) Tick(frame *behavior.Frame) {
	rate := frame.Params.PF[0] * strobeMaxRate
	s.Phase = math.Mod(s.Phase+rate*frame.DeltaTime, 1.0)

	duty := frame.Params.PF[2]
	s.On = rate > 0 && s.Phase < duty
	if s.On {
		s.Color = paramColor(frame.Params).Scale(frame.Params.PF[1])
	} else {
		s.Color = behavior.RGB{}
	}
}

// Render fills the strip with the latched flash color.
func (s *Strobe) Render(fb *behavior.Framebuffer) {
	fb.Fill(s.Color)
}
