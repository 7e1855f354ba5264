package effects

import (
	"math"

	"github.com/plus3/strand/behavior"
)

// Rainbow scrolls a hue wheel along the strip. PF0 maps to scroll speed
// (0..1 wheel revolutions per logical second), PF1 to brightness, PF2 to the
// fraction of the wheel spread across the strip.
type Rainbow struct {
	Phase  float64
	Span   float64
	Bright float64
}

func rainbowDefinition() behavior.Definition {
	return behavior.Definition{
		Id:    RainbowId,
		Key:   "rainbow",
		Title: "Rainbow",
		New:   func() behavior.Behavior { return &Rainbow{} },
		Defaults: behavior.Params{
			PF: [behavior.NumFloatParams]float64{0.2, 1, 1, 0},
		},
	}
}

// Init rewinds the wheel to red at pixel zero.
func (r *Rainbow) Init() {
	r.Phase = 0
	r.Span = 0
	r.Bright = 0
}

// Tick advances the wheel phase and latches the shape parameters.
func (r *Rainbow) Tick(frame *behavior.Frame) {
	r.Phase = math.Mod(r.Phase+frame.Params.PF[0]*frame.DeltaTime, 1.0)
	r.Span = frame.Params.PF[2]
	r.Bright = frame.Params.PF[1]
}

// Render maps each pixel to a hue offset along the latched span.
func (r *Rainbow) Render(fb *behavior.Framebuffer) {
	n := fb.Len()
	for i := 0; i < n; i++ {
		hue := r.Phase + r.Span*float64(i)/float64(n)
		fb.Set(i, hueRGB(hue).Scale(r.Bright))
	}
}

// hueRGB converts a hue in wheel revolutions (wrapping) to a fully saturated
// RGB color.
func hueRGB(hue float64) behavior.RGB {
	hue = hue - math.Floor(hue)
	sector := hue * 6
	frac := sector - math.Floor(sector)

	ramp := uint8(frac * 255)
	fall := uint8((1 - frac) * 255)

	switch int(sector) % 6 {
	case 0:
		return behavior.RGB{R: 255, G: ramp, B: 0}
	case 1:
		return behavior.RGB{R: fall, G: 255, B: 0}
	case 2:
		return behavior.RGB{R: 0, G: 255, B: ramp}
	case 3:
		return behavior.RGB{R: 0, G: fall, B: 255}
	case 4:
		return behavior.RGB{R: ramp, G: 0, B: 255}
	default:
		return behavior.RGB{R: 255, G: 0, B: fall}
	}
}
