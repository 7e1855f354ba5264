package effects

import "github.com/plus3/strand/behavior"

// Scanner bounces a bright eye with a fading tail across the strip, in the
// manner of a Larson scanner. PF0 maps to sweep speed (0..2 pixels per
// tick), PF1 to brightness, PI0..PI2 to the eye color.
type Scanner struct {
	Pos   int
	Dir   int
	Acc   float64
	Color behavior.RGB
}

func scannerDefinition() behavior.Definition {
	return behavior.Definition{
		Id:    ScannerId,
		Key:   "scanner",
		Title: "Cylon / Larson Scanner",
		New:   func() behavior.Behavior { return &Scanner{} },
		Defaults: behavior.Params{
			PF: [behavior.NumFloatParams]float64{0.3, 1, 0, 0},
			PI: [behavior.NumIntParams]int{255, 0, 0, 0},
		},
	}
}

const (
	scannerMaxSpeed = 2.0 // pixels per tick at PF0 = 1
	scannerTail     = 4
)

// Init parks the eye at the left edge moving right.
func (s *Scanner) Init() {
	s.Pos = 0
	s.Dir = 1
	s.Acc = 0
	s.Color = behavior.RGB{}
}

// Tick accumulates fractional movement and bounces the eye off both ends.
func (s *Scanner) Tick(frame *behavior.Frame) {
	s.Color = paramColor(frame.Params).Scale(frame.Params.PF[1])

	last := frame.Pixels - 1
	if last < 1 {
		s.Pos = 0
		return
	}

	s.Acc += frame.Params.PF[0] * scannerMaxSpeed
	for s.Acc >= 1 {
		s.Acc--
		s.Pos += s.Dir
		if s.Pos >= last {
			s.Pos = last
			s.Dir = -1
		} else if s.Pos <= 0 {
			s.Pos = 0
			s.Dir = 1
		}
	}
}

// Render draws the eye and a tail that halves in intensity per pixel behind
// the direction of travel.
func (s *Scanner) Render(fb *behavior.Framebuffer) {
	fb.Set(s.Pos, s.Color)
	for o := 1; o <= scannerTail; o++ {
		faded := behavior.RGB{
			R: s.Color.R >> o,
			G: s.Color.G >> o,
			B: s.Color.B >> o,
		}
		fb.Set(s.Pos-s.Dir*o, faded)
	}
}
