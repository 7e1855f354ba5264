package effects

import "github.com/plus3/strand/behavior"

// Solid fills the strip with one color. PI0..PI2 select the color, PF1
// scales brightness. Parameters are latched during Tick so Render stays a
// pure read of state.
type Solid struct {
	Color behavior.RGB
}

func solidDefinition() behavior.Definition {
	return behavior.Definition{
		Id:    SolidId,
		Key:   "solid",
		Title: "Solid",
		New:   func() behavior.Behavior { return &Solid{} },
		Defaults: behavior.Params{
			PF: [behavior.NumFloatParams]float64{0, 1, 0, 0},
			PI: [behavior.NumIntParams]int{255, 0, 0, 0},
		},
	}
}

// Init resets to black until the first tick latches a color.
func (s *Solid) Init() {
	s.Color = behavior.RGB{}
}

// Tick latches the parameter color at the parameter brightness.
func (s *Solid) Tick(frame *behavior.Frame) {
	s.Color = paramColor(frame.Params).Scale(frame.Params.PF[1])
}

// Render fills the strip with the latched color.
func (s *Solid) Render(fb *behavior.Framebuffer) {
	fb.Fill(s.Color)
}
