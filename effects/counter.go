package effects

import "github.com/plus3/strand/behavior"

// Counter is the minimal behavior: a monotonic tick counter rendered as a
// grey ramp on the first pixel. It ignores all purpose parameters and mainly
// serves as the reference unit for the runtime contract.
type Counter struct {
	T uint32
}

func counterDefinition() behavior.Definition {
	return behavior.Definition{
		Id:    CounterId,
		Key:   "counter",
		Title: "Counter",
		New:   func() behavior.Behavior { return &Counter{} },
	}
}

// Init resets the counter to zero.
func (c *Counter) Init() {
	c.T = 0
}

// Tick advances the counter by one.
func (c *Counter) Tick(frame *behavior.Frame) {
	c.T++
}

// Render writes the low byte of the counter to the first pixel.
func (c *Counter) Render(fb *behavior.Framebuffer) {
	v := uint8(c.T)
	fb.Set(0, behavior.RGB{R: v, G: v, B: v})
}
