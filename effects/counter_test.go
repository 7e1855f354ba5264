package effects_test

import (
	"testing"

	"github.com/plus3/strand/behavior"
	"github.com/plus3/strand/effects"
)

func TestCounterMatchesTickCount(t *testing.T) {
	c := &effects.Counter{}
	c.Init()

	frame := &behavior.Frame{DeltaTime: behavior.DefaultStep, Pixels: 8}
	for i := 0; i < 5; i++ {
		c.Tick(frame)
	}

	if c.T != 5 {
		t.Errorf("expected t == 5 after init and five ticks, got %d", c.T)
	}

	c.Init()
	if c.T != 0 {
		t.Errorf("expected t == 0 after re-init, got %d", c.T)
	}
}

func TestCounterRendersLowByte(t *testing.T) {
	c := &effects.Counter{T: 300}
	fb := behavior.NewFramebuffer(4)

	c.Render(fb)

	want := uint8(300 % 256)
	if got := fb.At(0); got.R != want || got.G != want || got.B != want {
		t.Errorf("expected first pixel grey level %d, got %+v", want, got)
	}
	if got := fb.At(1); got != (behavior.RGB{}) {
		t.Errorf("expected counter to touch only the first pixel, got %+v", got)
	}
}
