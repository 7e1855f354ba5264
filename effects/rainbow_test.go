package effects_test

import (
	"testing"

	"github.com/plus3/strand/behavior"
	"github.com/plus3/strand/effects"
)

func rainbowFrame(speed, span float64) *behavior.Frame {
	return &behavior.Frame{
		DeltaTime: behavior.DefaultStep,
		Pixels:    6,
		Params: behavior.Params{
			PF: [behavior.NumFloatParams]float64{speed, 1, span, 0},
		},
	}
}

func TestRainbowFullSpanCoversWheel(t *testing.T) {
	r := &effects.Rainbow{}
	r.Init()
	r.Tick(rainbowFrame(0, 1))

	fb := behavior.NewFramebuffer(6)
	r.Render(fb)

	// Phase 0 with full span: pixel 0 is pure red, pixel 2 lands a third of
	// the way around the wheel in the green sector, pixel 4 in the blue.
	if got := fb.At(0); got != (behavior.RGB{R: 255}) {
		t.Errorf("expected red at pixel 0, got %+v", got)
	}
	if got := fb.At(2); got.G != 255 || got.B != 0 {
		t.Errorf("expected green-dominant pixel 2, got %+v", got)
	}
	if got := fb.At(4); got.B != 255 || got.G != 0 {
		t.Errorf("expected blue-dominant pixel 4, got %+v", got)
	}
}

func TestRainbowZeroSpanIsUniform(t *testing.T) {
	r := &effects.Rainbow{}
	r.Init()
	r.Tick(rainbowFrame(0, 0))

	fb := behavior.NewFramebuffer(6)
	r.Render(fb)

	first := fb.At(0)
	for i := 1; i < fb.Len(); i++ {
		if fb.At(i) != first {
			t.Errorf("pixel %d: expected uniform strip, got %+v vs %+v", i, fb.At(i), first)
		}
	}
}

func TestRainbowPhaseWraps(t *testing.T) {
	r := &effects.Rainbow{}
	r.Init()

	frame := rainbowFrame(1, 1)
	for i := 0; i < 600; i++ {
		r.Tick(frame)
	}

	if r.Phase < 0 || r.Phase >= 1 {
		t.Errorf("expected phase to stay in [0,1), got %v", r.Phase)
	}
}
