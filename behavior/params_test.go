package behavior_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/strand/behavior"
)

func TestParamsClamp(t *testing.T) {
	tests := []struct {
		name string
		in   behavior.Params
		want behavior.Params
	}{
		{
			name: "zero value is already canonical",
			in:   behavior.Params{},
			want: behavior.Params{},
		},
		{
			name: "in-range values pass through",
			in: behavior.Params{
				PF: [behavior.NumFloatParams]float64{0.25, 1, 0, 0.5},
				PI: [behavior.NumIntParams]int{0, 128, 255, 7},
			},
			want: behavior.Params{
				PF: [behavior.NumFloatParams]float64{0.25, 1, 0, 0.5},
				PI: [behavior.NumIntParams]int{0, 128, 255, 7},
			},
		},
		{
			name: "floats clamp to unit range",
			in: behavior.Params{
				PF: [behavior.NumFloatParams]float64{-0.5, 1.5, 100, -0},
			},
			want: behavior.Params{
				PF: [behavior.NumFloatParams]float64{0, 1, 1, 0},
			},
		},
		{
			name: "ints clamp to byte range",
			in: behavior.Params{
				PI: [behavior.NumIntParams]int{-1, 256, 1000, -255},
			},
			want: behavior.Params{
				PI: [behavior.NumIntParams]int{0, 255, 255, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp())
		})
	}
}

func TestParamsClampDoesNotMutateReceiver(t *testing.T) {
	p := behavior.Params{
		PF: [behavior.NumFloatParams]float64{2, 2, 2, 2},
	}
	_ = p.Clamp()
	assert.Equal(t, 2.0, p.PF[0], "Clamp must operate on a copy")
}
