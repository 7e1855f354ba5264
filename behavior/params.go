package behavior

// Purpose parameter ranges. Float slots are normalized fractions, int slots
// are byte-valued, matching the firmware purpose channel contract.
const (
	NumFloatParams = 4
	NumIntParams   = 4

	MinFloatParam = 0.0
	MaxFloatParam = 1.0
	MinIntParam   = 0
	MaxIntParam   = 255
)

// Params holds the purpose parameters bound to a behavior instance: four
// float slots (PF0..PF3) and four int slots (PI0..PI3). Behaviors read them
// for rule-driven tuning; each behavior documents its own slot mapping.
// The zero value is the canonical default (all slots zero).
type Params struct {
	PF [NumFloatParams]float64
	PI [NumIntParams]int
}

// Clamp returns a copy with every slot forced into its legal range:
// PF slots to [0, 1], PI slots to [0, 255].
func (p Params) Clamp() Params {
	for i, v := range p.PF {
		if v < MinFloatParam {
			p.PF[i] = MinFloatParam
		} else if v > MaxFloatParam {
			p.PF[i] = MaxFloatParam
		}
	}
	for i, v := range p.PI {
		if v < MinIntParam {
			p.PI[i] = MinIntParam
		} else if v > MaxIntParam {
			p.PI[i] = MaxIntParam
		}
	}
	return p
}
