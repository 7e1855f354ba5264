// Package effects ships the built-in behavior library: deterministic pixel
// strip animations registered under stable ids. Every effect follows the
// same purpose parameter conventions where they apply: PF0 speed, PF1
// brightness, PF2 effect-specific shape, PI0..PI2 color, PI3 seed.
package effects

import "github.com/plus3/strand/behavior"

// Stable ids for the shipped behavior set. Embedding applications extending
// the registry should allocate ids well above this range.
const (
	CounterId behavior.BehaviorId = iota + 1
	SolidId
	StrobeId
	ScannerId
	RainbowId
	SparkleId
)

// RegisterAll registers every shipped effect on the given registry.
func RegisterAll(r *behavior.Registry) error {
	defs := []behavior.Definition{
		counterDefinition(),
		solidDefinition(),
		strobeDefinition(),
		scannerDefinition(),
		rainbowDefinition(),
		sparkleDefinition(),
	}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry preloaded with every shipped effect.
func NewRegistry() *behavior.Registry {
	r := behavior.NewRegistry()
	if err := RegisterAll(r); err != nil {
		// The shipped set has no id or key collisions; a failure here is a
		// programming error in this package.
		panic(err)
	}
	return r
}

// paramColor reads PI0..PI2 as an RGB color.
func paramColor(p behavior.Params) behavior.RGB {
	return behavior.RGB{R: uint8(p.PI[0]), G: uint8(p.PI[1]), B: uint8(p.PI[2])}
}
