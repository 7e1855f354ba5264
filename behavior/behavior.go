// Package behavior implements a deterministic fixed-step runtime for pixel
// strip behaviors. A behavior is a self-contained state block plus three
// operations (Init, Tick, Render) driven once per step by a Runner. Behaviors
// are registered under numeric ids in a Registry and tuned at runtime through
// purpose parameters.
package behavior

// Behavior is a unit of deterministic, fixed-step animation logic.
// User-defined behaviors implement this interface on a struct whose fields
// hold all state that persists between steps.
//
// Determinism contract: Tick must be a pure function of the receiver's state
// and the supplied Frame. No wall-clock reads, no unseeded randomness.
// Running Init followed by the same sequence of frames must always produce
// bit-identical state and output.
type Behavior interface {
	// Init resets the receiver to its canonical starting state. It is
	// idempotent: calling it twice in a row is equivalent to calling it once.
	Init()

	// Tick advances the receiver by exactly one logical step.
	Tick(frame *Frame)

	// Render writes the current state into the framebuffer. It must not
	// mutate any receiver state.
	Render(fb *Framebuffer)
}

// Frame is the per-step context handed to Behavior.Tick. All values are fixed
// for the duration of one Runner step except Params, which is the snapshot
// bound to the instance being ticked.
type Frame struct {
	// Tick is the runner's global step count, starting at 0.
	Tick uint64

	// DeltaTime is the fixed logical step duration in seconds. It never
	// reflects measured wall-clock time.
	DeltaTime float64

	// Pixels is the length of the target framebuffer.
	Pixels int

	// Params is the purpose parameter snapshot for the current instance.
	Params Params

	// Commands buffers structural changes (spawn, retire) until the end of
	// the step.
	Commands *Commands
}
