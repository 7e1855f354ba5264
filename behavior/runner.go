package behavior

import (
	"context"
	"fmt"
	"time"
)

// DefaultStep is the fixed logical step duration handed to behaviors.
const DefaultStep = 1.0 / 60.0

// RunnerStats provides statistics about runner execution.
type RunnerStats struct {
	Tick          uint64
	InstanceCount int
	Instances     []InstanceStats
}

// InstanceStats provides execution statistics for a single instance,
// covering its combined Tick+Render time per step.
type InstanceStats struct {
	Key          string
	Id           InstanceId
	StepCount    int64
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration
}

type instanceStatsInternal struct {
	stepCount     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

type runnerEntry struct {
	instance *Instance
	stats    instanceStatsInternal
}

// Runner is the fixed-step dispatcher: it owns a framebuffer and an ordered
// set of live instances, and drives each through Tick then Render once per
// step. All methods must be called from a single goroutine.
type Runner struct {
	registry *Registry
	fb       *Framebuffer
	step     float64

	tick      uint64
	entries   []*runnerEntry
	nextIndex uint32
	commands  *Commands
}

// NewRunner creates a runner over the given registry and framebuffer, using
// DefaultStep as the fixed step duration.
func NewRunner(registry *Registry, fb *Framebuffer) *Runner {
	return &Runner{
		registry: registry,
		fb:       fb,
		step:     DefaultStep,
		commands: newCommands(),
	}
}

// Framebuffer returns the framebuffer the runner renders into.
func (r *Runner) Framebuffer() *Framebuffer {
	return r.fb
}

// Tick returns the number of completed steps.
func (r *Runner) Tick() uint64 {
	return r.tick
}

// Spawn creates a new instance of the behavior registered under id, binds the
// clamped params to it, and calls Init. The instance ticks after all
// previously spawned instances.
func (r *Runner) Spawn(id BehaviorId, params Params) (*Instance, error) {
	def, ok := r.registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown behavior id %d", id)
	}

	inst := &Instance{
		Id:       NewInstanceId(id, r.nextIndex),
		Behavior: def.New(),
		key:      def.Key,
		params:   params.Clamp(),
	}
	r.nextIndex++
	inst.Behavior.Init()

	r.entries = append(r.entries, &runnerEntry{
		instance: inst,
		stats:    instanceStatsInternal{minDuration: time.Duration(1<<63 - 1)},
	})
	return inst, nil
}

// Retire removes an instance. It reports whether the instance was live.
// The remaining instances keep their relative order.
func (r *Runner) Retire(id InstanceId) bool {
	for i, entry := range r.entries {
		if entry.instance.Id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// SetParams rebinds the clamped params to a live instance. The new values
// are seen by the instance's next Tick.
func (r *Runner) SetParams(id InstanceId, params Params) bool {
	for _, entry := range r.entries {
		if entry.instance.Id == id {
			entry.instance.params = params.Clamp()
			return true
		}
	}
	return false
}

// Instances returns the live instances in tick order.
func (r *Runner) Instances() []*Instance {
	out := make([]*Instance, len(r.entries))
	for i, entry := range r.entries {
		out[i] = entry.instance
	}
	return out
}

// Step executes one fixed step: the framebuffer is cleared, then every live
// instance runs Tick followed by Render in spawn order, later instances
// drawing over earlier ones. Queued commands are flushed at the end and the
// global tick advances by one.
func (r *Runner) Step() {
	frame := &Frame{
		Tick:      r.tick,
		DeltaTime: r.step,
		Pixels:    r.fb.Len(),
		Commands:  r.commands,
	}

	r.fb.Clear()

	for _, entry := range r.entries {
		frame.Params = entry.instance.params

		start := time.Now()
		entry.instance.Behavior.Tick(frame)
		entry.instance.Behavior.Render(r.fb)
		duration := time.Since(start)

		stats := &entry.stats
		stats.stepCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	r.tick++
	r.commands.flush(r)
}

// Run executes steps repeatedly at the given wall-clock interval until the
// context is cancelled. The interval controls only when steps happen; every
// step still advances by the fixed logical delta, so the outcome is
// independent of scheduling jitter.
func (r *Runner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Step()
		}
	}
}

// Stats returns statistics about instance execution.
func (r *Runner) Stats() *RunnerStats {
	stats := &RunnerStats{
		Tick:          r.tick,
		InstanceCount: len(r.entries),
		Instances:     make([]InstanceStats, len(r.entries)),
	}

	for i, entry := range r.entries {
		internal := &entry.stats
		avg := time.Duration(0)
		if internal.stepCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.stepCount)
		}
		stats.Instances[i] = InstanceStats{
			Key:          entry.instance.key,
			Id:           entry.instance.Id,
			StepCount:    internal.stepCount,
			MinDuration:  internal.minDuration,
			MaxDuration:  internal.maxDuration,
			AvgDuration:  avg,
			LastDuration: internal.lastDuration,
		}
	}
	return stats
}
