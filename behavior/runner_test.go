package behavior_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/strand/behavior"
)

// recordingBehavior notes the order in which units run within a step and the
// frame values it observes.
type recordingBehavior struct {
	label     string
	log       *[]string
	ticks     int
	renders   int
	lastFrame behavior.Frame
}

func (b *recordingBehavior) Init() {
	b.ticks = 0
	b.renders = 0
}

func (b *recordingBehavior) Tick(frame *behavior.Frame) {
	b.ticks++
	b.lastFrame = *frame
	if b.log != nil {
		*b.log = append(*b.log, b.label+":tick")
	}
}

func (b *recordingBehavior) Render(fb *behavior.Framebuffer) {
	b.renders++
	if b.log != nil {
		*b.log = append(*b.log, b.label+":render")
	}
}

func recorderRegistry(t *testing.T, log *[]string) *behavior.Registry {
	t.Helper()
	r := behavior.NewRegistry()
	labels := []struct {
		id  behavior.BehaviorId
		key string
	}{
		{1, "first"},
		{2, "second"},
	}
	for _, l := range labels {
		label := l.key
		err := r.Register(behavior.Definition{
			Id:  l.id,
			Key: l.key,
			New: func() behavior.Behavior {
				return &recordingBehavior{label: label, log: log}
			},
		})
		if err != nil {
			t.Fatalf("failed to register %q: %v", l.key, err)
		}
	}
	return r
}

func TestRunnerStepOrder(t *testing.T) {
	var log []string
	registry := recorderRegistry(t, &log)
	runner := behavior.NewRunner(registry, behavior.NewFramebuffer(8))

	if _, err := runner.Spawn(1, behavior.Params{}); err != nil {
		t.Fatalf("spawn failed: %v", err)
	}
	if _, err := runner.Spawn(2, behavior.Params{}); err != nil {
		t.Fatalf("spawn failed: %v", err)
	}

	runner.Step()

	want := []string{"first:tick", "first:render", "second:tick", "second:render"}
	if len(log) != len(want) {
		t.Fatalf("expected %d log entries, got %d: %v", len(want), len(log), log)
	}
	for i, entry := range want {
		if log[i] != entry {
			t.Errorf("log[%d] = %q, want %q", i, log[i], entry)
		}
	}
}

func TestRunnerTickAdvancesPerStep(t *testing.T) {
	registry := recorderRegistry(t, nil)
	runner := behavior.NewRunner(registry, behavior.NewFramebuffer(4))

	inst, err := runner.Spawn(1, behavior.Params{})
	if err != nil {
		t.Fatalf("spawn failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		runner.Step()
	}

	if runner.Tick() != 5 {
		t.Errorf("expected runner tick 5, got %d", runner.Tick())
	}

	rec := inst.Behavior.(*recordingBehavior)
	if rec.ticks != 5 || rec.renders != 5 {
		t.Errorf("expected 5 ticks and renders, got %d/%d", rec.ticks, rec.renders)
	}
	if rec.lastFrame.Tick != 4 {
		t.Errorf("expected last observed frame tick 4, got %d", rec.lastFrame.Tick)
	}
	if rec.lastFrame.DeltaTime != behavior.DefaultStep {
		t.Errorf("expected fixed delta %v, got %v", behavior.DefaultStep, rec.lastFrame.DeltaTime)
	}
	if rec.lastFrame.Pixels != 4 {
		t.Errorf("expected frame pixels 4, got %d", rec.lastFrame.Pixels)
	}
}

func TestRunnerSpawnUnknownBehavior(t *testing.T) {
	registry := recorderRegistry(t, nil)
	runner := behavior.NewRunner(registry, behavior.NewFramebuffer(4))

	if _, err := runner.Spawn(99, behavior.Params{}); err == nil {
		t.Fatal("expected error spawning unregistered behavior id")
	}
}

func TestRunnerSpawnClampsParams(t *testing.T) {
	registry := recorderRegistry(t, nil)
	runner := behavior.NewRunner(registry, behavior.NewFramebuffer(4))

	inst, err := runner.Spawn(1, behavior.Params{
		PF: [behavior.NumFloatParams]float64{5, -5, 0.5, 0},
		PI: [behavior.NumIntParams]int{500, -500, 100, 0},
	})
	if err != nil {
		t.Fatalf("spawn failed: %v", err)
	}

	got := inst.Params()
	if got.PF[0] != 1 || got.PF[1] != 0 || got.PF[2] != 0.5 {
		t.Errorf("float params not clamped: %v", got.PF)
	}
	if got.PI[0] != 255 || got.PI[1] != 0 || got.PI[2] != 100 {
		t.Errorf("int params not clamped: %v", got.PI)
	}
}

func TestRunnerRetire(t *testing.T) {
	var log []string
	registry := recorderRegistry(t, &log)
	runner := behavior.NewRunner(registry, behavior.NewFramebuffer(4))

	a, _ := runner.Spawn(1, behavior.Params{})
	b, _ := runner.Spawn(2, behavior.Params{})

	if !runner.Retire(a.Id) {
		t.Fatal("expected retire of live instance to succeed")
	}
	if runner.Retire(a.Id) {
		t.Fatal("expected second retire of same instance to fail")
	}

	runner.Step()

	live := runner.Instances()
	if len(live) != 1 || live[0].Id != b.Id {
		t.Fatalf("expected only second instance to remain, got %d instances", len(live))
	}
	for _, entry := range log {
		if entry == "first:tick" {
			t.Error("retired instance still ticked")
		}
	}
}

func TestRunnerSetParams(t *testing.T) {
	registry := recorderRegistry(t, nil)
	runner := behavior.NewRunner(registry, behavior.NewFramebuffer(4))

	inst, _ := runner.Spawn(1, behavior.Params{})

	params := behavior.Params{PF: [behavior.NumFloatParams]float64{9, 0.75, 0, 0}}
	if !runner.SetParams(inst.Id, params) {
		t.Fatal("expected SetParams on live instance to succeed")
	}

	runner.Step()

	rec := inst.Behavior.(*recordingBehavior)
	if rec.lastFrame.Params.PF[0] != 1 {
		t.Errorf("expected PF0 clamped to 1, got %v", rec.lastFrame.Params.PF[0])
	}
	if rec.lastFrame.Params.PF[1] != 0.75 {
		t.Errorf("expected PF1 = 0.75, got %v", rec.lastFrame.Params.PF[1])
	}

	if runner.SetParams(behavior.NewInstanceId(1, 12345), params) {
		t.Error("expected SetParams on unknown instance to fail")
	}
}

func TestRunnerStats(t *testing.T) {
	registry := recorderRegistry(t, nil)
	runner := behavior.NewRunner(registry, behavior.NewFramebuffer(4))

	runner.Spawn(1, behavior.Params{})
	runner.Spawn(2, behavior.Params{})

	for i := 0; i < 3; i++ {
		runner.Step()
	}

	stats := runner.Stats()
	if stats.Tick != 3 {
		t.Errorf("expected stats tick 3, got %d", stats.Tick)
	}
	if stats.InstanceCount != 2 {
		t.Fatalf("expected 2 instances in stats, got %d", stats.InstanceCount)
	}
	for _, inst := range stats.Instances {
		if inst.StepCount != 3 {
			t.Errorf("instance %q: expected 3 steps, got %d", inst.Key, inst.StepCount)
		}
		if inst.MinDuration > inst.MaxDuration {
			t.Errorf("instance %q: min duration exceeds max", inst.Key)
		}
	}
}

func TestRunnerRunStopsOnContextCancel(t *testing.T) {
	registry := recorderRegistry(t, nil)
	runner := behavior.NewRunner(registry, behavior.NewFramebuffer(4))
	runner.Spawn(1, behavior.Params{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		runner.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	if runner.Tick() == 0 {
		t.Error("expected at least one step to have run")
	}
}
