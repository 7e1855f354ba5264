// Package debugui provides Dear ImGui inspection panels for a behavior
// runner: execution statistics and live purpose parameter editing. Panels
// are immediate-mode; call their Render methods once per drawn frame from
// whatever loop owns the ImGui context.
package debugui

import "time"

// FrameTimer measures wall-clock delta between drawn frames for the stats
// panel's frame-time graph. Display only; it never feeds behavior logic.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	dt := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return dt
}
