package debugui

import (
	"testing"
	"time"
)

func TestFrameTimerDeltaAdvances(t *testing.T) {
	timer := NewFrameTimer()

	time.Sleep(5 * time.Millisecond)
	first := timer.GetDeltaTime()
	if first <= 0 {
		t.Errorf("expected positive delta, got %v", first)
	}

	second := timer.GetDeltaTime()
	if second < 0 {
		t.Errorf("expected non-negative delta, got %v", second)
	}
}

func TestNewStatsPanelHistory(t *testing.T) {
	panel := NewStatsPanel(64)
	if len(panel.frameHistory) != 64 {
		t.Errorf("expected 64 history slots, got %d", len(panel.frameHistory))
	}
	if panel.frameIndex != 0 {
		t.Errorf("expected history to start at slot 0, got %d", panel.frameIndex)
	}
}
