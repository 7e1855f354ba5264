package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/strand/behavior"
)

// StatsPanel renders a window with runner execution statistics and a rolling
// frame-time graph.
type StatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsPanel(historyFrames int) *StatsPanel {
	return &StatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (sp *StatsPanel) Render(runner *behavior.Runner, deltaTime float32) {
	if !imgui.BeginV("Runner Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sp.frameHistory[sp.frameIndex] = deltaTime * 1000.0
	sp.frameIndex = (sp.frameIndex + 1) % sp.historyFrames

	stats := runner.Stats()

	imgui.Text(fmt.Sprintf("Tick: %d", stats.Tick))
	imgui.Text(fmt.Sprintf("Live Instances: %d", stats.InstanceCount))
	imgui.Text(fmt.Sprintf("Strip Pixels: %d", runner.Framebuffer().Len()))

	var avgFrameTime float32
	for _, ft := range sp.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(sp.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &sp.frameHistory[0], int32(len(sp.frameHistory)))

	if imgui.TreeNodeStr("Instance Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("InstanceStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Instance")
			imgui.TableSetupColumn("Behavior")
			imgui.TableSetupColumn("Steps")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, inst := range stats.Instances {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", uint64(inst.Id)))
				imgui.TableNextColumn()
				imgui.Text(inst.Key)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", inst.StepCount))
				imgui.TableNextColumn()
				imgui.Text(inst.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(inst.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
