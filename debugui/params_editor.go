package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/strand/behavior"
)

// ParamsEditor renders a window with one slider block per live instance for
// editing purpose parameters. Edits apply through Runner.SetParams, so they
// must run on the runner goroutine (which is the usual arrangement when the
// ImGui frame and the runner share the game loop).
type ParamsEditor struct{}

func NewParamsEditor() *ParamsEditor {
	return &ParamsEditor{}
}

func (pe *ParamsEditor) Render(runner *behavior.Runner) {
	if !imgui.BeginV("Purpose Params", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, inst := range runner.Instances() {
		label := fmt.Sprintf("%s #%d", inst.Key(), inst.Id.Index())
		if !imgui.TreeNodeStr(label) {
			continue
		}

		params := inst.Params()
		changed := false

		for i := 0; i < behavior.NumFloatParams; i++ {
			v := float32(params.PF[i])
			if imgui.SliderFloat(fmt.Sprintf("PF%d##%d", i, uint64(inst.Id)), &v,
				behavior.MinFloatParam, behavior.MaxFloatParam) {
				params.PF[i] = float64(v)
				changed = true
			}
		}
		for i := 0; i < behavior.NumIntParams; i++ {
			v := int32(params.PI[i])
			if imgui.SliderInt(fmt.Sprintf("PI%d##%d", i, uint64(inst.Id)), &v,
				behavior.MinIntParam, behavior.MaxIntParam) {
				params.PI[i] = int(v)
				changed = true
			}
		}

		if changed {
			runner.SetParams(inst.Id, params)
		}

		imgui.TreePop()
	}

	imgui.End()
}
