package preview

import (
	"fmt"

	"github.com/plus3/strand/behavior"
)

// Control message types understood by ApplyControl.
const (
	ControlSpawn     = "spawn"
	ControlRetire    = "retire"
	ControlSetParams = "setParams"
)

// ApplyControl applies a client control message to the runner. Like every
// runner mutation it must run on the runner goroutine; feed messages from
// the OnControl callback through a queue drained between steps.
//
// Spawn selects the behavior by registry key and falls back to the
// definition's default params when the message carries none.
func ApplyControl(runner *behavior.Runner, registry *behavior.Registry, msg ControlMessage) error {
	switch msg.Type {
	case ControlSpawn:
		def, ok := registry.LookupKey(msg.Behavior)
		if !ok {
			return fmt.Errorf("preview: unknown behavior key %q", msg.Behavior)
		}
		params := def.Defaults
		if len(msg.PF) > 0 || len(msg.PI) > 0 {
			params = paramsFromMessage(msg)
		}
		if _, err := runner.Spawn(def.Id, params); err != nil {
			return err
		}

	case ControlRetire:
		if !runner.Retire(behavior.InstanceId(msg.Instance)) {
			return fmt.Errorf("preview: no live instance %d to retire", msg.Instance)
		}

	case ControlSetParams:
		if !runner.SetParams(behavior.InstanceId(msg.Instance), paramsFromMessage(msg)) {
			return fmt.Errorf("preview: no live instance %d to retune", msg.Instance)
		}

	default:
		return fmt.Errorf("preview: unknown control type %q", msg.Type)
	}
	return nil
}

func paramsFromMessage(msg ControlMessage) behavior.Params {
	var params behavior.Params
	for i := 0; i < behavior.NumFloatParams && i < len(msg.PF); i++ {
		params.PF[i] = msg.PF[i]
	}
	for i := 0; i < behavior.NumIntParams && i < len(msg.PI); i++ {
		params.PI[i] = msg.PI[i]
	}
	return params
}
