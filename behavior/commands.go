package behavior

// Commands provides a buffer for deferred structural operations that are
// executed at the end of a step. This keeps the instance set stable while
// behaviors are mid-tick: a behavior may queue spawns and retires without
// perturbing the iteration order of the step that queued them.
type Commands struct {
	spawns  []spawnCommand
	retires []InstanceId
	params  []setParamsCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	id     BehaviorId
	params Params
}

type setParamsCommand struct {
	instance InstanceId
	params   Params
}

// Spawn queues creation of a new instance of the given behavior.
func (c *Commands) Spawn(id BehaviorId, params Params) {
	c.spawns = append(c.spawns, spawnCommand{id: id, params: params})
}

// Retire queues removal of an instance.
func (c *Commands) Retire(instance InstanceId) {
	c.retires = append(c.retires, instance)
}

// SetParams queues a purpose parameter update for an instance.
func (c *Commands) SetParams(instance InstanceId, params Params) {
	c.params = append(c.params, setParamsCommand{instance: instance, params: params})
}

// Defer queues an arbitrary function execution.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// flush applies all queued commands to the runner, resetting the buffer.
// Retires run first so a retire-then-set-params sequence on the same
// instance in one step resolves to the retire.
func (c *Commands) flush(r *Runner) {
	retired := make(map[InstanceId]bool)

	for _, id := range c.retires {
		r.Retire(id)
		retired[id] = true
	}

	for _, cmd := range c.params {
		if !retired[cmd.instance] {
			r.SetParams(cmd.instance, cmd.params)
		}
	}

	for _, cmd := range c.spawns {
		// Unknown behavior ids queued from inside a tick are dropped.
		r.Spawn(cmd.id, cmd.params)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.retires = c.retires[:0]
	c.params = c.params[:0]
	c.defers = c.defers[:0]
}
