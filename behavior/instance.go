package behavior

// BehaviorId identifies a registered behavior definition. Id assignment
// policy is left to the embedding application; the shipped effects package
// claims a small stable range.
type BehaviorId uint32

// InstanceId encodes both the behavior id (upper 32 bits) and the instance
// index (lower 32 bits).
type InstanceId uint64

// NewInstanceId creates an InstanceId from a behavior id and instance index.
func NewInstanceId(behavior BehaviorId, index uint32) InstanceId {
	return InstanceId(uint64(behavior)<<32 | uint64(index))
}

// BehaviorId extracts the behavior id from the instance id.
func (i InstanceId) BehaviorId() BehaviorId {
	return BehaviorId(i >> 32)
}

// Index extracts the instance index from the instance id.
func (i InstanceId) Index() uint32 {
	return uint32(i & 0xFFFFFFFF)
}

// Instance is a live behavior unit owned by a Runner: the behavior state
// block plus the purpose parameters bound to it. State is only ever mutated
// by the unit's own Init and Tick.
type Instance struct {
	Id       InstanceId
	Behavior Behavior

	key    string
	params Params
}

// Key returns the registry key of the definition this instance was spawned
// from.
func (inst *Instance) Key() string {
	return inst.key
}

// Params returns the purpose parameters currently bound to the instance.
func (inst *Instance) Params() Params {
	return inst.params
}
