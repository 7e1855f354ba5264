package behavior

import (
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
)

// Factory creates a fresh, uninitialized behavior state block. The Runner
// calls Init on the result before its first tick.
type Factory func() Behavior

// Definition describes one registered behavior: its numeric id, a stable
// string key, a human-readable title, and the factory that builds instances.
type Definition struct {
	Id    BehaviorId
	Key   string
	Title string
	New   Factory

	// Defaults is the recommended purpose parameter binding for fresh
	// instances. Callers may pass it to Runner.Spawn verbatim or tweak it.
	Defaults Params
}

// Registry maps behavior ids to definitions. Each Runner is built over one
// Registry; multiple registries can coexist. Registration order is preserved
// for listing and iteration.
type Registry struct {
	defs  *intmap.Map[BehaviorId, *Definition]
	keys  map[string]BehaviorId
	order []BehaviorId
}

// NewRegistry creates an empty behavior registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: intmap.New[BehaviorId, *Definition](16),
		keys: make(map[string]BehaviorId),
	}
}

// Register adds a definition to the registry. It returns an error if the id
// or key is already taken, the key is empty, or the factory is nil.
func (r *Registry) Register(def Definition) error {
	if def.Key == "" {
		return fmt.Errorf("behavior %d: empty key", def.Id)
	}
	if def.New == nil {
		return fmt.Errorf("behavior %q: nil factory", def.Key)
	}
	if _, ok := r.defs.Get(def.Id); ok {
		return fmt.Errorf("duplicate behavior id %d (key %q)", def.Id, def.Key)
	}
	if prev, ok := r.keys[def.Key]; ok {
		return fmt.Errorf("duplicate behavior key %q (already id %d)", def.Key, prev)
	}
	if def.Title == "" {
		def.Title = def.Key
	}
	stored := def
	r.defs.Put(def.Id, &stored)
	r.keys[def.Key] = def.Id
	r.order = append(r.order, def.Id)
	return nil
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id BehaviorId) (*Definition, bool) {
	return r.defs.Get(id)
}

// LookupKey returns the definition registered under the string key.
func (r *Registry) LookupKey(key string) (*Definition, bool) {
	id, ok := r.keys[key]
	if !ok {
		return nil, false
	}
	return r.defs.Get(id)
}

// Len returns the number of registered behaviors.
func (r *Registry) Len() int {
	return r.defs.Len()
}

// Ids returns all registered behavior ids in registration order.
func (r *Registry) Ids() []BehaviorId {
	out := make([]BehaviorId, len(r.order))
	copy(out, r.order)
	return out
}

// Iter iterates definitions in registration order.
func (r *Registry) Iter() iter.Seq[*Definition] {
	return func(yield func(*Definition) bool) {
		for _, id := range r.order {
			def, ok := r.defs.Get(id)
			if !ok {
				continue
			}
			if !yield(def) {
				return
			}
		}
	}
}
