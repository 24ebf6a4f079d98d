package entity

import (
	"iter"
	"slices"

	"github.com/vovakirdan/balloon-climber/internal/core"
)

// Registry owns all live non-player entities and hands out their handles.
// Iteration follows insertion order. The entity set must not be modified
// from inside ForEach or All; collect handles and use RemoveIf afterwards.
type Registry struct {
	last     Handle
	order    []Handle
	entities map[Handle]Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: make(map[Handle]Entity)}
}

// Add stores e and returns its newly assigned handle.
func (r *Registry) Add(e Entity) Handle {
	r.last++
	h := r.last
	e.setHandle(h)
	r.entities[h] = e
	r.order = append(r.order, h)
	return h
}

// Remove deletes the entity with handle h and reports whether it was present.
func (r *Registry) Remove(h Handle) bool {
	if _, ok := r.entities[h]; !ok {
		return false
	}
	delete(r.entities, h)
	if i := slices.Index(r.order, h); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// RemoveIf deletes every entity matching pred and returns how many went.
func (r *Registry) RemoveIf(pred func(Entity) bool) int {
	removed := 0
	r.order = slices.DeleteFunc(r.order, func(h Handle) bool {
		if pred(r.entities[h]) {
			delete(r.entities, h)
			removed++
			return true
		}
		return false
	})
	return removed
}

// Get looks up an entity by handle.
func (r *Registry) Get(h Handle) (Entity, bool) {
	e, ok := r.entities[h]
	return e, ok
}

// Balloon looks up a balloon by handle. It returns nil when the handle is
// unknown, removed or names a different kind.
func (r *Registry) Balloon(h Handle) *Balloon {
	b, _ := r.entities[h].(*Balloon)
	return b
}

// ForEach calls fn for every entity in insertion order.
func (r *Registry) ForEach(fn func(Entity)) {
	for _, h := range r.order {
		fn(r.entities[h])
	}
}

// All iterates over handles and entities in insertion order.
func (r *Registry) All() iter.Seq2[Handle, Entity] {
	return func(yield func(Handle, Entity) bool) {
		for _, h := range r.order {
			if !yield(h, r.entities[h]) {
				return
			}
		}
	}
}

// FindOverlapping returns every entity whose bounds overlap b, in insertion
// order, skipping the entity with handle self. It is a linear scan.
func (r *Registry) FindOverlapping(b core.Bounded, self Handle) []Entity {
	var hits []Entity
	for _, h := range r.order {
		if h == self {
			continue
		}
		if e := r.entities[h]; core.Overlaps(b, e) {
			hits = append(hits, e)
		}
	}
	return hits
}

// StepAll steps every entity once, in insertion order.
func (r *Registry) StepAll(hooks Hooks) {
	for _, h := range r.order {
		r.entities[h].Step(hooks)
	}
}

// ShiftAll moves every entity vertically by dy.
func (r *Registry) ShiftAll(dy float64) {
	for _, h := range r.order {
		r.entities[h].Shift(dy)
	}
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.order)
}

// Clear removes every entity. Handles keep counting from where they were.
func (r *Registry) Clear() {
	clear(r.entities)
	r.order = r.order[:0]
}
