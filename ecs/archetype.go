package ecs

import (
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype represents a unique combination of component types
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage

	// generations holds the current generation of every slot that has been
	// freed at least once. Slots missing from the map are at generation 0.
	generations *intmap.Map[uint32, uint16]
	freeSlots   []uint32
	nextIndex   uint32
	live        int
}

// NewArchetype creates a new archetype with the given ID and sorted component types
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:          id,
		types:       types,
		storages:    make([]iComponentStorage, len(types)),
		generations: intmap.New[uint32, uint16](64),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

func (a *Archetype) generation(index uint32) uint16 {
	gen, _ := a.generations.Get(index)
	return gen
}

// Spawn stores the components in a free slot and returns the new entity's ID
func (a *Archetype) Spawn(components []any) EntityId {
	var index uint32
	if n := len(a.freeSlots); n > 0 {
		index = a.freeSlots[n-1]
		a.freeSlots = a.freeSlots[:n-1]
	} else {
		if a.nextIndex >= MaxSlots {
			panic("archetype slot capacity exhausted")
		}
		index = a.nextIndex
		a.nextIndex++
	}

	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}
		if idx := a.storageIndex(compType); idx >= 0 {
			a.storages[idx].Set(int(index), comp)
		}
	}

	a.live++
	return NewEntityId(a.id, a.generation(index), index)
}

// Alive reports whether id refers to an entity currently stored in this archetype
func (a *Archetype) Alive(id EntityId) bool {
	if id.ArchetypeId() != a.id || len(a.storages) == 0 {
		return false
	}
	if a.generation(id.Index()) != id.Generation() {
		return false
	}
	return a.storages[0].Get(int(id.Index())) != nil
}

// GetComponent returns the component of the given type for the entity, or nil
// when the entity is stale or the archetype lacks the component
func (a *Archetype) GetComponent(id EntityId, compType reflect.Type) any {
	if !a.Alive(id) {
		return nil
	}
	idx := a.storageIndex(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(id.Index()))
}

// Delete clears the entity's components and retires its slot generation.
// Returns false if the entity was already gone.
func (a *Archetype) Delete(id EntityId) bool {
	if !a.Alive(id) {
		return false
	}

	index := id.Index()
	for _, storage := range a.storages {
		storage.Delete(int(index))
	}
	a.generations.Put(index, (id.Generation()+1)&generationMask)
	a.freeSlots = append(a.freeSlots, index)
	a.live--
	return true
}

func (a *Archetype) storageIndex(compType reflect.Type) int {
	return slices.Index(a.types, compType)
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities in this archetype
func (a *Archetype) Len() int {
	return a.live
}

// Iter returns an iterator over all live EntityIds in this archetype
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}

		for index := range a.storages[0].Iter() {
			entityId := NewEntityId(a.id, a.generation(uint32(index)), uint32(index))
			if !yield(entityId) {
				return
			}
		}
	}
}
