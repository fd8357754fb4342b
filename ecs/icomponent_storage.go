package ecs

import "iter"

// iComponentStorage is an interface for a type-erased component storage.
// Slot allocation is owned by the Archetype; storages only hold values.
type iComponentStorage interface {
	Set(index int, item any) bool
	Delete(index int)
	Get(index int) any
	Iter() iter.Seq[int]
}
