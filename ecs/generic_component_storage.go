package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent worlds to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// Registered reports whether the component type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const genericBlockSize = 64

type block[T any] struct {
	values [genericBlockSize]T
	filled [genericBlockSize]bool
}

// genericComponentStorage stores components of type T in fixed-size blocks.
// Blocks are allocated individually so pointers returned by Get stay valid
// while the storage grows.
type genericComponentStorage[T any] struct {
	blocks []*block[T]
	high   int
}

func (cs *genericComponentStorage[T]) locate(index int) (*block[T], int) {
	if index < 0 {
		return nil, 0
	}
	blockIdx := index / genericBlockSize
	if blockIdx >= len(cs.blocks) {
		return nil, 0
	}
	return cs.blocks[blockIdx], index % genericBlockSize
}

// Set stores a component at the given slot, growing the storage as needed.
// Returns false if item is not a T or *T.
func (cs *genericComponentStorage[T]) Set(index int, item any) bool {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return false
	}

	for index/genericBlockSize >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, &block[T]{})
	}

	b, slot := cs.locate(index)
	b.values[slot] = value
	b.filled[slot] = true
	if index >= cs.high {
		cs.high = index + 1
	}
	return true
}

// Get returns a pointer to the component at the given index, or nil.
func (cs *genericComponentStorage[T]) Get(index int) any {
	b, slot := cs.locate(index)
	if b == nil || !b.filled[slot] {
		return nil
	}
	return &b.values[slot]
}

// Delete marks a component slot as empty and zeroes its value.
func (cs *genericComponentStorage[T]) Delete(index int) {
	b, slot := cs.locate(index)
	if b == nil || !b.filled[slot] {
		return
	}
	var zero T
	b.values[slot] = zero
	b.filled[slot] = false
}

// Iter yields the indices of filled slots in ascending order.
func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.high; i++ {
			b, slot := cs.locate(i)
			if b.filled[slot] && !yield(i) {
				return
			}
		}
	}
}
