package engine

import (
	"reflect"
	"unsafe"
)

// Resource gives a system typed access to one World resource. Declare it as a
// struct field of a System and the Scheduler binds it on registration, or
// create one directly with NewResource.
type Resource[T any] struct {
	world *World
	ptr   unsafe.Pointer
	epoch uint64
}

// NewResource returns an accessor bound to world. If the resource does not
// exist yet it is created from initial, or from the zero value.
func NewResource[T any](world *World, initial ...T) *Resource[T] {
	if !world.Has(reflect.TypeFor[T]()) {
		var value T
		if len(initial) > 0 {
			value = initial[0]
		}
		world.Insert(value)
	}

	r := &Resource[T]{}
	r.Init(world)
	return r
}

// Init binds the accessor to world. Called by Scheduler.Register.
func (r *Resource[T]) Init(world *World) {
	r.world = world
	r.refresh()
}

func (r *Resource[T]) refresh() {
	r.ptr = nil
	r.epoch = r.world.epoch
	if e := r.world.entry(reflect.TypeFor[T]()); e != nil {
		r.ptr = e.ptr
	}
}

// Get returns the resource, or nil if it is not in the world.
func (r *Resource[T]) Get() *T {
	if r.world == nil {
		return nil
	}
	if r.ptr == nil || r.epoch != r.world.epoch {
		r.refresh()
	}
	return (*T)(r.ptr)
}

// Exists reports whether the resource is currently in the world.
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}

// ReadResource fetches a resource without keeping an accessor around.
func ReadResource[T any](world *World) (*T, bool) {
	e := world.entry(reflect.TypeFor[T]())
	if e == nil {
		return nil, false
	}
	return (*T)(e.ptr), true
}
