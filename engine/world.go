package engine

import (
	"reflect"
	"slices"
	"unsafe"

	"github.com/kamstrup/intmap"
)

type resourceEntry struct {
	typ   reflect.Type
	value reflect.Value
	ptr   unsafe.Pointer
}

// World holds the shared state of a running program: at most one value per
// resource type, addressed by type. Systems reach it through Resource fields
// or UpdateFrame.World.
type World struct {
	resources *intmap.Map[int, *resourceEntry]
	types     []reflect.Type
	// epoch changes whenever a resource is removed, which invalidates the
	// pointers cached by Resource.
	epoch uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		resources: intmap.New[int, *resourceEntry](16),
	}
}

func resourceType(value any) reflect.Type {
	t := reflect.TypeOf(value)
	if t == nil {
		panic("engine: resource must not be nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.Interface:
		panic("engine: resource type " + t.String() + " must be a value type")
	}
	return t
}

func (w *World) entry(t reflect.Type) *resourceEntry {
	e, ok := w.resources.Get(typeId(t))
	if !ok {
		return nil
	}
	return e
}

// Insert stores a copy of value, dereferencing pointers. If a resource of the
// same type already exists it is overwritten in place, so pointers obtained
// earlier keep pointing at the current value.
func (w *World) Insert(value any) {
	t := resourceType(value)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if e := w.entry(t); e != nil {
		e.value.Set(v)
		return
	}

	holder := reflect.New(t)
	holder.Elem().Set(v)
	w.resources.Put(typeId(t), &resourceEntry{
		typ:   t,
		value: holder.Elem(),
		ptr:   holder.UnsafePointer(),
	})
	w.types = append(w.types, t)
}

// Remove deletes the resource of type t and reports whether it existed.
func (w *World) Remove(t reflect.Type) bool {
	if w.entry(t) == nil {
		return false
	}
	w.resources.Del(typeId(t))
	w.types = slices.DeleteFunc(w.types, func(other reflect.Type) bool { return other == t })
	w.epoch++
	return true
}

// Has reports whether a resource of type t exists.
func (w *World) Has(t reflect.Type) bool {
	return w.entry(t) != nil
}

// Read points *dst at the stored resource. dst must be a pointer to a
// pointer, e.g. var cfg *Config; world.Read(&cfg). It returns false and
// leaves dst untouched when the resource does not exist.
func (w *World) Read(dst any) bool {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("engine: Read needs a pointer to a pointer")
	}
	t := v.Elem().Type().Elem()
	e := w.entry(t)
	if e == nil {
		return false
	}
	v.Elem().Set(reflect.NewAt(t, e.ptr))
	return true
}

// Len returns the number of resources.
func (w *World) Len() int {
	return len(w.types)
}

// WorldStats summarises the contents of a World.
type WorldStats struct {
	ResourceCount int
	ResourceTypes []string
}

// Stats lists the stored resource types in name order.
func (w *World) Stats() WorldStats {
	names := make([]string, 0, len(w.types))
	for _, t := range w.types {
		names = append(names, t.String())
	}
	slices.Sort(names)
	return WorldStats{
		ResourceCount: len(names),
		ResourceTypes: names,
	}
}
