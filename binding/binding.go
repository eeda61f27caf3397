// Package binding holds the types that only exist at the scripting boundary:
// handle primitives such as Reference and Function, and the wrappers that
// say how a value crosses the boundary (borrowed, mutably borrowed, owned).
package binding

import "reflect"

// Char is a single unicode scalar value. Go spells rune as int32, so the
// binding layer needs its own named type to tell characters from integers.
type Char rune

// Path is a filesystem path.
type Path string

// Reference is an opaque handle to a value owned by the host.
type Reference struct {
	id uint64
}

// NewReference returns a handle for the host value with the given id.
func NewReference(id uint64) Reference { return Reference{id: id} }

// ID returns the host id behind the handle.
func (r Reference) ID() uint64 { return r.id }

// Function is a callable handle that may be invoked any number of times.
type Function struct {
	Name string
}

// FunctionMut is a callable handle that may mutate captured state.
type FunctionMut struct {
	Name string
}

// WrapperKind says how a wrapped value crosses the boundary.
type WrapperKind int

const (
	// WrapperRef is a read-only borrow.
	WrapperRef WrapperKind = iota
	// WrapperMut is an exclusive borrow.
	WrapperMut
	// WrapperVal is an owned value.
	WrapperVal
)

func (k WrapperKind) String() string {
	switch k {
	case WrapperRef:
		return "Ref"
	case WrapperMut:
		return "Mut"
	case WrapperVal:
		return "Val"
	default:
		return "Unknown"
	}
}

// Wrapper is implemented by Ref, Mut and Val for every T.
type Wrapper interface {
	WrapperKind() WrapperKind
	Inner() reflect.Type
}

// Ref is a read-only borrow of a host value of type T.
type Ref[T any] struct {
	Reference Reference
}

func (Ref[T]) WrapperKind() WrapperKind { return WrapperRef }
func (Ref[T]) Inner() reflect.Type      { return reflect.TypeFor[T]() }

// Mut is an exclusive borrow of a host value of type T.
type Mut[T any] struct {
	Reference Reference
}

func (Mut[T]) WrapperKind() WrapperKind { return WrapperMut }
func (Mut[T]) Inner() reflect.Type      { return reflect.TypeFor[T]() }

// Val is an owned value of type T moved across the boundary.
type Val[T any] struct {
	Value T
}

func (Val[T]) WrapperKind() WrapperKind { return WrapperVal }
func (Val[T]) Inner() reflect.Type      { return reflect.TypeFor[T]() }

var wrapperType = reflect.TypeFor[Wrapper]()

// AsWrapper reports whether t is one of Ref, Mut or Val and, if so, returns
// its zero value as a Wrapper.
func AsWrapper(t reflect.Type) (Wrapper, bool) {
	if t == nil || t.Kind() != reflect.Struct || !t.Implements(wrapperType) {
		return nil, false
	}
	w, ok := reflect.Zero(t).Interface().(Wrapper)
	return w, ok
}
