package through

import (
	"reflect"

	"github.com/teranos/lad/binding"
)

var errorType = reflect.TypeFor[error]()

// Of derives the through type of a Go type.
//
//	binding.Ref[T], binding.Mut[T], binding.Val[T] -> Ref, Mut, Val of T
//	[]T          -> Vec
//	[N]T         -> Array
//	map[K]V      -> HashMap
//	*T           -> Option
//	anything else (including nil) -> Plain
func Of(t reflect.Type) Type {
	if t == nil {
		return Plain{}
	}
	if w, ok := binding.AsWrapper(t); ok {
		switch w.WrapperKind() {
		case binding.WrapperRef:
			return Ref{Type: w.Inner()}
		case binding.WrapperMut:
			return Mut{Type: w.Inner()}
		default:
			return Val{Type: w.Inner()}
		}
	}

	switch t.Kind() {
	case reflect.Slice:
		return Vec{Elem: Of(t.Elem())}
	case reflect.Array:
		return Array{Elem: Of(t.Elem()), Size: t.Len()}
	case reflect.Map:
		return HashMap{Key: Of(t.Key()), Value: Of(t.Elem())}
	case reflect.Pointer:
		return Option{Elem: Of(t.Elem())}
	default:
		return Plain{Type: t}
	}
}

// OfResults derives the through type of a function's results.
//
// A trailing error result turns the rest into a Result. No results give
// the empty Tuple, one result gives that result's through type and several
// give a Tuple.
func OfResults(results []reflect.Type) Type {
	fallible := false
	if n := len(results); n > 0 && results[n-1] == errorType {
		fallible = true
		results = results[:n-1]
	}

	var inner Type
	switch len(results) {
	case 0:
		inner = Tuple{}
	case 1:
		inner = Of(results[0])
	default:
		elems := make([]Type, len(results))
		for i, r := range results {
			elems[i] = Of(r)
		}
		inner = Tuple{Elems: elems}
	}

	if fallible {
		return Result{Elem: inner}
	}
	return inner
}

// Walk calls fn on every node of the tree rooted at t, parents first.
func Walk(t Type, fn func(Type)) {
	if t == nil {
		return
	}
	fn(t)
	switch n := t.(type) {
	case Vec:
		Walk(n.Elem, fn)
	case HashMap:
		Walk(n.Key, fn)
		Walk(n.Value, fn)
	case Array:
		Walk(n.Elem, fn)
	case Option:
		Walk(n.Elem, fn)
	case Result:
		Walk(n.Elem, fn)
	case Tuple:
		for _, e := range n.Elems {
			Walk(e, fn)
		}
	case Union:
		for _, e := range n.Elems {
			Walk(e, fn)
		}
	}
}

// Leaf returns the Go type carried by a leaf node.
func Leaf(t Type) (reflect.Type, bool) {
	switch n := t.(type) {
	case Plain:
		return n.Type, n.Type != nil
	case Ref:
		return n.Type, true
	case Mut:
		return n.Type, true
	case Val:
		return n.Type, true
	default:
		return nil, false
	}
}
