// Package through describes how a value is actually passed across the
// binding boundary, independent of how its Go type is declared.
//
// A through type is a tree: containers (Vec, HashMap, Array, Option,
// Result, Tuple, Union) hold further through types, and the leaves are
// either plain types or one of the Ref, Mut and Val wrappers.
package through

import (
	"reflect"
	"strconv"
	"strings"
)

// Type is a node of a through-type tree. The set of implementations is closed.
type Type interface {
	String() string
	isThrough()
}

// Plain is a leaf passed as whatever its own declaration says.
type Plain struct{ Type reflect.Type }

// Ref is a read-only borrow of a host value.
type Ref struct{ Type reflect.Type }

// Mut is an exclusive borrow of a host value.
type Mut struct{ Type reflect.Type }

// Val is an owned value.
type Val struct{ Type reflect.Type }

// Vec is a growable sequence.
type Vec struct{ Elem Type }

// HashMap is a keyed collection.
type HashMap struct{ Key, Value Type }

// Array is a fixed-size sequence.
type Array struct {
	Elem Type
	Size int
}

// Option is a value that may be absent.
type Option struct{ Elem Type }

// Result is a value that may instead be an error raised across the boundary.
type Result struct{ Elem Type }

// Tuple is an ordered, fixed group of values.
type Tuple struct{ Elems []Type }

// Union is one of several alternatives.
type Union struct{ Elems []Type }

func (Plain) isThrough()   {}
func (Ref) isThrough()     {}
func (Mut) isThrough()     {}
func (Val) isThrough()     {}
func (Vec) isThrough()     {}
func (HashMap) isThrough() {}
func (Array) isThrough()   {}
func (Option) isThrough()  {}
func (Result) isThrough()  {}
func (Tuple) isThrough()   {}
func (Union) isThrough()   {}

func typeName(t reflect.Type) string {
	if t == nil {
		return "()"
	}
	return t.String()
}

func (p Plain) String() string   { return typeName(p.Type) }
func (r Ref) String() string     { return "Ref<" + typeName(r.Type) + ">" }
func (m Mut) String() string     { return "Mut<" + typeName(m.Type) + ">" }
func (v Val) String() string     { return "Val<" + typeName(v.Type) + ">" }
func (v Vec) String() string     { return "Vec<" + v.Elem.String() + ">" }
func (m HashMap) String() string { return "HashMap<" + m.Key.String() + ", " + m.Value.String() + ">" }
func (a Array) String() string   { return "[" + a.Elem.String() + "; " + strconv.Itoa(a.Size) + "]" }
func (o Option) String() string  { return "Option<" + o.Elem.String() + ">" }
func (r Result) String() string  { return "Result<" + r.Elem.String() + ">" }
func (t Tuple) String() string   { return "(" + joinTypes(t.Elems, ", ") + ")" }
func (u Union) String() string   { return "Union<" + joinTypes(u.Elems, " | ") + ">" }

func joinTypes(elems []Type, sep string) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}
