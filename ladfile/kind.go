package ladfile

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/teranos/lad/errors"
)

// TypeKind describes the shape of a value as it crosses the binding
// boundary. The set of implementations is closed.
type TypeKind interface {
	String() string
	json.Marshaler
	isTypeKind()
}

// KindPrimitive is a builtin scalar.
type KindPrimitive struct{ Kind PrimitiveKind }

// KindRef is a read-only borrow of a host value.
type KindRef struct{ Type TypeID }

// KindMut is an exclusive borrow of a host value.
type KindMut struct{ Type TypeID }

// KindVal is an owned host value.
type KindVal struct{ Type TypeID }

// KindVec is a growable sequence.
type KindVec struct{ Elem TypeKind }

// KindHashMap is a keyed collection.
type KindHashMap struct{ Key, Value TypeKind }

// KindArray is a fixed-size sequence.
type KindArray struct {
	Elem TypeKind
	Size int
}

// KindOption is a value that may be absent.
type KindOption struct{ Elem TypeKind }

// KindInteropResult is a value that may instead be a script error.
type KindInteropResult struct{ Elem TypeKind }

// KindTuple is a fixed group of values.
type KindTuple struct{ Elems []TypeKind }

// KindUnion is one of several alternatives.
type KindUnion struct{ Elems []TypeKind }

// KindUnknown is a type nothing more is known about.
type KindUnknown struct{ Type TypeID }

func (KindPrimitive) isTypeKind()     {}
func (KindRef) isTypeKind()           {}
func (KindMut) isTypeKind()           {}
func (KindVal) isTypeKind()           {}
func (KindVec) isTypeKind()           {}
func (KindHashMap) isTypeKind()       {}
func (KindArray) isTypeKind()         {}
func (KindOption) isTypeKind()        {}
func (KindInteropResult) isTypeKind() {}
func (KindTuple) isTypeKind()         {}
func (KindUnion) isTypeKind()         {}
func (KindUnknown) isTypeKind()       {}

func (k KindPrimitive) String() string { return string(k.Kind) }
func (k KindRef) String() string       { return "Ref<" + string(k.Type) + ">" }
func (k KindMut) String() string       { return "Mut<" + string(k.Type) + ">" }
func (k KindVal) String() string       { return "Val<" + string(k.Type) + ">" }
func (k KindVec) String() string       { return "Vec<" + kindString(k.Elem) + ">" }
func (k KindHashMap) String() string {
	return "HashMap<" + kindString(k.Key) + ", " + kindString(k.Value) + ">"
}
func (k KindArray) String() string {
	return "[" + kindString(k.Elem) + "; " + strconv.Itoa(k.Size) + "]"
}
func (k KindOption) String() string        { return "Option<" + kindString(k.Elem) + ">" }
func (k KindInteropResult) String() string { return "Result<" + kindString(k.Elem) + ">" }
func (k KindTuple) String() string         { return "(" + joinKinds(k.Elems, ", ") + ")" }
func (k KindUnion) String() string         { return "Union<" + joinKinds(k.Elems, " | ") + ">" }
func (k KindUnknown) String() string       { return "?" + string(k.Type) }

func kindString(k TypeKind) string {
	if k == nil {
		return string(UnitTypeID)
	}
	return k.String()
}

func joinKinds(kinds []TypeKind, sep string) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = kindString(k)
	}
	return strings.Join(parts, sep)
}

// Wire form: every kind is an object with a single key naming the variant.

func tagged(tag string, body any) ([]byte, error) {
	return json.Marshal(map[string]any{tag: body})
}

func (k KindPrimitive) MarshalJSON() ([]byte, error)     { return tagged("Primitive", k.Kind) }
func (k KindRef) MarshalJSON() ([]byte, error)           { return tagged("Ref", k.Type) }
func (k KindMut) MarshalJSON() ([]byte, error)           { return tagged("Mut", k.Type) }
func (k KindVal) MarshalJSON() ([]byte, error)           { return tagged("Val", k.Type) }
func (k KindVec) MarshalJSON() ([]byte, error)           { return tagged("Vec", k.Elem) }
func (k KindHashMap) MarshalJSON() ([]byte, error)       { return tagged("HashMap", []TypeKind{k.Key, k.Value}) }
func (k KindArray) MarshalJSON() ([]byte, error)         { return tagged("Array", []any{k.Elem, k.Size}) }
func (k KindOption) MarshalJSON() ([]byte, error)        { return tagged("Option", k.Elem) }
func (k KindInteropResult) MarshalJSON() ([]byte, error) { return tagged("InteropResult", k.Elem) }
func (k KindTuple) MarshalJSON() ([]byte, error)         { return tagged("Tuple", nonNil(k.Elems)) }
func (k KindUnion) MarshalJSON() ([]byte, error)         { return tagged("Union", nonNil(k.Elems)) }
func (k KindUnknown) MarshalJSON() ([]byte, error)       { return tagged("Unknown", k.Type) }

func nonNil(kinds []TypeKind) []TypeKind {
	if kinds == nil {
		return []TypeKind{}
	}
	return kinds
}

// UnmarshalKind decodes the wire form of a TypeKind. JSON null decodes to nil.
func UnmarshalKind(data []byte) (TypeKind, error) {
	if isNull(data) {
		return nil, nil
	}

	tag, body, err := singleKey(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid type kind")
	}

	switch tag {
	case "Primitive":
		var k PrimitiveKind
		if err := json.Unmarshal(body, &k); err != nil {
			return nil, errors.Wrap(err, "invalid primitive kind")
		}
		return KindPrimitive{Kind: k}, nil

	case "Ref", "Mut", "Val", "Unknown":
		var id TypeID
		if err := json.Unmarshal(body, &id); err != nil {
			return nil, errors.Wrapf(err, "invalid %s type id", tag)
		}
		switch tag {
		case "Ref":
			return KindRef{Type: id}, nil
		case "Mut":
			return KindMut{Type: id}, nil
		case "Val":
			return KindVal{Type: id}, nil
		default:
			return KindUnknown{Type: id}, nil
		}

	case "Vec", "Option", "InteropResult":
		elem, err := UnmarshalKind(body)
		if err != nil {
			return nil, err
		}
		switch tag {
		case "Vec":
			return KindVec{Elem: elem}, nil
		case "Option":
			return KindOption{Elem: elem}, nil
		default:
			return KindInteropResult{Elem: elem}, nil
		}

	case "HashMap":
		elems, err := unmarshalKinds(body)
		if err != nil {
			return nil, err
		}
		if len(elems) != 2 {
			return nil, errors.Newf("HashMap needs a key and a value kind, got %d", len(elems))
		}
		return KindHashMap{Key: elems[0], Value: elems[1]}, nil

	case "Array":
		var pair []json.RawMessage
		if err := json.Unmarshal(body, &pair); err != nil || len(pair) != 2 {
			return nil, errors.New("Array needs an element kind and a size")
		}
		elem, err := UnmarshalKind(pair[0])
		if err != nil {
			return nil, err
		}
		var size int
		if err := json.Unmarshal(pair[1], &size); err != nil {
			return nil, errors.Wrap(err, "invalid Array size")
		}
		return KindArray{Elem: elem, Size: size}, nil

	case "Tuple", "Union":
		elems, err := unmarshalKinds(body)
		if err != nil {
			return nil, err
		}
		if tag == "Tuple" {
			return KindTuple{Elems: elems}, nil
		}
		return KindUnion{Elems: elems}, nil
	}

	return nil, errors.Newf("unknown type kind %q", tag)
}

func unmarshalKinds(data []byte) ([]TypeKind, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, errors.Wrap(err, "expected a list of type kinds")
	}
	kinds := make([]TypeKind, len(raws))
	for i, raw := range raws {
		k, err := UnmarshalKind(raw)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	return kinds, nil
}

// singleKey splits an externally tagged object into its tag and body.
func singleKey(data []byte) (string, json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, err
	}
	if len(obj) != 1 {
		return "", nil, errors.Newf("expected exactly one tag, got %d", len(obj))
	}
	for tag, body := range obj {
		return tag, body, nil
	}
	return "", nil, nil
}

func isNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
