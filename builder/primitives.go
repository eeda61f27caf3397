package builder

import (
	"reflect"

	"github.com/teranos/lad/binding"
	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/logger"
)

// primitiveTable maps the Go types scripts see as builtins to their kind.
// rune and byte are aliases of int32 and uint8; characters go through
// binding.Char.
var primitiveTable = map[reflect.Type]ladfile.PrimitiveKind{
	reflect.TypeFor[bool]():                ladfile.PrimitiveBool,
	reflect.TypeFor[int]():                 ladfile.PrimitiveInt,
	reflect.TypeFor[int8]():                ladfile.PrimitiveInt8,
	reflect.TypeFor[int16]():               ladfile.PrimitiveInt16,
	reflect.TypeFor[int32]():               ladfile.PrimitiveInt32,
	reflect.TypeFor[int64]():               ladfile.PrimitiveInt64,
	reflect.TypeFor[uint]():                ladfile.PrimitiveUint,
	reflect.TypeFor[uint8]():               ladfile.PrimitiveUint8,
	reflect.TypeFor[uint16]():              ladfile.PrimitiveUint16,
	reflect.TypeFor[uint32]():              ladfile.PrimitiveUint32,
	reflect.TypeFor[uint64]():              ladfile.PrimitiveUint64,
	reflect.TypeFor[uintptr]():             ladfile.PrimitiveUintptr,
	reflect.TypeFor[float32]():             ladfile.PrimitiveFloat32,
	reflect.TypeFor[float64]():             ladfile.PrimitiveFloat64,
	reflect.TypeFor[binding.Char]():        ladfile.PrimitiveChar,
	reflect.TypeFor[string]():              ladfile.PrimitiveString,
	reflect.TypeFor[binding.Path]():        ladfile.PrimitivePath,
	reflect.TypeFor[binding.Function]():    ladfile.PrimitiveDynamicFunction,
	reflect.TypeFor[binding.FunctionMut](): ladfile.PrimitiveFunctionMut,
	reflect.TypeFor[binding.Reference]():   ladfile.PrimitiveReflectReference,
}

var primitiveTypes = func() map[ladfile.PrimitiveKind]reflect.Type {
	m := make(map[ladfile.PrimitiveKind]reflect.Type, len(primitiveTable))
	for t, k := range primitiveTable {
		m[k] = t
	}
	return m
}()

var primitiveDocs = map[ladfile.PrimitiveKind]string{
	ladfile.PrimitiveBool:             "A boolean value.",
	ladfile.PrimitiveInt:              "A signed integer of the platform's word size.",
	ladfile.PrimitiveInt8:             "A signed 8-bit integer.",
	ladfile.PrimitiveInt16:            "A signed 16-bit integer.",
	ladfile.PrimitiveInt32:            "A signed 32-bit integer.",
	ladfile.PrimitiveInt64:            "A signed 64-bit integer.",
	ladfile.PrimitiveUint:             "An unsigned integer of the platform's word size.",
	ladfile.PrimitiveUint8:            "An unsigned 8-bit integer.",
	ladfile.PrimitiveUint16:           "An unsigned 16-bit integer.",
	ladfile.PrimitiveUint32:           "An unsigned 32-bit integer.",
	ladfile.PrimitiveUint64:           "An unsigned 64-bit integer.",
	ladfile.PrimitiveUintptr:          "An unsigned integer large enough to hold a pointer.",
	ladfile.PrimitiveFloat32:          "A 32-bit floating point number.",
	ladfile.PrimitiveFloat64:          "A 64-bit floating point number.",
	ladfile.PrimitiveChar:             "A single unicode character.",
	ladfile.PrimitiveString:           "A UTF-8 string.",
	ladfile.PrimitivePath:             "A filesystem path.",
	ladfile.PrimitiveDynamicFunction:  "A callable function handle.",
	ladfile.PrimitiveFunctionMut:      "A callable function handle that may mutate its captured state.",
	ladfile.PrimitiveReflectReference: "An opaque reference to a value owned by the host.",
}

// PrimitiveKindOf reports the primitive kind of t.
func PrimitiveKindOf(t reflect.Type) (ladfile.PrimitiveKind, bool) {
	if t == nil {
		return "", false
	}
	k, ok := primitiveTable[t]
	return k, ok
}

// AddPrimitive records t as a documented primitive. Types that are not
// primitives are ignored.
func (b *Builder) AddPrimitive(t reflect.Type, docs string) *Builder {
	kind, ok := PrimitiveKindOf(t)
	if !ok {
		b.log.Debugw("not a primitive, skipping", logger.FieldTypeID, typeString(t))
		return b
	}
	b.file.Primitives.Set(kind.TypeID(), ladfile.Primitive{Kind: kind, Documentation: docs})
	b.log.Debugw("added primitive", logger.FieldPrimitive, string(kind))
	return b
}

// AddDefaultPrimitives records every primitive kind with stock documentation.
func (b *Builder) AddDefaultPrimitives() *Builder {
	for _, kind := range ladfile.PrimitiveKinds() {
		b.AddPrimitive(primitiveTypes[kind], primitiveDocs[kind])
	}
	return b
}

func typeString(t reflect.Type) string {
	if t == nil {
		return string(ladfile.UnitTypeID)
	}
	return t.String()
}
