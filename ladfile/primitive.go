package ladfile

// PrimitiveKind names a builtin scalar kind. Its string form doubles as its
// type id.
type PrimitiveKind string

const (
	PrimitiveBool             PrimitiveKind = "bool"
	PrimitiveInt              PrimitiveKind = "int"
	PrimitiveInt8             PrimitiveKind = "int8"
	PrimitiveInt16            PrimitiveKind = "int16"
	PrimitiveInt32            PrimitiveKind = "int32"
	PrimitiveInt64            PrimitiveKind = "int64"
	PrimitiveUint             PrimitiveKind = "uint"
	PrimitiveUint8            PrimitiveKind = "uint8"
	PrimitiveUint16           PrimitiveKind = "uint16"
	PrimitiveUint32           PrimitiveKind = "uint32"
	PrimitiveUint64           PrimitiveKind = "uint64"
	PrimitiveUintptr          PrimitiveKind = "uintptr"
	PrimitiveFloat32          PrimitiveKind = "float32"
	PrimitiveFloat64          PrimitiveKind = "float64"
	PrimitiveChar             PrimitiveKind = "char"
	PrimitiveString           PrimitiveKind = "string"
	PrimitivePath             PrimitiveKind = "path"
	PrimitiveDynamicFunction  PrimitiveKind = "dynamic_function"
	PrimitiveFunctionMut      PrimitiveKind = "function_mut"
	PrimitiveReflectReference PrimitiveKind = "reflect_reference"
)

// PrimitiveKinds lists every primitive kind in declaration order.
func PrimitiveKinds() []PrimitiveKind {
	return []PrimitiveKind{
		PrimitiveBool,
		PrimitiveInt, PrimitiveInt8, PrimitiveInt16, PrimitiveInt32, PrimitiveInt64,
		PrimitiveUint, PrimitiveUint8, PrimitiveUint16, PrimitiveUint32, PrimitiveUint64, PrimitiveUintptr,
		PrimitiveFloat32, PrimitiveFloat64,
		PrimitiveChar, PrimitiveString, PrimitivePath,
		PrimitiveDynamicFunction, PrimitiveFunctionMut, PrimitiveReflectReference,
	}
}

// TypeID returns the fixed id of the kind.
func (k PrimitiveKind) TypeID() TypeID { return TypeID(k) }

// Primitive is a documented primitive kind.
type Primitive struct {
	Kind          PrimitiveKind `json:"kind"`
	Documentation string        `json:"documentation,omitempty"`
}
