package registry

import (
	"reflect"
	"strings"
)

// Shape is the structural category of a registered type.
type Shape int

const (
	ShapeOpaque      Shape = iota // no visible structure
	ShapeStruct                   // named fields
	ShapeTupleStruct              // positional fields
	ShapeEnum                     // one of several variants
	ShapeList                     // []T
	ShapeArray                    // [N]T
	ShapeMap                      // map[K]V
	ShapeOption                   // *T
)

func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeTupleStruct:
		return "tuple struct"
	case ShapeEnum:
		return "enum"
	case ShapeList:
		return "list"
	case ShapeArray:
		return "array"
	case ShapeMap:
		return "map"
	case ShapeOption:
		return "option"
	default:
		return "opaque"
	}
}

// VariantKind distinguishes the three kinds of enum variant.
type VariantKind int

const (
	VariantUnit VariantKind = iota
	VariantTuple
	VariantStruct
)

// TypeInfo is everything the registry knows about one type.
type TypeInfo struct {
	Type reflect.Type

	// Ident is the short name ("Pair"), Path the fully qualified one
	// ("github.com/acme/geo.Pair[int,string]") and Module the package path.
	Ident  string
	Path   string
	Module string

	Docs     string
	Generics []GenericParam
	Shape    Shape

	// Fields is set for ShapeStruct and ShapeTupleStruct (names empty for tuples).
	Fields []FieldInfo
	// Variants is set for ShapeEnum.
	Variants []VariantInfo
	// Elem is the item type of lists, arrays and options, and the value type of maps.
	Elem reflect.Type
	// Key is the key type of maps.
	Key reflect.Type
	// Len is the length of arrays.
	Len int

	Markers Marker
}

// GenericParam is one instantiated type parameter.
type GenericParam struct {
	Name string
	Type reflect.Type
}

// FieldInfo is a struct field or a positional element.
type FieldInfo struct {
	Name string
	Type reflect.Type
}

// VariantInfo is one enum variant.
type VariantInfo struct {
	Name   string
	Kind   VariantKind
	Fields []FieldInfo
}

// Option adjusts a TypeInfo as it is described.
type Option func(*TypeInfo)

// WithDocs sets the documentation of the type.
func WithDocs(docs string) Option {
	return func(info *TypeInfo) { info.Docs = docs }
}

// WithGenerics records the type arguments of an instantiated generic type.
// reflect does not expose them, so the caller has to.
func WithGenerics(params ...GenericParam) Option {
	return func(info *TypeInfo) { info.Generics = append(info.Generics, params...) }
}

// WithVariants declares the type as an enum with the given variants.
func WithVariants(variants ...VariantInfo) Option {
	return func(info *TypeInfo) {
		info.Shape = ShapeEnum
		info.Fields = nil
		info.Variants = append(info.Variants, variants...)
	}
}

// WithMarkers adds markers on top of those implied by marker interfaces.
func WithMarkers(m Marker) Option {
	return func(info *TypeInfo) { info.Markers |= m }
}

// AsTuple treats a struct as a tuple struct: its fields are positional.
func AsTuple() Option {
	return func(info *TypeInfo) {
		if info.Shape != ShapeStruct {
			return
		}
		info.Shape = ShapeTupleStruct
		for i := range info.Fields {
			info.Fields[i].Name = ""
		}
	}
}

// Opaque hides the structure of the type.
func Opaque() Option {
	return func(info *TypeInfo) {
		info.Shape = ShapeOpaque
		info.Fields = nil
		info.Variants = nil
		info.Elem = nil
		info.Key = nil
		info.Len = 0
	}
}

// Generic builds a GenericParam.
func Generic(name string, t reflect.Type) GenericParam {
	return GenericParam{Name: name, Type: t}
}

// Field builds a named FieldInfo.
func Field(name string, t reflect.Type) FieldInfo {
	return FieldInfo{Name: name, Type: t}
}

// UnitVariant builds a variant without data.
func UnitVariant(name string) VariantInfo {
	return VariantInfo{Name: name, Kind: VariantUnit}
}

// TupleVariant builds a variant with positional fields.
func TupleVariant(name string, types ...reflect.Type) VariantInfo {
	fields := make([]FieldInfo, len(types))
	for i, t := range types {
		fields[i] = FieldInfo{Type: t}
	}
	return VariantInfo{Name: name, Kind: VariantTuple, Fields: fields}
}

// StructVariant builds a variant with named fields.
func StructVariant(name string, fields ...FieldInfo) VariantInfo {
	return VariantInfo{Name: name, Kind: VariantStruct, Fields: fields}
}

// Describe derives a TypeInfo from reflection alone.
//
// Exported struct fields become fields, named by a `lad:"name"` tag when
// present; `lad:"-"` hides a field. Slices, arrays, maps and pointers get
// their container shapes. Everything else is opaque.
func Describe(t reflect.Type, opts ...Option) *TypeInfo {
	info := &TypeInfo{
		Type:    t,
		Ident:   identOf(t),
		Path:    PathOf(t),
		Module:  t.PkgPath(),
		Markers: markersOf(t),
	}

	switch t.Kind() {
	case reflect.Struct:
		info.Shape = ShapeStruct
		info.Fields = structFields(t)
	case reflect.Slice:
		info.Shape = ShapeList
		info.Elem = t.Elem()
	case reflect.Array:
		info.Shape = ShapeArray
		info.Elem = t.Elem()
		info.Len = t.Len()
	case reflect.Map:
		info.Shape = ShapeMap
		info.Key = t.Key()
		info.Elem = t.Elem()
	case reflect.Pointer:
		info.Shape = ShapeOption
		info.Elem = t.Elem()
	default:
		info.Shape = ShapeOpaque
	}

	for _, opt := range opts {
		opt(info)
	}
	return info
}

// PathOf returns the fully qualified path of a type: package path plus name
// for named types, the type literal otherwise.
func PathOf(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// identOf returns the short name with any type arguments stripped.
func identOf(t reflect.Type) string {
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if i := strings.IndexByte(name, '['); i > 0 {
		return name[:i]
	}
	return name
}

func structFields(t reflect.Type) []FieldInfo {
	fields := make([]FieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("lad"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields = append(fields, FieldInfo{Name: name, Type: f.Type})
	}
	return fields
}
