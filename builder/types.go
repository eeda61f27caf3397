package builder

import (
	"reflect"
	"strings"

	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/logger"
	"github.com/teranos/lad/registry"
)

// Insignificance tiers. Lower sorts first.
const (
	InsignificanceDefault     = 1000
	InsignificanceCore        = 500
	InsignificanceSignificant = 250
)

// AddTypeInfo records a type, replacing any earlier entry with the same id.
func (b *Builder) AddTypeInfo(info *registry.TypeInfo) *Builder {
	if info == nil || info.Type == nil {
		return b
	}

	id := b.ResolveID(info.Type)
	markers := b.markersOf(info)

	var generics []ladfile.GenericArgument
	for _, g := range info.Generics {
		generics = append(generics, ladfile.GenericArgument{Name: g.Name, TypeID: b.ResolveID(g.Type)})
	}

	b.file.Types.Set(id, ladfile.Type{
		Identifier:     info.Ident,
		Module:         info.Module,
		Path:           info.Path,
		Generics:       generics,
		Documentation:  info.Docs,
		Layout:         b.layoutOf(info),
		Generated:      markers.Has(registry.MarkerGenerated),
		Insignificance: insignificanceOf(markers),
	})
	b.log.Debugw("added type", logger.FieldTypeID, string(id))
	return b
}

// AddType records t, described from the registry when it is registered and
// from reflection alone when it is not.
func (b *Builder) AddType(t reflect.Type) *Builder {
	if t == nil {
		return b
	}
	if info, ok := b.registry.Lookup(t); ok {
		return b.AddTypeInfo(info)
	}
	return b.AddTypeInfo(registry.Describe(t))
}

// AddAllTypes records every registered type in registration order.
func (b *Builder) AddAllTypes() *Builder {
	for _, t := range b.registry.Types() {
		if info, ok := b.registry.Lookup(t); ok {
			b.AddTypeInfo(info)
		}
	}
	return b
}

// AddNonReflectType records an opaque type known only by its name, for
// types that have to appear in the file but are not described anywhere.
func (b *Builder) AddNonReflectType(t reflect.Type, module, docs string) *Builder {
	if t == nil {
		return b
	}
	path := registry.PathOf(t)
	b.file.Types.Set(b.ResolveID(t), ladfile.Type{
		Identifier:     identFromPath(path),
		Module:         module,
		Path:           path,
		Documentation:  docs,
		Layout:         ladfile.OpaqueLayout(),
		Insignificance: InsignificanceDefault,
	})
	return b
}

// identFromPath returns the last segment of a type path without type
// arguments: "example.com/geo.Pair[int]" is "Pair".
func identFromPath(path string) string {
	if i := strings.IndexByte(path, '['); i > 0 {
		path = path[:i]
	}
	if i := strings.LastIndexAny(path, "./"); i >= 0 {
		path = path[i+1:]
	}
	return path
}

func (b *Builder) markersOf(info *registry.TypeInfo) registry.Marker {
	m := info.Markers
	for _, marker := range []registry.Marker{registry.MarkerGenerated, registry.MarkerCore, registry.MarkerSignificant} {
		if b.registry.HasMarker(info.Type, marker) {
			m |= marker
		}
	}
	return m
}

func insignificanceOf(m registry.Marker) int {
	switch {
	case m.Has(registry.MarkerSignificant):
		return InsignificanceSignificant
	case m.Has(registry.MarkerCore):
		return InsignificanceCore
	default:
		return InsignificanceDefault
	}
}

// layoutOf derives the layout of a type. Member types are resolved to ids
// only; their own shape is not expanded.
func (b *Builder) layoutOf(info *registry.TypeInfo) ladfile.TypeLayout {
	switch info.Shape {
	case registry.ShapeStruct:
		return ladfile.MonoVariantLayout(ladfile.Variant{
			Kind:   ladfile.VariantStruct,
			Name:   info.Ident,
			Fields: b.fieldsOf(info.Fields),
		})
	case registry.ShapeTupleStruct:
		return ladfile.MonoVariantLayout(ladfile.Variant{
			Kind:   ladfile.VariantTupleStruct,
			Name:   info.Ident,
			Fields: b.fieldsOf(info.Fields),
		})
	case registry.ShapeEnum:
		variants := make([]ladfile.Variant, 0, len(info.Variants))
		for _, v := range info.Variants {
			variants = append(variants, b.variantOf(v))
		}
		return ladfile.EnumLayout(variants...)
	default:
		return ladfile.OpaqueLayout()
	}
}

func (b *Builder) variantOf(v registry.VariantInfo) ladfile.Variant {
	switch v.Kind {
	case registry.VariantStruct:
		return ladfile.Variant{Kind: ladfile.VariantStruct, Name: v.Name, Fields: b.fieldsOf(v.Fields)}
	case registry.VariantTuple:
		return ladfile.Variant{Kind: ladfile.VariantTupleStruct, Name: v.Name, Fields: b.fieldsOf(v.Fields)}
	default:
		return ladfile.Variant{Kind: ladfile.VariantUnit, Name: v.Name}
	}
}

// fieldsOf is nil for no fields, matching what an omitted "fields" decodes to.
func (b *Builder) fieldsOf(fields []registry.FieldInfo) []ladfile.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]ladfile.Field, len(fields))
	for i, f := range fields {
		out[i] = ladfile.Field{Name: f.Name, Type: b.ResolveID(f.Type)}
	}
	return out
}
