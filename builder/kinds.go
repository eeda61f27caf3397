package builder

import (
	"reflect"

	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/registry"
	"github.com/teranos/lad/through"
)

// TypeKindOf converts a through type into the kind scripts see. Plain
// leaves become primitives when they are one and Unknown otherwise.
func (b *Builder) TypeKindOf(t through.Type) ladfile.TypeKind {
	switch n := t.(type) {
	case through.Ref:
		return ladfile.KindRef{Type: b.ResolveID(n.Type)}
	case through.Mut:
		return ladfile.KindMut{Type: b.ResolveID(n.Type)}
	case through.Val:
		return ladfile.KindVal{Type: b.ResolveID(n.Type)}
	case through.Vec:
		return ladfile.KindVec{Elem: b.TypeKindOf(n.Elem)}
	case through.HashMap:
		return ladfile.KindHashMap{Key: b.TypeKindOf(n.Key), Value: b.TypeKindOf(n.Value)}
	case through.Array:
		return ladfile.KindArray{Elem: b.TypeKindOf(n.Elem), Size: n.Size}
	case through.Option:
		return ladfile.KindOption{Elem: b.TypeKindOf(n.Elem)}
	case through.Result:
		return ladfile.KindInteropResult{Elem: b.TypeKindOf(n.Elem)}
	case through.Tuple:
		return ladfile.KindTuple{Elems: b.typeKindsOf(n.Elems)}
	case through.Union:
		return ladfile.KindUnion{Elems: b.typeKindsOf(n.Elems)}
	case through.Plain:
		return b.plainKind(n.Type)
	default:
		return b.plainKind(nil)
	}
}

func (b *Builder) typeKindsOf(elems []through.Type) []ladfile.TypeKind {
	kinds := make([]ladfile.TypeKind, len(elems))
	for i, e := range elems {
		kinds[i] = b.TypeKindOf(e)
	}
	return kinds
}

func (b *Builder) plainKind(t reflect.Type) ladfile.TypeKind {
	if kind, ok := PrimitiveKindOf(t); ok {
		return ladfile.KindPrimitive{Kind: kind}
	}
	return ladfile.KindUnknown{Type: b.ResolveID(t)}
}

// RegisterNested adds every type reachable from t to the file, including
// the type arguments of registered types. Types missing from the registry are
// described from reflection, as AddType does. Primitives and types already in
// the file are skipped.
func (b *Builder) RegisterNested(t through.Type) *Builder {
	b.registerNested(t, make(map[ladfile.TypeID]struct{}))
	return b
}

func (b *Builder) registerNested(t through.Type, visited map[ladfile.TypeID]struct{}) {
	through.Walk(t, func(node through.Type) {
		leaf, ok := through.Leaf(node)
		if !ok {
			return
		}
		if _, primitive := PrimitiveKindOf(leaf); primitive {
			return
		}

		id := b.ResolveID(leaf)
		if _, seen := visited[id]; seen {
			return
		}
		visited[id] = struct{}{}

		info, ok := b.registry.Lookup(leaf)
		if !ok {
			info = registry.Describe(leaf)
		}
		if _, exists := b.file.Types.Get(id); !exists {
			b.AddTypeInfo(info)
		}
		for _, g := range info.Generics {
			b.registerNested(through.Of(g.Type), visited)
		}
	})
}
