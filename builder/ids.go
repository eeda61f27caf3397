package builder

import (
	"reflect"

	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/registry"
)

var worldType = reflect.TypeFor[registry.World]()

// ResolveID returns the LAD id of t. Results are cached, so the same type
// always gets the same id within one builder.
//
// The world type maps to "World" and primitives to their kind. Registered
// types use their registry path; anything else falls back to the Go type
// string. A nil type is "no value".
func (b *Builder) ResolveID(t reflect.Type) ladfile.TypeID {
	if t == nil {
		return ladfile.UnitTypeID
	}
	if id, ok := b.ids[t]; ok {
		return id
	}

	var id ladfile.TypeID
	if t == worldType {
		id = ladfile.WorldTypeID
	} else if kind, ok := PrimitiveKindOf(t); ok {
		id = kind.TypeID()
	} else if info, ok := b.registry.Lookup(t); ok {
		id = ladfile.TypeID(info.Path)
	} else {
		id = ladfile.TypeID(t.String())
	}

	b.ids[t] = id
	return id
}
