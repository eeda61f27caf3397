package registry

import "reflect"

// Marker flags a registered type for special treatment in LAD output.
type Marker uint8

const (
	// MarkerGenerated marks types produced by code generation.
	MarkerGenerated Marker = 1 << iota
	// MarkerCore marks types that belong to the host's core surface.
	MarkerCore
	// MarkerSignificant marks the handful of types users meet first.
	MarkerSignificant
)

// Has reports whether all bits of o are set in m.
func (m Marker) Has(o Marker) bool { return m&o == o }

// Generated is implemented by generated types. Implementing it is the
// same as registering with WithMarkers(MarkerGenerated).
type Generated interface{ LADGenerated() }

// CoreType is implemented by core types.
type CoreType interface{ LADCore() }

// SignificantType is implemented by significant types.
type SignificantType interface{ LADSignificant() }

var markerInterfaces = []struct {
	iface  reflect.Type
	marker Marker
}{
	{reflect.TypeFor[Generated](), MarkerGenerated},
	{reflect.TypeFor[CoreType](), MarkerCore},
	{reflect.TypeFor[SignificantType](), MarkerSignificant},
}

// markersOf collects markers from the interfaces t or *t implement.
func markersOf(t reflect.Type) Marker {
	var m Marker
	ptr := reflect.PointerTo(t)
	for _, mi := range markerInterfaces {
		if t.Implements(mi.iface) || ptr.Implements(mi.iface) {
			m |= mi.marker
		}
	}
	return m
}
