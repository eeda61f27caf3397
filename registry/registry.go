// Package registry is the host's reflection-capable type registry.
//
// Types are keyed by reflect.Type. The LAD builder consumes the registry
// through the read-only TypeRegistry interface; Registry is the in-process
// implementation a host fills at startup.
package registry

import (
	"reflect"
	"strings"
	"sync"
)

// TypeRegistry is the read-only view of a registry.
type TypeRegistry interface {
	// Lookup returns the structural information of a registered type.
	Lookup(t reflect.Type) (*TypeInfo, bool)
	// Types enumerates registered types in registration order.
	Types() []reflect.Type
	// HasMarker reports whether a registered type carries the marker.
	HasMarker(t reflect.Type, m Marker) bool
}

// World is the host's root type. It always resolves to the same LAD id.
type World struct{}

// Registry is a TypeRegistry backed by reflection.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	types     map[reflect.Type]*TypeInfo
	order     []reflect.Type
	functions []FunctionInfo
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		types: make(map[reflect.Type]*TypeInfo),
	}
}

// Register describes t and records it, replacing any earlier registration.
func (r *Registry) Register(t reflect.Type, opts ...Option) *TypeInfo {
	return r.RegisterInfo(Describe(t, opts...))
}

// RegisterInfo records a hand-built TypeInfo.
func (r *Registry) RegisterInfo(info *TypeInfo) *TypeInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[info.Type]; !exists {
		r.order = append(r.order, info.Type)
	}
	r.types[info.Type] = info
	return info
}

// Register records T in r.
func Register[T any](r *Registry, opts ...Option) *TypeInfo {
	return r.Register(reflect.TypeFor[T](), opts...)
}

// Lookup implements TypeRegistry.
func (r *Registry) Lookup(t reflect.Type) (*TypeInfo, bool) {
	if t == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.types[t]
	return info, ok
}

// Types implements TypeRegistry.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// HasMarker implements TypeRegistry.
func (r *Registry) HasMarker(t reflect.Type, m Marker) bool {
	info, ok := r.Lookup(t)
	return ok && info.Markers.Has(m)
}

// RegisterFunction records a function exposed to scripts.
func (r *Registry) RegisterFunction(info FunctionInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions = append(r.functions, info)
}

// Functions returns registered functions in registration order.
func (r *Registry) Functions() []FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]FunctionInfo, len(r.functions))
	copy(out, r.functions)
	return out
}

// ApplyDocs fills in missing documentation from docs, which maps
// "pkgpath.Type" and "pkgpath.Type.Method" keys to doc comments (see
// LoadDocs). Documentation set explicitly is never replaced. It returns the
// number of types and functions updated.
func (r *Registry) ApplyDocs(docs map[string]string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := 0
	for _, t := range r.order {
		info := r.types[t]
		if info.Docs != "" {
			continue
		}
		if doc, ok := docs[basePath(info.Path)]; ok {
			info.Docs = doc
			updated++
		}
	}
	for i := range r.functions {
		fn := &r.functions[i]
		if fn.Docs != "" || fn.Namespace == nil {
			continue
		}
		if doc, ok := docs[basePath(PathOf(fn.Namespace))+"."+fn.Name]; ok {
			fn.Docs = doc
			updated++
		}
	}
	return updated
}

// basePath strips type arguments from a path.
func basePath(path string) string {
	if i := strings.IndexByte(path, '['); i > 0 {
		return path[:i]
	}
	return path
}
