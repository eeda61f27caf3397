// Package ladfile is the Language-Agnostic Declaration file: a serializable
// description of every type, function, primitive and global a host exposes
// to scripts.
//
// A File is produced by the builder package and read back by documentation
// and binding generators that have no access to the host process.
package ladfile

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/teranos/lad/version"
)

// TypeID is an opaque, stable identifier of a type within one file.
type TypeID string

// FunctionID identifies a function within one file.
type FunctionID string

// WorldTypeID is the fixed id of the host's root type.
const WorldTypeID TypeID = "World"

// UnitTypeID is the id of "no value".
const UnitTypeID TypeID = "()"

// File is the root of a LAD file. The four mappings keep insertion order,
// which is the order the builder sorted them into.
type File struct {
	Version     string                                       `json:"version"`
	Description string                                       `json:"description,omitempty"`
	Types       *orderedmap.OrderedMap[TypeID, Type]         `json:"types"`
	Functions   *orderedmap.OrderedMap[FunctionID, Function] `json:"functions"`
	Primitives  *orderedmap.OrderedMap[TypeID, Primitive]    `json:"primitives"`
	Globals     *orderedmap.OrderedMap[string, Instance]     `json:"globals"`
}

// New returns an empty file stamped with the running version.
func New() *File {
	f := &File{Version: version.Get().LADVersion}
	f.normalize()
	return f
}

// normalize replaces missing mappings with empty ones.
func (f *File) normalize() {
	if f.Types == nil {
		f.Types = orderedmap.New[TypeID, Type]()
	}
	if f.Functions == nil {
		f.Functions = orderedmap.New[FunctionID, Function]()
	}
	if f.Primitives == nil {
		f.Primitives = orderedmap.New[TypeID, Primitive]()
	}
	if f.Globals == nil {
		f.Globals = orderedmap.New[string, Instance]()
	}
}

// WithVersion returns a shallow copy of f stamped with v.
func (f *File) WithVersion(v string) *File {
	cp := *f
	cp.Version = v
	return &cp
}

// TypeIDs returns the type ids in file order.
func (f *File) TypeIDs() []TypeID {
	ids := make([]TypeID, 0, f.Types.Len())
	for pair := f.Types.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// FunctionIDs returns the function ids in file order.
func (f *File) FunctionIDs() []FunctionID {
	ids := make([]FunctionID, 0, f.Functions.Len())
	for pair := f.Functions.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// PrimitiveIDs returns the primitive ids in file order.
func (f *File) PrimitiveIDs() []TypeID {
	ids := make([]TypeID, 0, f.Primitives.Len())
	for pair := f.Primitives.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// GlobalNames returns the global names in file order.
func (f *File) GlobalNames() []string {
	names := make([]string, 0, f.Globals.Len())
	for pair := f.Globals.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}
