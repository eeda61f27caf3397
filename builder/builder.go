// Package builder produces LAD files from a type registry.
//
// A Builder accumulates types, functions, primitives and globals through
// repeated Add calls, then Build runs the cross-cutting passes (exclusion of
// types that reach unregistered types, linking of associated functions,
// sorting) and hands back the finished file.
//
// Nothing in the builder fails: unknown types degrade to Unknown kinds and
// Opaque layouts, and the only diagnostics are the warnings Build returns.
//
// A Builder is not safe for concurrent use.
package builder

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/logger"
	"github.com/teranos/lad/registry"
	"github.com/teranos/lad/version"
)

// Builder accumulates a LAD file.
type Builder struct {
	registry registry.TypeRegistry
	file     *ladfile.File
	ids      map[reflect.Type]ladfile.TypeID

	sorted              bool
	excludeUnregistered bool
	description         string
	version             string

	log *zap.SugaredLogger
}

// Option configures a Builder.
type Option func(*Builder)

// WithSorted sorts types, functions and primitives on Build.
func WithSorted(sorted bool) Option {
	return func(b *Builder) { b.sorted = sorted }
}

// WithExcludeUnregistered drops types that reach unregistered types on Build.
func WithExcludeUnregistered(exclude bool) Option {
	return func(b *Builder) { b.excludeUnregistered = exclude }
}

// WithDescription sets the description of the file.
func WithDescription(description string) Option {
	return func(b *Builder) { b.description = description }
}

// WithVersion overrides the version stamp. Empty means the running version.
func WithVersion(v string) Option {
	return func(b *Builder) { b.version = v }
}

// WithLogger sets the logger the builder reports through.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// New creates a builder reading from reg. A nil registry behaves as an
// empty one.
func New(reg registry.TypeRegistry, opts ...Option) *Builder {
	if reg == nil {
		reg = registry.New()
	}
	b := &Builder{
		registry: reg,
		ids:      make(map[reflect.Type]ladfile.TypeID),
		log:      logger.ComponentLogger("builder"),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.file = b.newFile()
	return b
}

func (b *Builder) newFile() *ladfile.File {
	f := ladfile.New()
	if b.version != "" {
		f.Version = b.version
	} else {
		f.Version = version.Get().LADVersion
	}
	f.Description = b.description
	return f
}
