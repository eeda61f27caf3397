package builder

import (
	"reflect"

	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/logger"
	"github.com/teranos/lad/through"
)

// AddInstance records a global whose kind is derived from its Go type.
// Static globals expose a type's functions rather than a value.
func (b *Builder) AddInstance(name string, t reflect.Type, isStatic bool) *Builder {
	return b.AddInstanceDynamic(name, through.Of(t), isStatic)
}

// AddInstanceDynamic records a global with an explicit through type.
func (b *Builder) AddInstanceDynamic(name string, t through.Type, isStatic bool) *Builder {
	return b.AddInstanceManually(name, b.TypeKindOf(t), isStatic)
}

// AddInstanceManually records a global with a hand-built kind.
func (b *Builder) AddInstanceManually(name string, kind ladfile.TypeKind, isStatic bool) *Builder {
	b.file.Globals.Set(name, ladfile.Instance{Kind: kind, IsStatic: isStatic})
	b.log.Debugw("added global", logger.FieldGlobal, name)
	return b
}
