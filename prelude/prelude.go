// Package prelude is the binding surface every script sees: the world, the
// entity and math types, asset handles and the global functions.
//
// Register fills a registry with it and Populate adds it to a builder;
// ladgen builds its LAD file from exactly these two steps.
package prelude

import (
	"reflect"

	"github.com/teranos/lad/binding"
	"github.com/teranos/lad/builder"
	"github.com/teranos/lad/errors"
	"github.com/teranos/lad/registry"
	"github.com/teranos/lad/through"
)

var (
	worldType   = reflect.TypeFor[registry.World]()
	entityType  = reflect.TypeFor[Entity]()
	vec3Type    = reflect.TypeFor[Vec3]()
	float32Type = reflect.TypeFor[float32]()
	stringType  = reflect.TypeFor[string]()
	imageType   = reflect.TypeFor[Image]()
	meshType    = reflect.TypeFor[Mesh]()
)

type (
	worldMut = binding.Mut[registry.World]
	worldRef = binding.Ref[registry.World]
)

// entry is one function of the prelude before it is described.
type entry struct {
	name string
	fn   any
	opts []registry.FunctionOption
}

// World functions are implemented by the host runtime; only their
// signatures matter here.
var worldFunctions = []entry{
	{"spawn", (func(worldMut) Entity)(nil), []registry.FunctionOption{
		registry.WithArgNames("world"),
		registry.WithFunctionDocs(`Spawns an empty entity.

Arguments:
* ` + "`world`" + `: The world to spawn into.

Returns:
* ` + "`entity`" + `: The new entity.`),
	}},
	{"despawn", (func(worldMut, Entity) error)(nil), []registry.FunctionOption{
		registry.WithArgNames("world", "entity"),
		registry.WithFunctionDocs(`Despawns an entity and its components. Fails when the entity does not exist.

Arguments:
* ` + "`world`" + `: The world the entity lives in.
* ` + "`entity`" + `: The entity to despawn.`),
	}},
	{"has_entity", (func(worldRef, Entity) bool)(nil), []registry.FunctionOption{
		registry.WithArgNames("world", "entity"),
		registry.WithFunctionDocs(`Checks whether an entity exists.

Returns:
* ` + "`exists`" + `: Whether the entity is alive.

Arguments:
* ` + "`world`" + `: The world to look in.
* ` + "`entity`" + `: The entity to look for.`),
	}},
	{"get_name", (func(worldRef, Entity) *Name)(nil), []registry.FunctionOption{
		registry.WithArgNames("world", "entity"),
		registry.WithFunctionDocs("Returns the name of an entity, if it has one."),
	}},
	{"names", (func(worldRef) map[Entity]Name)(nil), []registry.FunctionOption{
		registry.WithArgNames("world"),
		registry.WithFunctionDocs("Returns every named entity."),
	}},
	{"get_transform", (func(worldRef, Entity) (binding.Ref[Transform], error))(nil), []registry.FunctionOption{
		registry.WithArgNames("world", "entity"),
		registry.WithFunctionDocs("Borrows the transform of an entity."),
	}},
	{"set_visibility", (func(worldMut, Entity, Visibility))(nil), []registry.FunctionOption{
		registry.WithArgNames("world", "entity", "visibility"),
	}},
	{"load_image", (func(worldMut, binding.Path) (Handle[Image], error))(nil), []registry.FunctionOption{
		registry.WithArgNames("world", "path"),
		registry.WithFunctionDocs(`Starts loading an image asset.

Arguments:
* ` + "`path`" + `: Asset path relative to the asset root.`),
	}},
	{"load_mesh", (func(worldMut, binding.Path) (Handle[Mesh], error))(nil), []registry.FunctionOption{
		registry.WithArgNames("world", "path"),
	}},
}

var entityFunctions = []entry{
	{"ToBits", Entity.ToBits, []registry.FunctionOption{registry.WithArgNames("self")}},
}

var vec3Functions = []entry{
	{"Add", Vec3.Add, []registry.FunctionOption{registry.WithArgNames("self", "other")}},
	{"Scale", Vec3.Scale, []registry.FunctionOption{registry.WithArgNames("self", "factor")}},
	{"Dot", Vec3.Dot, []registry.FunctionOption{registry.WithArgNames("self", "other")}},
	{"Length", Vec3.Length, []registry.FunctionOption{registry.WithArgNames("self")}},
}

var globalFunctions = []entry{
	{"print", (func(string))(nil), []registry.FunctionOption{
		registry.WithArgNames("message"),
		registry.WithFunctionDocs(`Writes a message to the host log.

Arguments:
* ` + "`message`" + `: The text to write.`),
	}},
	{"call", (func(binding.Function, []binding.Reference) (binding.Reference, error))(nil), []registry.FunctionOption{
		registry.WithArgNames("function", "args"),
		registry.WithFunctionDocs("Invokes a script callable with the given arguments."),
	}},
	{"on_update", (func(binding.FunctionMut))(nil), []registry.FunctionOption{
		registry.WithArgNames("callback"),
	}},
	{"first_char", (func(string) *binding.Char)(nil), []registry.FunctionOption{
		registry.WithArgNames("text"),
	}},
	{"corners", (func(Vec3) [8]Vec3)(nil), []registry.FunctionOption{
		registry.WithArgNames("half_extents"),
	}},
	{"split", (func(Vec3) (float32, float32, float32))(nil), []registry.FunctionOption{
		registry.WithArgNames("vector"),
	}},
}

// typeOf has no Go signature: its argument is a union of script values.
var typeOf = registry.FunctionInfo{
	Name: "type_of",
	Args: []registry.ArgInfo{{
		Name: "value",
		Through: through.Union{Elems: []through.Type{
			through.Plain{Type: reflect.TypeFor[bool]()},
			through.Plain{Type: reflect.TypeFor[int64]()},
			through.Plain{Type: reflect.TypeFor[float64]()},
			through.Plain{Type: stringType},
			through.Plain{Type: reflect.TypeFor[binding.Reference]()},
		}},
	}},
	Return: registry.ArgInfo{Type: stringType, Through: through.Plain{Type: stringType}},
	Docs: `Returns the name of a value's type.

Arguments:
* ` + "`value`" + `: Any script value.

Returns:
* ` + "`name`" + `: The type name.`,
}

// Register adds the prelude types and functions to reg.
func Register(reg *registry.Registry) error {
	registry.Register[registry.World](reg,
		registry.Opaque(),
		registry.WithMarkers(registry.MarkerCore),
		registry.WithDocs("The world holds every entity and its components."))
	registry.Register[Entity](reg, registry.Opaque())
	registry.Register[Vec3](reg)
	registry.Register[Name](reg, registry.AsTuple())
	registry.Register[Transform](reg, registry.WithMarkers(registry.MarkerSignificant))
	registry.Register[Visibility](reg, registry.WithVariants(
		registry.UnitVariant("Inherited"),
		registry.UnitVariant("Hidden"),
		registry.UnitVariant("Visible"),
	))
	registry.Register[Shape](reg, registry.WithVariants(
		registry.StructVariant("Sphere", registry.Field("radius", float32Type)),
		registry.TupleVariant("Cuboid", vec3Type),
		registry.UnitVariant("Point"),
	))
	registry.Register[Image](reg)
	registry.Register[Handle[Image]](reg,
		registry.Opaque(),
		registry.WithGenerics(registry.Generic("T", imageType)),
		registry.WithMarkers(registry.MarkerGenerated))
	registry.Register[Handle[Mesh]](reg,
		registry.Opaque(),
		registry.WithGenerics(registry.Generic("T", meshType)),
		registry.WithMarkers(registry.MarkerGenerated))

	groups := []struct {
		namespace reflect.Type
		entries   []entry
	}{
		{worldType, worldFunctions},
		{entityType, entityFunctions},
		{vec3Type, vec3Functions},
		{nil, globalFunctions},
	}
	for _, g := range groups {
		for _, e := range g.entries {
			opts := e.opts
			if g.namespace != nil {
				opts = append([]registry.FunctionOption{registry.OnType(g.namespace)}, opts...)
			}
			info, err := registry.FunctionOf(e.name, e.fn, opts...)
			if err != nil {
				return errors.Wrapf(err, "failed to describe prelude function %s", e.name)
			}
			reg.RegisterFunction(info)
		}
	}
	reg.RegisterFunction(typeOf)
	return nil
}

// NewRegistry returns a registry holding only the prelude.
func NewRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Populate adds everything reg knows to b: the default primitives, every
// registered type and function, the world global and a static global per
// type that carries functions.
func Populate(b *builder.Builder, reg *registry.Registry) *builder.Builder {
	b.AddDefaultPrimitives().
		AddAllTypes().
		AddFunctions(reg.Functions()...)

	b.AddInstance("world", reflect.TypeFor[worldRef](), false)

	statics := make(map[reflect.Type]bool)
	for _, fn := range reg.Functions() {
		if fn.IsGlobal() || fn.Namespace == worldType || statics[fn.Namespace] {
			continue
		}
		statics[fn.Namespace] = true
		b.AddInstanceDynamic(fn.Namespace.Name(), through.Val{Type: fn.Namespace}, true)
	}
	return b
}
