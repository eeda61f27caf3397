package prelude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/lad/builder"
	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/registry"
)

const pkg = "github.com/teranos/lad/prelude."

func build(t *testing.T, opts ...builder.Option) (*ladfile.File, []builder.Warning) {
	t.Helper()
	reg, err := NewRegistry()
	require.NoError(t, err)

	opts = append([]builder.Option{builder.WithVersion("1.0.0")}, opts...)
	return Populate(builder.New(reg, opts...), reg).Build()
}

func TestPreludeBuildsWithoutWarnings(t *testing.T) {
	file, warnings := build(t)

	assert.Empty(t, warnings)
	assert.Equal(t, "1.0.0", file.Version)
	assert.Equal(t, len(ladfile.PrimitiveKinds()), file.Primitives.Len())

	for _, id := range []ladfile.TypeID{
		ladfile.WorldTypeID,
		pkg + "Entity",
		pkg + "Vec3",
		pkg + "Name",
		pkg + "Transform",
		pkg + "Visibility",
		pkg + "Shape",
		pkg + "Image",
		pkg + "Handle[" + pkg + "Image]",
		pkg + "Handle[" + pkg + "Mesh]",
		"prelude.Mesh",
	} {
		_, ok := file.Types.Get(id)
		assert.True(t, ok, "missing type %s", id)
	}
}

func TestWorldFunctions(t *testing.T) {
	file, _ := build(t)

	world, ok := file.Types.Get(ladfile.WorldTypeID)
	require.True(t, ok)
	assert.Contains(t, world.AssociatedFunctions, ladfile.FunctionID("World::spawn"))
	assert.Equal(t, builder.InsignificanceCore, world.Insignificance)

	spawn, ok := file.Functions.Get("World::spawn")
	require.True(t, ok)
	// The blank line before the Arguments heading is kept
	assert.Equal(t, "Spawns an empty entity.\n", spawn.Documentation)
	assert.Equal(t, ladfile.OnType(ladfile.WorldTypeID), spawn.Namespace)
	require.Len(t, spawn.Arguments, 1)
	assert.Equal(t, ladfile.KindMut{Type: ladfile.WorldTypeID}, spawn.Arguments[0].Kind)
	assert.Equal(t, "world", spawn.Arguments[0].Name)
	assert.Equal(t, "The world to spawn into.", spawn.Arguments[0].Documentation)
	assert.Equal(t, "entity", spawn.Return.Name)
	assert.Equal(t, "The new entity.", spawn.Return.Documentation)
	assert.Equal(t, ladfile.KindUnknown{Type: pkg + "Entity"}, spawn.Return.Kind)

	// Returns before Arguments
	has, ok := file.Functions.Get("World::has_entity")
	require.True(t, ok)
	assert.Equal(t, "Checks whether an entity exists.\n", has.Documentation)
	assert.Equal(t, "exists", has.Return.Name)
	assert.Equal(t, "The entity to look for.", has.Arguments[1].Documentation)

	kinds := map[ladfile.FunctionID]string{
		"World::despawn":        "Result<()>",
		"World::get_name":       "Option<?" + pkg + "Name>",
		"World::names":          "HashMap<?" + pkg + "Entity, ?" + pkg + "Name>",
		"World::get_transform":  "Result<Ref<" + pkg + "Transform>>",
		"World::set_visibility": "()",
		"World::load_image":     "Result<?" + pkg + "Handle[" + pkg + "Image]>",
	}
	for id, want := range kinds {
		fn, ok := file.Functions.Get(id)
		require.True(t, ok, "missing function %s", id)
		assert.Equal(t, want, fn.Return.Kind.String(), id)
	}
}

func TestGlobalFunctions(t *testing.T) {
	file, _ := build(t)

	kinds := map[ladfile.FunctionID][]string{
		"::print":      {"string", "()"},
		"::call":       {"dynamic_function", "Vec<reflect_reference>", "Result<reflect_reference>"},
		"::on_update":  {"function_mut", "()"},
		"::first_char": {"string", "Option<char>"},
		"::corners":    {"?" + pkg + "Vec3", "[?" + pkg + "Vec3; 8]"},
		"::split":      {"?" + pkg + "Vec3", "(float32, float32, float32)"},
		"::type_of":    {"Union<bool | int64 | float64 | string | reflect_reference>", "string"},
	}
	for id, want := range kinds {
		fn, ok := file.Functions.Get(id)
		require.True(t, ok, "missing function %s", id)
		assert.True(t, fn.Namespace.IsGlobal(), id)

		var got []string
		for _, a := range fn.Arguments {
			got = append(got, a.Kind.String())
		}
		got = append(got, fn.Return.Kind.String())
		assert.Equal(t, want, got, id)
	}

	typeOf, _ := file.Functions.Get("::type_of")
	assert.Equal(t, "name", typeOf.Return.Name)
	assert.Equal(t, "Any script value.", typeOf.Arguments[0].Documentation)
}

func TestMethodsAttachToTheirTypes(t *testing.T) {
	file, _ := build(t)

	vec3, ok := file.Types.Get(pkg + "Vec3")
	require.True(t, ok)
	assert.Equal(t, []ladfile.FunctionID{
		pkg + "Vec3::Add",
		pkg + "Vec3::Scale",
		pkg + "Vec3::Dot",
		pkg + "Vec3::Length",
	}, vec3.AssociatedFunctions)
	assert.Equal(t, builder.InsignificanceSignificant, vec3.Insignificance)

	require.Equal(t, ladfile.LayoutMonoVariant, vec3.Layout.Kind)
	fields := vec3.Layout.Variants[0].Fields
	require.Len(t, fields, 3)
	assert.Equal(t, "x", fields[0].Name)
	assert.Equal(t, ladfile.PrimitiveFloat32.TypeID(), fields[0].Type)

	scale, _ := file.Functions.Get(pkg + "Vec3::Scale")
	require.Len(t, scale.Arguments, 2)
	assert.Equal(t, "factor", scale.Arguments[1].Name)
	assert.Equal(t, ladfile.KindPrimitive{Kind: ladfile.PrimitiveFloat32}, scale.Arguments[1].Kind)
}

func TestLayouts(t *testing.T) {
	file, _ := build(t)

	visibility, _ := file.Types.Get(pkg + "Visibility")
	require.Equal(t, ladfile.LayoutEnum, visibility.Layout.Kind)
	require.Len(t, visibility.Layout.Variants, 3)
	assert.Equal(t, "Hidden", visibility.Layout.Variants[1].Name)

	shape, _ := file.Types.Get(pkg + "Shape")
	require.Equal(t, ladfile.LayoutEnum, shape.Layout.Kind)
	assert.Equal(t, []ladfile.VariantKind{
		ladfile.VariantStruct, ladfile.VariantTupleStruct, ladfile.VariantUnit,
	}, []ladfile.VariantKind{
		shape.Layout.Variants[0].Kind, shape.Layout.Variants[1].Kind, shape.Layout.Variants[2].Kind,
	})

	name, _ := file.Types.Get(pkg + "Name")
	require.Equal(t, ladfile.LayoutMonoVariant, name.Layout.Kind)
	assert.Equal(t, ladfile.VariantTupleStruct, name.Layout.Variants[0].Kind)

	handle, _ := file.Types.Get(pkg + "Handle[" + pkg + "Image]")
	assert.Equal(t, ladfile.LayoutOpaque, handle.Layout.Kind)
	assert.True(t, handle.Generated)
	assert.Equal(t, []ladfile.GenericArgument{{Name: "T", TypeID: pkg + "Image"}}, handle.Generics)
}

func TestGlobals(t *testing.T) {
	file, _ := build(t)

	assert.Equal(t, []string{"world", "Entity", "Vec3"}, file.GlobalNames())

	world, _ := file.Globals.Get("world")
	assert.Equal(t, ladfile.KindRef{Type: ladfile.WorldTypeID}, world.Kind)
	assert.False(t, world.IsStatic)

	vec3, _ := file.Globals.Get("Vec3")
	assert.Equal(t, ladfile.KindVal{Type: pkg + "Vec3"}, vec3.Kind)
	assert.True(t, vec3.IsStatic)
}

func TestExcludeUnregisteredDropsMeshHandle(t *testing.T) {
	file, warnings := build(t, builder.WithExcludeUnregistered(true))
	assert.Empty(t, warnings)

	_, ok := file.Types.Get(pkg + "Handle[" + pkg + "Mesh]")
	assert.False(t, ok)
	_, ok = file.Types.Get(pkg + "Handle[" + pkg + "Image]")
	assert.True(t, ok)
}

func TestSortedPutsSignificantTypesFirst(t *testing.T) {
	file, _ := build(t, builder.WithSorted(true))

	ids := file.TypeIDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, ladfile.TypeID(pkg+"Vec3"), ids[0])
	assert.Equal(t, ladfile.TypeID(pkg+"Transform"), ids[1])
}

func TestSerializedPreludeRoundTrips(t *testing.T) {
	file, _ := build(t, builder.WithSorted(true))

	for _, format := range []ladfile.Format{ladfile.FormatJSON, ladfile.FormatYAML} {
		data, err := ladfile.Serialize(file, format)
		require.NoError(t, err)

		decoded, err := ladfile.Deserialize(data, format)
		require.NoError(t, err)

		again, err := ladfile.Serialize(decoded, format)
		require.NoError(t, err)
		assert.Equal(t, string(data), string(again), format)
	}
}

func TestSourceDocsFillMissingDocs(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	docs, err := registry.LoadDocs("github.com/teranos/lad/prelude")
	require.NoError(t, err)
	assert.Equal(t, "Length returns the euclidean length of the vector.", docs[pkg+"Vec3.Length"])

	assert.Positive(t, reg.ApplyDocs(docs))

	file, _ := Populate(builder.New(reg), reg).Build()

	vec3, _ := file.Types.Get(pkg + "Vec3")
	assert.Equal(t, "Vec3 is a three dimensional vector.", vec3.Documentation)

	world, _ := file.Types.Get(ladfile.WorldTypeID)
	assert.Equal(t, "The world holds every entity and its components.", world.Documentation)

	length, _ := file.Functions.Get(pkg + "Vec3::Length")
	assert.Equal(t, "Length returns the euclidean length of the vector.", length.Documentation)
}

func TestVec3(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, Vec3{X: 6, Y: 8}, v.Scale(2))
	assert.Equal(t, Vec3{X: 4, Y: 4, Z: 1}, v.Add(Vec3{X: 1, Z: 1}))
	assert.Equal(t, uint64(1)<<32|7, Entity{Index: 7, Generation: 1}.ToBits())
}
