package builder

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/lad/binding"
	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/registry"
	"github.com/teranos/lad/through"
)

type counter struct {
	Count uint
}

type transform struct {
	Translation [3]float32
	Scale       float32
}

type secret struct{}

type box[T any] struct {
	Value T
}

type handles []secret

type names []string

type selfRef struct{}

type coreThing struct{}

func (coreThing) LADCore() {}

type significantThing struct{}

func (significantThing) LADSignificant() {}
func (significantThing) LADGenerated()   {}

const pkg = "github.com/teranos/lad/builder."

func TestStructWithPrimitiveField(t *testing.T) {
	reg := registry.New()
	registry.Register[counter](reg)

	b := New(reg)
	b.AddType(reflect.TypeFor[counter]())
	file, warnings := b.Build()

	require.Empty(t, warnings)
	require.Equal(t, 1, file.Types.Len())

	ty, ok := file.Types.Get(pkg + "counter")
	require.True(t, ok)
	assert.Equal(t, "counter", ty.Identifier)
	assert.Equal(t, "github.com/teranos/lad/builder", ty.Module)
	assert.Equal(t, ladfile.MonoVariantLayout(ladfile.Variant{
		Kind:   ladfile.VariantStruct,
		Name:   "counter",
		Fields: []ladfile.Field{{Name: "Count", Type: "uint"}},
	}), ty.Layout)
	assert.Equal(t, InsignificanceDefault, ty.Insignificance)
	assert.False(t, ty.Generated)
}

func TestResolveID(t *testing.T) {
	reg := registry.New()
	registry.Register[transform](reg)
	b := New(reg)

	first := b.ResolveID(reflect.TypeFor[transform]())
	assert.Equal(t, ladfile.TypeID(pkg+"transform"), first)
	assert.Equal(t, first, b.ResolveID(reflect.TypeFor[transform]()))
	assert.NotEqual(t, first, b.ResolveID(reflect.TypeFor[counter]()))

	assert.Equal(t, ladfile.WorldTypeID, b.ResolveID(reflect.TypeFor[registry.World]()))
	assert.Equal(t, ladfile.TypeID("uint"), b.ResolveID(reflect.TypeFor[uint]()))
	assert.Equal(t, ladfile.TypeID("char"), b.ResolveID(reflect.TypeFor[binding.Char]()))
	assert.Equal(t, ladfile.TypeID("builder.counter"), b.ResolveID(reflect.TypeFor[counter]()))
	assert.Equal(t, ladfile.UnitTypeID, b.ResolveID(nil))
}

func TestResolveIDIsCached(t *testing.T) {
	reg := registry.New()
	b := New(reg)

	before := b.ResolveID(reflect.TypeFor[counter]())
	// Registering afterwards does not change an id already handed out.
	registry.Register[counter](reg)
	assert.Equal(t, before, b.ResolveID(reflect.TypeFor[counter]()))
}

func TestAddPrimitive(t *testing.T) {
	b := New(nil)
	b.AddPrimitive(reflect.TypeFor[counter](), "not a primitive")
	b.AddPrimitive(reflect.TypeFor[bool](), "truth")
	b.AddPrimitive(reflect.TypeFor[bool](), "truth again")

	file, _ := b.Build()
	require.Equal(t, 1, file.Primitives.Len())
	p, ok := file.Primitives.Get("bool")
	require.True(t, ok)
	assert.Equal(t, ladfile.Primitive{Kind: ladfile.PrimitiveBool, Documentation: "truth again"}, p)
}

func TestAddDefaultPrimitives(t *testing.T) {
	file, _ := New(nil).AddDefaultPrimitives().Build()

	require.Equal(t, len(ladfile.PrimitiveKinds()), file.Primitives.Len())
	for _, kind := range ladfile.PrimitiveKinds() {
		p, ok := file.Primitives.Get(kind.TypeID())
		require.True(t, ok, kind)
		assert.Equal(t, kind, p.Kind)
		assert.NotEmpty(t, p.Documentation, kind)
	}
}

func TestAddTypeOverwrites(t *testing.T) {
	reg := registry.New()
	registry.Register[transform](reg)

	b := New(reg)
	b.AddType(reflect.TypeFor[transform]())
	b.AddType(reflect.TypeFor[transform]())
	file, _ := b.Build()

	assert.Equal(t, []ladfile.TypeID{pkg + "transform"}, file.TypeIDs())
}

func TestAddTypeUnregisteredFallsBackToReflection(t *testing.T) {
	file, _ := New(nil).AddType(reflect.TypeFor[transform]()).Build()

	ty, ok := file.Types.Get("builder.transform")
	require.True(t, ok)
	assert.Equal(t, pkg+"transform", ty.Path)
	assert.Equal(t, ladfile.LayoutMonoVariant, ty.Layout.Kind)
	assert.Equal(t, []ladfile.Field{
		{Name: "Translation", Type: "[3]float32"},
		{Name: "Scale", Type: "float32"},
	}, ty.Layout.Variants[0].Fields)
}

func TestLayouts(t *testing.T) {
	reg := registry.New()
	registry.Register[transform](reg, registry.AsTuple())
	registry.Register[counter](reg, registry.WithVariants(
		registry.UnitVariant("Zero"),
		registry.TupleVariant("Exact", reflect.TypeFor[uint]()),
		registry.StructVariant("Pair", registry.Field("a", reflect.TypeFor[transform]()), registry.Field("b", reflect.TypeFor[secret]())),
	))
	registry.Register[names](reg)
	registry.Register[box[int]](reg, registry.WithGenerics(registry.Generic("T", reflect.TypeFor[int]())))

	file, _ := New(reg).AddAllTypes().Build()

	tuple, _ := file.Types.Get(pkg + "transform")
	assert.Equal(t, ladfile.MonoVariantLayout(ladfile.Variant{
		Kind:   ladfile.VariantTupleStruct,
		Name:   "transform",
		Fields: []ladfile.Field{{Type: "[3]float32"}, {Type: "float32"}},
	}), tuple.Layout)

	enum, _ := file.Types.Get(pkg + "counter")
	assert.Equal(t, ladfile.EnumLayout(
		ladfile.Variant{Kind: ladfile.VariantUnit, Name: "Zero"},
		ladfile.Variant{Kind: ladfile.VariantTupleStruct, Name: "Exact", Fields: []ladfile.Field{{Type: "uint"}}},
		ladfile.Variant{Kind: ladfile.VariantStruct, Name: "Pair", Fields: []ladfile.Field{
			{Name: "a", Type: pkg + "transform"},
			{Name: "b", Type: "builder.secret"},
		}},
	), enum.Layout)

	list, _ := file.Types.Get(pkg + "names")
	assert.Equal(t, ladfile.OpaqueLayout(), list.Layout)

	generic, ok := file.Types.Get(ladfile.TypeID(registry.PathOf(reflect.TypeFor[box[int]]())))
	require.True(t, ok)
	assert.Equal(t, "box", generic.Identifier)
	assert.Equal(t, []ladfile.GenericArgument{{Name: "T", TypeID: "int"}}, generic.Generics)
}

func TestMarkersSetInsignificance(t *testing.T) {
	reg := registry.New()
	registry.Register[coreThing](reg)
	registry.Register[significantThing](reg)
	registry.Register[counter](reg, registry.WithMarkers(registry.MarkerGenerated))

	file, _ := New(reg).AddAllTypes().Build()

	core, _ := file.Types.Get(pkg + "coreThing")
	assert.Equal(t, InsignificanceCore, core.Insignificance)
	assert.False(t, core.Generated)

	sig, _ := file.Types.Get(pkg + "significantThing")
	assert.Equal(t, InsignificanceSignificant, sig.Insignificance)
	assert.True(t, sig.Generated)

	gen, _ := file.Types.Get(pkg + "counter")
	assert.Equal(t, InsignificanceDefault, gen.Insignificance)
	assert.True(t, gen.Generated)
}

func TestAddNonReflectType(t *testing.T) {
	file, _ := New(nil).AddNonReflectType(reflect.TypeFor[box[string]](), "example.com/boxes", "A box.").Build()

	require.Equal(t, 1, file.Types.Len())
	ty := file.Types.Oldest().Value
	assert.Equal(t, "box", ty.Identifier)
	assert.Equal(t, "example.com/boxes", ty.Module)
	assert.Equal(t, "A box.", ty.Documentation)
	assert.Equal(t, ladfile.OpaqueLayout(), ty.Layout)
	assert.Equal(t, InsignificanceDefault, ty.Insignificance)
}

func TestTypeKindOf(t *testing.T) {
	reg := registry.New()
	registry.Register[transform](reg)
	b := New(reg)
	tid := ladfile.TypeID(pkg + "transform")

	tests := []struct {
		name string
		in   through.Type
		want ladfile.TypeKind
	}{
		{"primitive", through.Plain{Type: reflect.TypeFor[float64]()}, ladfile.KindPrimitive{Kind: ladfile.PrimitiveFloat64}},
		{"registered plain is unknown", through.Plain{Type: reflect.TypeFor[transform]()}, ladfile.KindUnknown{Type: tid}},
		{"unregistered", through.Plain{Type: reflect.TypeFor[secret]()}, ladfile.KindUnknown{Type: "builder.secret"}},
		{"ref", through.Ref{Type: reflect.TypeFor[transform]()}, ladfile.KindRef{Type: tid}},
		{"mut world", through.Mut{Type: reflect.TypeFor[registry.World]()}, ladfile.KindMut{Type: ladfile.WorldTypeID}},
		{"val", through.Val{Type: reflect.TypeFor[transform]()}, ladfile.KindVal{Type: tid}},
		{"vec", through.Of(reflect.TypeFor[[]binding.Ref[transform]]()), ladfile.KindVec{Elem: ladfile.KindRef{Type: tid}}},
		{"map", through.Of(reflect.TypeFor[map[string]*bool]()), ladfile.KindHashMap{
			Key:   ladfile.KindPrimitive{Kind: ladfile.PrimitiveString},
			Value: ladfile.KindOption{Elem: ladfile.KindPrimitive{Kind: ladfile.PrimitiveBool}},
		}},
		{"array", through.Of(reflect.TypeFor[[2]binding.Path]()), ladfile.KindArray{Elem: ladfile.KindPrimitive{Kind: ladfile.PrimitivePath}, Size: 2}},
		{"result", through.Result{Elem: through.Tuple{}}, ladfile.KindInteropResult{Elem: ladfile.KindTuple{Elems: []ladfile.TypeKind{}}}},
		{"union", through.Union{Elems: []through.Type{through.Plain{Type: reflect.TypeFor[int]()}, through.Val{Type: reflect.TypeFor[transform]()}}},
			ladfile.KindUnion{Elems: []ladfile.TypeKind{ladfile.KindPrimitive{Kind: ladfile.PrimitiveInt}, ladfile.KindVal{Type: tid}}}},
		{"nil", nil, ladfile.KindUnknown{Type: ladfile.UnitTypeID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.TypeKindOf(tt.in))
		})
	}
}

func TestRegisterNested(t *testing.T) {
	reg := registry.New()
	registry.Register[transform](reg)
	registry.Register[counter](reg)
	registry.Register[box[counter]](reg, registry.WithGenerics(registry.Generic("T", reflect.TypeFor[counter]())))
	registry.Register[selfRef](reg, registry.WithGenerics(registry.Generic("T", reflect.TypeFor[selfRef]())))

	b := New(reg)
	b.RegisterNested(through.Of(reflect.TypeFor[map[string][]binding.Ref[box[counter]]]()))
	b.RegisterNested(through.Of(reflect.TypeFor[[]selfRef]()))
	b.RegisterNested(through.Of(reflect.TypeFor[*secret]()))
	file, _ := b.Build()

	assert.ElementsMatch(t, []ladfile.TypeID{
		b.ResolveID(reflect.TypeFor[box[counter]]()),
		pkg + "counter",
		pkg + "selfRef",
		"builder.secret",
	}, file.TypeIDs())
}

func TestRegisterNestedDescribesUnregisteredLeaves(t *testing.T) {
	b := New(registry.New())
	b.RegisterNested(through.Vec{Elem: through.Plain{Type: reflect.TypeFor[transform]()}})
	file, _ := b.Build()

	require.Equal(t, []ladfile.TypeID{"builder.transform"}, file.TypeIDs())
	ty, _ := file.Types.Get("builder.transform")
	assert.Equal(t, pkg+"transform", ty.Path)
	assert.Equal(t, ladfile.MonoVariantLayout(ladfile.Variant{
		Kind: ladfile.VariantStruct,
		Name: "transform",
		Fields: []ladfile.Field{
			{Name: "Translation", Type: "[3]float32"},
			{Name: "Scale", Type: "float32"},
		},
	}), ty.Layout)
}

func TestAddFunctionInfo(t *testing.T) {
	reg := registry.New()
	registry.Register[transform](reg)
	registry.Register[counter](reg)
	tid := ladfile.TypeID(pkg + "transform")

	fn := registry.MustFunctionOf("translate",
		func(binding.Mut[transform], []float32, *counter) (uint, error) { return 0, nil },
		registry.OnType(reflect.TypeFor[transform]()),
		registry.WithArgNames("self", "by", "counter"),
		registry.WithFunctionDocs("Moves it.\n\nArguments:\n* `by`: offset\n* `counter` - a counter\nReturns:\n* `moved`: units moved"))

	b := New(reg)
	b.AddFunctionInfo(fn)
	b.AddFunctionInfo(registry.MustFunctionOf("print", func(string) {}))
	file, warnings := b.Build()

	translateID := ladfile.FunctionID(tid + "::translate")
	assert.Equal(t, []ladfile.FunctionID{translateID, "::print"}, file.FunctionIDs())

	got, ok := file.Functions.Get(translateID)
	require.True(t, ok)
	assert.Equal(t, ladfile.Function{
		Identifier: "translate",
		Arguments: []ladfile.Argument{
			{Kind: ladfile.KindMut{Type: tid}, Name: "self"},
			{Kind: ladfile.KindVec{Elem: ladfile.KindPrimitive{Kind: ladfile.PrimitiveFloat32}}, Name: "by", Documentation: "offset"},
			{Kind: ladfile.KindOption{Elem: ladfile.KindUnknown{Type: pkg + "counter"}}, Name: "counter", Documentation: "a counter"},
		},
		Return: ladfile.Argument{
			Kind:          ladfile.KindInteropResult{Elem: ladfile.KindPrimitive{Kind: ladfile.PrimitiveUint}},
			Name:          "moved",
			Documentation: "units moved",
		},
		Documentation: "Moves it.\n",
		Namespace:     ladfile.OnType(tid),
	}, got)

	global, _ := file.Functions.Get("::print")
	assert.True(t, global.Namespace.IsGlobal())
	assert.Equal(t, ladfile.KindTuple{Elems: []ladfile.TypeKind{}}, global.Return.Kind)

	// Both nested argument types were registered, and the function is linked.
	ty, ok := file.Types.Get(tid)
	require.True(t, ok)
	assert.Equal(t, []ladfile.FunctionID{translateID}, ty.AssociatedFunctions)
	_, ok = file.Types.Get(pkg + "counter")
	assert.True(t, ok)
	assert.Empty(t, warnings)
}

func TestArgumentWithoutThroughIsUnknown(t *testing.T) {
	b := New(nil)
	b.AddFunctionInfo(registry.FunctionInfo{
		Name: "raw",
		Args: []registry.ArgInfo{{Name: "x", Type: reflect.TypeFor[int]()}},
	})
	file, _ := b.Build()

	fn, ok := file.Functions.Get("::raw")
	require.True(t, ok)
	assert.Equal(t, ladfile.KindUnknown{Type: "int"}, fn.Arguments[0].Kind)
	assert.Equal(t, ladfile.KindUnknown{Type: ladfile.UnitTypeID}, fn.Return.Kind)
}

func TestLinkingWarnsOnMissingType(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	reg := registry.New()
	registry.Register[transform](reg)
	b := New(reg, WithLogger(zap.New(core).Sugar()))

	b.AddType(reflect.TypeFor[transform]())
	b.AddFunctionInfo(registry.MustFunctionOf("a", func() {}, registry.OnType(reflect.TypeFor[transform]())))
	b.AddFunctionInfo(registry.MustFunctionOf("a", func() {}, registry.OnType(reflect.TypeFor[transform]())))
	b.AddFunctionInfo(registry.MustFunctionOf("orphan", func() {}, registry.OnType(reflect.TypeFor[secret]())))
	file, warnings := b.Build()

	ty, _ := file.Types.Get(pkg + "transform")
	assert.Equal(t, []ladfile.FunctionID{pkg + "transform::a"}, ty.AssociatedFunctions)

	require.Len(t, warnings, 1)
	assert.Equal(t, ladfile.FunctionID("builder.secret::orphan"), warnings[0].Function)
	assert.Equal(t, ladfile.TypeID("builder.secret"), warnings[0].Type)

	entries := logs.FilterMessage("function attached to a type missing from the file").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "builder.secret::orphan", entries[0].ContextMap()["function_id"])
	assert.NotEmpty(t, entries[0].ContextMap()["build_id"])
}

func TestExcludeUnregistered(t *testing.T) {
	reg := registry.New()
	registry.Register[box[secret]](reg, registry.WithGenerics(registry.Generic("T", reflect.TypeFor[secret]())))
	registry.Register[box[int]](reg, registry.WithGenerics(registry.Generic("T", reflect.TypeFor[int]())))
	registry.Register[handles](reg)
	registry.Register[names](reg)
	registry.Register[selfRef](reg, registry.WithGenerics(registry.Generic("T", reflect.TypeFor[selfRef]())))
	registry.Register[map[string]secret](reg)

	build := func(exclude bool) *ladfile.File {
		file, _ := New(reg, WithExcludeUnregistered(exclude)).AddAllTypes().Build()
		return file
	}

	kept := build(true)
	b := New(reg)
	assert.ElementsMatch(t, []ladfile.TypeID{
		b.ResolveID(reflect.TypeFor[box[int]]()),
		pkg + "names",
		pkg + "selfRef",
	}, kept.TypeIDs())

	assert.Equal(t, 6, build(false).Types.Len())
}

func TestBuildResetsFile(t *testing.T) {
	reg := registry.New()
	registry.Register[counter](reg)
	b := New(reg, WithVersion("9.9.9"), WithDescription("test bindings"))

	first, _ := b.AddType(reflect.TypeFor[counter]()).Build()
	assert.Equal(t, 1, first.Types.Len())
	assert.Equal(t, "9.9.9", first.Version)
	assert.Equal(t, "test bindings", first.Description)

	second, _ := b.Build()
	assert.Equal(t, 0, second.Types.Len())
	assert.Equal(t, "9.9.9", second.Version)
}

func TestInstances(t *testing.T) {
	reg := registry.New()
	registry.Register[transform](reg)
	tid := ladfile.TypeID(pkg + "transform")

	file, _ := New(reg).
		AddInstance("world", reflect.TypeFor[binding.Val[registry.World]](), false).
		AddInstance("Transform", reflect.TypeFor[transform](), true).
		AddInstanceDynamic("selection", through.Vec{Elem: through.Ref{Type: reflect.TypeFor[transform]()}}, false).
		AddInstanceManually("answer", ladfile.KindPrimitive{Kind: ladfile.PrimitiveInt}, true).
		AddInstanceManually("answer", ladfile.KindPrimitive{Kind: ladfile.PrimitiveInt64}, true).
		Build()

	assert.Equal(t, []string{"world", "Transform", "selection", "answer"}, file.GlobalNames())

	world, _ := file.Globals.Get("world")
	assert.Equal(t, ladfile.Instance{Kind: ladfile.KindVal{Type: ladfile.WorldTypeID}}, world)

	static, _ := file.Globals.Get("Transform")
	assert.Equal(t, ladfile.Instance{Kind: ladfile.KindUnknown{Type: tid}, IsStatic: true}, static)

	sel, _ := file.Globals.Get("selection")
	assert.Equal(t, ladfile.KindVec{Elem: ladfile.KindRef{Type: tid}}, sel.Kind)

	answer, _ := file.Globals.Get("answer")
	assert.Equal(t, ladfile.KindPrimitive{Kind: ladfile.PrimitiveInt64}, answer.Kind)
}

func TestSortedBuild(t *testing.T) {
	reg := registry.New()
	registry.Register[transform](reg)
	registry.Register[counter](reg)

	b := New(reg, WithSorted(true))
	b.AddAllTypes()
	b.AddPrimitive(reflect.TypeFor[string](), "")
	b.AddPrimitive(reflect.TypeFor[bool](), "")
	b.AddPrimitive(reflect.TypeFor[int](), "")
	b.AddFunctionInfo(registry.MustFunctionOf("z", func() {}))
	b.AddFunctionInfo(registry.MustFunctionOf("b", func() {}, registry.OnType(reflect.TypeFor[transform]())))
	b.AddFunctionInfo(registry.MustFunctionOf("a", func() {}, registry.OnType(reflect.TypeFor[counter]())))
	file, _ := b.Build()

	functions := file.FunctionIDs()
	assert.True(t, slices.IsSorted(functions), functions)
	assert.Equal(t, ladfile.FunctionID("::z"), functions[0])

	assert.Equal(t, []ladfile.TypeID{"bool", "int", "string"}, file.PrimitiveIDs())
	assert.Equal(t, []ladfile.TypeID{pkg + "counter", pkg + "transform"}, file.TypeIDs())
}

func TestSortTypes(t *testing.T) {
	file := ladfile.New()
	add := func(id, ident string, insignificance int, generated bool, fns ...ladfile.FunctionID) {
		file.Types.Set(ladfile.TypeID(id), ladfile.Type{
			Identifier:          ident,
			Path:                id,
			Insignificance:      insignificance,
			Generated:           generated,
			AssociatedFunctions: fns,
			Layout:              ladfile.OpaqueLayout(),
		})
	}
	add("b.Box[int,string]", "Box", 1000, false)
	add("a.Plain", "Plain", 1000, false)
	add("g.Alpha", "Alpha", 1000, true)
	add("x.WithFn", "WithFn", 1000, false, "x.WithFn::f")
	add("y.Core", "Core", 500, false)
	add("a.Alpha", "Alpha", 1000, false)
	add("z.Sig", "Sig", 250, false)

	sortFile(file)

	assert.Equal(t, []ladfile.TypeID{
		"z.Sig",
		"y.Core",
		"x.WithFn",
		"a.Alpha",
		"g.Alpha",
		"a.Plain",
		"b.Box[int,string]",
	}, file.TypeIDs())
}

func TestComplexity(t *testing.T) {
	assert.Equal(t, 0, complexity("example.com/geo.Transform"))
	assert.Equal(t, 2, complexity("example.com/geo.Pair[int,string]"))
	assert.Equal(t, 3, complexity("Vec<HashMap<K, V>>"))
}

func TestBuiltFileRoundTrips(t *testing.T) {
	reg := registry.New()
	registry.Register[secret](reg)
	registry.Register[transform](reg, registry.AsTuple())
	registry.Register[counter](reg, registry.WithVariants(
		registry.UnitVariant("Zero"),
		registry.TupleVariant("Exact", reflect.TypeFor[uint]()),
		registry.StructVariant("Empty"),
	))
	registry.Register[box[counter]](reg, registry.WithGenerics(registry.Generic("T", reflect.TypeFor[counter]())))
	registry.Register[coreThing](reg)

	b := New(reg, WithSorted(true), WithDescription("round trip"))
	b.AddDefaultPrimitives().AddAllTypes()
	b.AddFunctionInfo(registry.MustFunctionOf("scale",
		func(binding.Mut[transform], map[string][]float32, *counter) ([2]uint, error) { return [2]uint{}, nil },
		registry.OnType(reflect.TypeFor[transform]()),
		registry.WithFunctionDocs("\n\nArguments:\n* `factor`: by how much")))
	b.AddFunctionInfo(registry.MustFunctionOf("noop", func() {}))
	b.AddInstance("origin", reflect.TypeFor[binding.Ref[transform]](), false)
	b.AddInstanceManually("Counter", ladfile.KindVal{Type: pkg + "counter"}, true)
	file, warnings := b.Build()
	require.Empty(t, warnings)

	for _, format := range []ladfile.Format{ladfile.FormatJSON, ladfile.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := ladfile.Serialize(file, format)
			require.NoError(t, err)
			got, err := ladfile.Deserialize(data, format)
			require.NoError(t, err)

			assert.Equal(t, file.Version, got.Version)
			assert.Equal(t, file.Description, got.Description)
			require.Equal(t, file.TypeIDs(), got.TypeIDs())
			for pair := file.Types.Oldest(); pair != nil; pair = pair.Next() {
				ty, _ := got.Types.Get(pair.Key)
				assert.Equal(t, pair.Value, ty, "type %s", pair.Key)
			}
			require.Equal(t, file.FunctionIDs(), got.FunctionIDs())
			for pair := file.Functions.Oldest(); pair != nil; pair = pair.Next() {
				fn, _ := got.Functions.Get(pair.Key)
				assert.Equal(t, pair.Value, fn, "function %s", pair.Key)
			}
			require.Equal(t, file.PrimitiveIDs(), got.PrimitiveIDs())
			for pair := file.Primitives.Oldest(); pair != nil; pair = pair.Next() {
				p, _ := got.Primitives.Get(pair.Key)
				assert.Equal(t, pair.Value, p, "primitive %s", pair.Key)
			}
			require.Equal(t, file.GlobalNames(), got.GlobalNames())
			for pair := file.Globals.Oldest(); pair != nil; pair = pair.Next() {
				g, _ := got.Globals.Get(pair.Key)
				assert.Equal(t, pair.Value, g, "global %s", pair.Key)
			}
		})
	}
}

func TestBuildLogsEntities(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	file, _ := New(nil, WithVersion("2.0.0"), WithLogger(zap.New(core).Sugar())).
		AddPrimitive(reflect.TypeFor[bool](), "").
		AddInstanceManually("answer", ladfile.KindPrimitive{Kind: ladfile.PrimitiveInt}, true).
		Build()
	require.Equal(t, 1, file.Globals.Len())

	primitive := logs.FilterMessage("added primitive").All()
	require.Len(t, primitive, 1)
	assert.Equal(t, "bool", primitive[0].ContextMap()["primitive"])

	global := logs.FilterMessage("added global").All()
	require.Len(t, global, 1)
	assert.Equal(t, "answer", global[0].ContextMap()["global"])

	summary := logs.FilterMessage("built LAD file").All()
	require.Len(t, summary, 1)
	assert.Equal(t, "2.0.0", summary[0].ContextMap()["version"])
	assert.EqualValues(t, 1, summary[0].ContextMap()["globals"])
}
