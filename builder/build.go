package builder

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/logger"
	"github.com/teranos/lad/registry"
)

// Warning is a non-fatal problem found while building.
type Warning struct {
	Function ladfile.FunctionID
	Type     ladfile.TypeID
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Function, w.Message)
}

// Build finishes the file and returns it with any warnings.
//
// Build runs, in order: exclusion of registered types that reach
// unregistered ones (when enabled), linking of functions to the types they
// are attached to, and sorting (when enabled). The builder starts over with
// an empty file afterwards; the id cache is kept.
func (b *Builder) Build() (*ladfile.File, []Warning) {
	file := b.file
	b.file = b.newFile()

	log := logger.ChildLogger(b.log, logger.FieldBuildID, uuid.NewString())

	excluded := 0
	if b.excludeUnregistered {
		excluded = b.excludeUnregisteredTypes(file)
	}
	warnings := linkFunctions(file)
	for _, w := range warnings {
		log.Warnw("function attached to a type missing from the file",
			logger.FieldFunctionID, string(w.Function),
			logger.FieldTypeID, string(w.Type))
	}
	if b.sorted {
		sortFile(file)
	}

	log.Infow("built LAD file",
		logger.FieldVersion, file.Version,
		logger.FieldTypes, file.Types.Len(),
		logger.FieldFunctions, file.Functions.Len(),
		logger.FieldPrimitives, file.Primitives.Len(),
		logger.FieldGlobals, file.Globals.Len(),
		logger.FieldExcluded, excluded,
		logger.FieldWarnings, len(warnings))
	return file, warnings
}

// excludeUnregisteredTypes removes every registered type that reaches a
// type which is neither a primitive nor registered. It returns the number
// of types removed.
func (b *Builder) excludeUnregisteredTypes(file *ladfile.File) int {
	removed := 0
	for _, t := range b.registry.Types() {
		if !b.reachesUnregistered(t, make(map[ladfile.TypeID]struct{})) {
			continue
		}
		id := b.ResolveID(t)
		if _, ok := file.Types.Delete(id); ok {
			removed++
			b.log.Debugw("excluded type reaching unregistered types", logger.FieldTypeID, string(id))
		}
	}
	return removed
}

// reachesUnregistered walks type arguments, element types and map keys and
// values. A type already on the path is not entered again.
func (b *Builder) reachesUnregistered(t reflect.Type, visited map[ladfile.TypeID]struct{}) bool {
	if t == nil {
		return false
	}
	if _, ok := PrimitiveKindOf(t); ok {
		return false
	}
	id := b.ResolveID(t)
	if _, seen := visited[id]; seen {
		return false
	}
	visited[id] = struct{}{}

	info, ok := b.registry.Lookup(t)
	if !ok {
		return true
	}

	for _, g := range info.Generics {
		if b.reachesUnregistered(g.Type, visited) {
			return true
		}
	}
	switch info.Shape {
	case registry.ShapeList, registry.ShapeArray, registry.ShapeOption:
		return b.reachesUnregistered(info.Elem, visited)
	case registry.ShapeMap:
		return b.reachesUnregistered(info.Key, visited) || b.reachesUnregistered(info.Elem, visited)
	}
	return false
}

// linkFunctions fills in the associated functions of every type. Functions
// attached to a type that is not in the file produce a warning.
func linkFunctions(file *ladfile.File) []Warning {
	var warnings []Warning
	for pair := file.Functions.Oldest(); pair != nil; pair = pair.Next() {
		ns := pair.Value.Namespace
		if ns.IsGlobal() {
			continue
		}
		t, ok := file.Types.Get(ns.Type)
		if !ok {
			warnings = append(warnings, Warning{
				Function: pair.Key,
				Type:     ns.Type,
				Message:  fmt.Sprintf("type %s is not in the file", ns.Type),
			})
			continue
		}
		if slices.Contains(t.AssociatedFunctions, pair.Key) {
			continue
		}
		t.AssociatedFunctions = append(t.AssociatedFunctions, pair.Key)
		file.Types.Set(ns.Type, t)
	}
	return warnings
}

// complexity approximates how generic a type is from its path.
func complexity(path string) int {
	return strings.Count(path, "<") + strings.Count(path, "[") + strings.Count(path, ",")
}

func compareTypes(a, b *orderedmap.Pair[ladfile.TypeID, ladfile.Type]) int {
	ta, tb := a.Value, b.Value
	if c := cmp.Compare(ta.Insignificance, tb.Insignificance); c != 0 {
		return c
	}
	// Types with functions first.
	if c := compareBool(len(tb.AssociatedFunctions) > 0, len(ta.AssociatedFunctions) > 0); c != 0 {
		return c
	}
	if c := cmp.Compare(complexity(ta.Path), complexity(tb.Path)); c != 0 {
		return c
	}
	if c := cmp.Compare(ta.Identifier, tb.Identifier); c != 0 {
		return c
	}
	return compareBool(ta.Generated, tb.Generated)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func sortFile(file *ladfile.File) {
	file.Types = sortedMap(file.Types, compareTypes)
	file.Functions = sortedMap(file.Functions, func(a, b *orderedmap.Pair[ladfile.FunctionID, ladfile.Function]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	file.Primitives = sortedMap(file.Primitives, func(a, b *orderedmap.Pair[ladfile.TypeID, ladfile.Primitive]) int {
		return cmp.Compare(a.Key, b.Key)
	})
}

func sortedMap[K comparable, V any](m *orderedmap.OrderedMap[K, V], compare func(a, b *orderedmap.Pair[K, V]) int) *orderedmap.OrderedMap[K, V] {
	pairs := make([]*orderedmap.Pair[K, V], 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		pairs = append(pairs, pair)
	}
	slices.SortStableFunc(pairs, compare)

	out := orderedmap.New[K, V]()
	for _, pair := range pairs {
		out.Set(pair.Key, pair.Value)
	}
	return out
}
