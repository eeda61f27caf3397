package ladfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Diff lists the differences between two LAD files, one line each. The
// version stamp is ignored; ordering differences are reported once per
// mapping. Equal files give an empty list.
func Diff(before, after *File) []string {
	before, after = orEmpty(before), orEmpty(after)

	var diffs []string
	if before.Description != after.Description {
		diffs = append(diffs, fmt.Sprintf("description changed: %q -> %q", before.Description, after.Description))
	}
	diffs = append(diffs, diffMaps("type", before.Types, after.Types)...)
	diffs = append(diffs, diffMaps("function", before.Functions, after.Functions)...)
	diffs = append(diffs, diffMaps("primitive", before.Primitives, after.Primitives)...)
	diffs = append(diffs, diffMaps("global", before.Globals, after.Globals)...)
	return diffs
}

func orEmpty(f *File) *File {
	if f == nil {
		f = &File{}
	}
	f.normalize()
	return f
}

func diffMaps[K comparable, V any](what string, before, after *orderedmap.OrderedMap[K, V]) []string {
	var diffs []string
	var common []K

	for pair := before.Oldest(); pair != nil; pair = pair.Next() {
		v, ok := after.Get(pair.Key)
		if !ok {
			diffs = append(diffs, fmt.Sprintf("%s %v removed", what, pair.Key))
			continue
		}
		common = append(common, pair.Key)
		if !sameValue(pair.Value, v) {
			diffs = append(diffs, fmt.Sprintf("%s %v changed", what, pair.Key))
		}
	}

	var order []K
	for pair := after.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := before.Get(pair.Key); !ok {
			diffs = append(diffs, fmt.Sprintf("%s %v added", what, pair.Key))
			continue
		}
		order = append(order, pair.Key)
	}

	if !slices.Equal(common, order) {
		diffs = append(diffs, fmt.Sprintf("%s order changed", what))
	}
	return diffs
}

// sameValue compares through the wire form, which is what consumers see.
func sameValue[V any](a, b V) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}
