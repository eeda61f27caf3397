package binding

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec3 struct{ X, Y, Z float32 }

func TestAsWrapper(t *testing.T) {
	tests := []struct {
		name  string
		typ   reflect.Type
		kind  WrapperKind
		inner reflect.Type
	}{
		{"ref", reflect.TypeFor[Ref[vec3]](), WrapperRef, reflect.TypeFor[vec3]()},
		{"mut", reflect.TypeFor[Mut[vec3]](), WrapperMut, reflect.TypeFor[vec3]()},
		{"val", reflect.TypeFor[Val[string]](), WrapperVal, reflect.TypeFor[string]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := AsWrapper(tt.typ)
			require.True(t, ok)
			assert.Equal(t, tt.kind, w.WrapperKind())
			assert.Equal(t, tt.inner, w.Inner())
		})
	}
}

func TestAsWrapperRejectsPlainTypes(t *testing.T) {
	for _, typ := range []reflect.Type{nil, reflect.TypeFor[vec3](), reflect.TypeFor[int](), reflect.TypeFor[*Ref[vec3]]()} {
		_, ok := AsWrapper(typ)
		assert.False(t, ok, "%v", typ)
	}
}

func TestWrapperKindString(t *testing.T) {
	assert.Equal(t, "Ref", WrapperRef.String())
	assert.Equal(t, "Mut", WrapperMut.String())
	assert.Equal(t, "Val", WrapperVal.String())
	assert.Equal(t, "Unknown", WrapperKind(9).String())
}

func TestReferenceID(t *testing.T) {
	assert.Equal(t, uint64(42), NewReference(42).ID())
}
