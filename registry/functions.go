package registry

import (
	"reflect"

	"github.com/teranos/lad/errors"
	"github.com/teranos/lad/through"
)

// ArgInfo describes one argument or the return value of a function.
type ArgInfo struct {
	Name string
	// Type is the declared Go type; nil for "no value".
	Type reflect.Type
	// Through is how the value crosses the boundary, when known.
	Through through.Type
}

// FunctionInfo describes a function exposed to scripts.
type FunctionInfo struct {
	Name string
	// Namespace is the type the function is attached to; nil for globals.
	Namespace reflect.Type
	Args      []ArgInfo
	Return    ArgInfo
	Docs      string
}

// IsGlobal reports whether the function lives in the global namespace.
func (f FunctionInfo) IsGlobal() bool { return f.Namespace == nil }

// FunctionOption adjusts a FunctionInfo derived by FunctionOf.
type FunctionOption func(*FunctionInfo)

// OnType attaches the function to a type.
func OnType(t reflect.Type) FunctionOption {
	return func(f *FunctionInfo) { f.Namespace = t }
}

// WithArgNames names arguments positionally. Extra names are ignored.
func WithArgNames(names ...string) FunctionOption {
	return func(f *FunctionInfo) {
		for i := range f.Args {
			if i < len(names) {
				f.Args[i].Name = names[i]
			}
		}
	}
}

// WithFunctionDocs sets the raw doc string, which may carry Arguments and
// Returns sections.
func WithFunctionDocs(docs string) FunctionOption {
	return func(f *FunctionInfo) { f.Docs = docs }
}

// FunctionOf derives a FunctionInfo from a Go func value. Argument and
// result through types come from through.Of and through.OfResults; a
// trailing error result becomes an InteropResult.
func FunctionOf(name string, fn any, opts ...FunctionOption) (FunctionInfo, error) {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		return FunctionInfo{}, errors.Newf("function %s: expected a func value, got %T", name, fn)
	}

	info := FunctionInfo{Name: name}
	for i := 0; i < ft.NumIn(); i++ {
		in := ft.In(i)
		info.Args = append(info.Args, ArgInfo{Type: in, Through: through.Of(in)})
	}

	results := make([]reflect.Type, ft.NumOut())
	for i := range results {
		results[i] = ft.Out(i)
	}
	info.Return = ArgInfo{Through: through.OfResults(results)}
	if len(results) == 1 {
		info.Return.Type = results[0]
	}

	for _, opt := range opts {
		opt(&info)
	}
	return info, nil
}

// MustFunctionOf is FunctionOf for static registrations; it panics when fn
// is not a func.
func MustFunctionOf(name string, fn any, opts ...FunctionOption) FunctionInfo {
	info, err := FunctionOf(name, fn, opts...)
	if err != nil {
		panic(err)
	}
	return info
}
