package builder

import (
	"github.com/teranos/lad/ladfile"
	"github.com/teranos/lad/logger"
	"github.com/teranos/lad/registry"
)

// FunctionIDOf returns the id of a function: "<namespace id>::<name>",
// with an empty namespace id for globals.
func FunctionIDOf(ns ladfile.Namespace, name string) ladfile.FunctionID {
	return ladfile.FunctionID(string(ns.Type) + "::" + name)
}

// AddFunctionInfo records a function, replacing any earlier entry with the
// same id. Argument and return types that are registered are added to the
// file as well. Argument documentation comes from the Arguments section of
// the function's docstring.
func (b *Builder) AddFunctionInfo(fn registry.FunctionInfo) *Builder {
	ns := ladfile.GlobalNamespace()
	if !fn.IsGlobal() {
		ns = ladfile.OnType(b.ResolveID(fn.Namespace))
	}
	id := FunctionIDOf(ns, fn.Name)

	docs, argDocs, retDoc := SplitDocstring(fn.Docs)

	args := make([]ladfile.Argument, len(fn.Args))
	for i, a := range fn.Args {
		args[i] = ladfile.Argument{
			Kind:          b.argumentKind(a),
			Name:          a.Name,
			Documentation: docFor(argDocs, a.Name),
		}
	}

	ret := ladfile.Argument{Kind: b.argumentKind(fn.Return), Name: fn.Return.Name}
	if retDoc != nil {
		if ret.Name == "" {
			ret.Name = retDoc.Name
		}
		ret.Documentation = retDoc.Text
	}

	b.file.Functions.Set(id, ladfile.Function{
		Identifier:    fn.Name,
		Arguments:     args,
		Return:        ret,
		Documentation: docs,
		Namespace:     ns,
	})
	b.log.Debugw("added function", logger.FieldFunctionID, string(id))
	return b
}

// AddFunctions records every function in order.
func (b *Builder) AddFunctions(fns ...registry.FunctionInfo) *Builder {
	for _, fn := range fns {
		b.AddFunctionInfo(fn)
	}
	return b
}

func (b *Builder) argumentKind(a registry.ArgInfo) ladfile.TypeKind {
	if a.Through == nil {
		return ladfile.KindUnknown{Type: b.ResolveID(a.Type)}
	}
	b.RegisterNested(a.Through)
	return b.TypeKindOf(a.Through)
}

func docFor(docs []DocPair, name string) string {
	if name == "" {
		return ""
	}
	for _, d := range docs {
		if d.Name == name {
			return d.Text
		}
	}
	return ""
}
