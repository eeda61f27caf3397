package registry

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/lad/errors"
)

// LoadDocs reads Go doc comments for the types and methods declared in the
// packages matching patterns. Keys are "pkgpath.Type" for types and
// "pkgpath.Type.Method" for methods.
//
// reflect carries no documentation, so hosts that want their Go comments in
// the LAD file load them from source and pass the result to ApplyDocs.
func LoadDocs(patterns ...string) (map[string]string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load packages %v", patterns)
	}
	if len(pkgs) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "no packages found for %v", patterns)
	}

	docs := make(map[string]string)
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.Newf("package %s: %v", pkg.PkgPath, pkg.Errors)
		}
		for key, doc := range extractDocs(pkg.PkgPath, pkg.Syntax) {
			docs[key] = doc
		}
	}
	return docs, nil
}

// extractDocs collects doc comments of exported types and methods.
func extractDocs(pkgPath string, files []*ast.File) map[string]string {
	docs := make(map[string]string)

	for _, file := range files {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					ts := spec.(*ast.TypeSpec)
					if !ts.Name.IsExported() {
						continue
					}
					// A lone spec keeps its comment on the GenDecl
					doc := ts.Doc
					if doc == nil && len(d.Specs) == 1 {
						doc = d.Doc
					}
					if text := strings.TrimSpace(doc.Text()); text != "" {
						docs[pkgPath+"."+ts.Name.Name] = text
					}
				}

			case *ast.FuncDecl:
				if d.Recv == nil || len(d.Recv.List) == 0 || !d.Name.IsExported() {
					continue
				}
				recv := receiverName(d.Recv.List[0].Type)
				if recv == "" {
					continue
				}
				if text := strings.TrimSpace(d.Doc.Text()); text != "" {
					docs[pkgPath+"."+recv+"."+d.Name.Name] = text
				}
			}
		}
	}
	return docs
}

// receiverName returns the base type name of a method receiver expression.
func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	default:
		return ""
	}
}
