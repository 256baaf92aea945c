// Package kindswitch defines an Analyzer that reports switch statements
// over variant.Kind that neither handle every kind nor have a default
// clause.
package kindswitch

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `check that switches over variant.Kind are exhaustive

A switch whose tag is of type Kind from a package named variant must
either list every exported Kind constant or have a default clause.`

var Analyzer = &analysis.Analyzer{
	Name:     "kindswitch",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.SwitchStmt)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		sw := n.(*ast.SwitchStmt)
		if sw.Tag == nil {
			return
		}
		kind := kindType(pass.TypesInfo.TypeOf(sw.Tag))
		if kind == nil {
			return
		}

		seen := make(map[string]bool)
		for _, stmt := range sw.Body.List {
			clause := stmt.(*ast.CaseClause)
			if clause.List == nil {
				return // default
			}
			for _, expr := range clause.List {
				if tv, ok := pass.TypesInfo.Types[expr]; ok && tv.Value != nil {
					seen[tv.Value.ExactString()] = true
				}
			}
		}

		var missing []string
		for _, c := range kindConstants(kind) {
			if !seen[c.Val().ExactString()] {
				missing = append(missing, c.Name())
			}
		}
		if len(missing) > 0 {
			obj := kind.Obj()
			pass.Reportf(sw.Pos(), "missing cases in switch of type %s.%s: %s",
				obj.Pkg().Name(), obj.Name(), strings.Join(missing, ", "))
		}
	})
	return nil, nil
}

// kindType returns t if it is the Kind type of a variant package.
func kindType(t types.Type) *types.Named {
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}
	obj := named.Obj()
	if obj.Name() != "Kind" || obj.Pkg() == nil {
		return nil
	}
	if path := obj.Pkg().Path(); path != "variant" && !strings.HasSuffix(path, "/variant") {
		return nil
	}
	return named
}

// kindConstants returns the exported constants of type kind, sorted by
// name.
func kindConstants(kind *types.Named) []*types.Const {
	scope := kind.Obj().Pkg().Scope()

	var consts []*types.Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() || !types.Identical(c.Type(), kind) {
			continue
		}
		consts = append(consts, c)
	}
	return consts
}
