// SPDX-License-Identifier: MPL-2.0

// Package enumswitch implements a go/analysis analyzer for string enum
// types declared as typed constants.
//
// A type annotated with //enumswitch:closed is a closed set: every
// expression switch whose tag has that type must list every constant of
// the type, whether or not the switch has a default clause. The member
// list is exported as a fact so switches in importing packages are
// checked too.
//
// A type annotated with //enumswitch:cue=<path> must declare exactly the
// members of the CUE disjunction at <path> in the package's *_schema.cue
// files.
package enumswitch

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Diagnostic categories.
const (
	CategoryMissingCase = "missing-case"
	CategoryCueMissing  = "cue-missing-go"
	CategoryCueExtra    = "cue-extra-go"
	CategoryCueSchema   = "cue-schema"
)

const directivePrefix = "//enumswitch:"

// Analyzer is the enumswitch analysis pass.
var Analyzer = &analysis.Analyzer{
	Name:      "enumswitch",
	Doc:       "reports switches over closed enum types that miss members, and enum types out of sync with their CUE schema",
	Run:       run,
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(ClosedEnum)},
}

type (
	// ClosedEnum is the fact exported for every //enumswitch:closed type.
	ClosedEnum struct {
		Members []Member
	}

	// Member is one constant of a closed enum.
	Member struct {
		Name  string
		Value string // constant.Value.ExactString()
	}

	annotatedType struct {
		obj     *types.TypeName
		pos     token.Pos
		closed  bool
		cuePath string
	}
)

// AFact marks ClosedEnum as an analysis fact.
func (*ClosedEnum) AFact() {}

func (f *ClosedEnum) String() string {
	names := make([]string, len(f.Members))
	for i, m := range f.Members {
		names[i] = m.Name
	}
	return "closed(" + strings.Join(names, ", ") + ")"
}

func run(pass *analysis.Pass) (any, error) {
	annotated := collectAnnotatedTypes(pass)

	local := make(map[*types.TypeName]*ClosedEnum)
	var cueTypes []annotatedType
	for _, at := range annotated {
		if at.closed {
			fact := &ClosedEnum{Members: enumMembers(pass.Pkg, at.obj)}
			pass.ExportObjectFact(at.obj, fact)
			local[at.obj] = fact
		}
		if at.cuePath != "" {
			cueTypes = append(cueTypes, at)
		}
	}

	if len(cueTypes) > 0 {
		checkCueSync(pass, cueTypes)
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.SwitchStmt)(nil)}, func(n ast.Node) {
		checkSwitch(pass, n.(*ast.SwitchStmt), local)
	})
	return nil, nil
}

// collectAnnotatedTypes returns the package's type declarations that carry
// an enumswitch directive.
func collectAnnotatedTypes(pass *analysis.Pass) []annotatedType {
	var result []annotatedType
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				obj, ok := pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				at := annotatedType{obj: obj, pos: ts.Name.Pos()}
				// A lone TypeSpec keeps its doc on the GenDecl.
				groups := []*ast.CommentGroup{ts.Doc}
				if len(gd.Specs) == 1 {
					groups = append(groups, gd.Doc)
				}
				for _, d := range directives(groups) {
					switch {
					case d == "closed":
						at.closed = true
					case strings.HasPrefix(d, "cue="):
						at.cuePath = strings.TrimPrefix(d, "cue=")
					}
				}
				if at.closed || at.cuePath != "" {
					result = append(result, at)
				}
			}
		}
	}
	return result
}

func directives(groups []*ast.CommentGroup) []string {
	var out []string
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			if d, ok := strings.CutPrefix(c.Text, directivePrefix); ok {
				out = append(out, strings.TrimSpace(d))
			}
		}
	}
	return out
}

// enumMembers returns the package-level constants of type obj, sorted by name.
func enumMembers(pkg *types.Package, obj *types.TypeName) []Member {
	var members []Member
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), obj.Type()) {
			continue
		}
		members = append(members, Member{Name: name, Value: c.Val().ExactString()})
	}
	return members
}

// closedEnumFor returns the fact for the switch tag's type, or nil when the
// type is not a closed enum.
func closedEnumFor(pass *analysis.Pass, t types.Type, local map[*types.TypeName]*ClosedEnum) *ClosedEnum {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}
	obj := named.Obj()
	if fact, ok := local[obj]; ok {
		return fact
	}
	if obj.Pkg() == nil || obj.Pkg() == pass.Pkg {
		return nil
	}
	fact := new(ClosedEnum)
	if !pass.ImportObjectFact(obj, fact) {
		return nil
	}
	return fact
}

func checkSwitch(pass *analysis.Pass, sw *ast.SwitchStmt, local map[*types.TypeName]*ClosedEnum) {
	if sw.Tag == nil {
		return
	}
	tagType := pass.TypesInfo.TypeOf(sw.Tag)
	if tagType == nil {
		return
	}
	fact := closedEnumFor(pass, tagType, local)
	if fact == nil || len(fact.Members) == 0 {
		return
	}

	covered := make(map[string]bool)
	for _, stmt := range sw.Body.List {
		cc, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}
		for _, expr := range cc.List {
			if tv, ok := pass.TypesInfo.Types[expr]; ok && tv.Value != nil {
				covered[tv.Value.ExactString()] = true
			}
		}
	}

	var missing []string
	for _, m := range fact.Members {
		if !covered[m.Value] {
			missing = append(missing, m.Name)
		}
	}
	if len(missing) == 0 {
		return
	}

	qualifier := func(p *types.Package) string { return p.Name() }
	pass.Report(analysis.Diagnostic{
		Pos:      sw.Pos(),
		Category: CategoryMissingCase,
		Message: "switch on " + types.TypeString(tagType, qualifier) +
			" is missing cases: " + strings.Join(missing, ", "),
	})
}

// stringMembers returns the string values of the type's constants.
func stringMembers(pkg *types.Package, obj *types.TypeName) map[string]bool {
	values := make(map[string]bool)
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), obj.Type()) {
			continue
		}
		switch c.Val().Kind() {
		case constant.String:
			values[constant.StringVal(c.Val())] = true
		case constant.Int:
			values[c.Val().ExactString()] = true
		}
	}
	return values
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
