// SPDX-License-Identifier: MPL-2.0

package enumswitch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/tools/go/analysis"
)

func checkCueSync(pass *analysis.Pass, annotated []annotatedType) {
	schema, filename, err := packageSchema(pass)
	if err == nil && schema == nil {
		err = fmt.Errorf("no *_schema.cue file in package %s", pass.Pkg.Path())
	}
	if err != nil {
		for _, at := range annotated {
			pass.Report(analysis.Diagnostic{
				Pos:      at.pos,
				Category: CategoryCueSchema,
				Message:  fmt.Sprintf("type %s: %v", at.obj.Name(), err),
			})
		}
		return
	}

	root := cuecontext.New().CompileBytes(schema, cue.Filename(filename))
	if root.Err() != nil {
		for _, at := range annotated {
			pass.Report(analysis.Diagnostic{
				Pos:      at.pos,
				Category: CategoryCueSchema,
				Message:  fmt.Sprintf("type %s: compiling CUE schema: %v", at.obj.Name(), root.Err()),
			})
		}
		return
	}

	for _, at := range annotated {
		target, err := lookup(root, at.cuePath)
		if err != nil {
			pass.Report(analysis.Diagnostic{
				Pos:      at.pos,
				Category: CategoryCueSchema,
				Message:  fmt.Sprintf("type %s: CUE path %s: %v", at.obj.Name(), at.cuePath, err),
			})
			continue
		}

		cueMembers := make(map[string]bool)
		collectDisjunction(target, cueMembers)
		goMembers := stringMembers(pass.Pkg, at.obj)

		for _, v := range sortedKeys(cueMembers) {
			if !goMembers[v] {
				pass.Report(analysis.Diagnostic{
					Pos:      at.pos,
					Category: CategoryCueMissing,
					Message:  fmt.Sprintf("type %s: CUE member %q (at %s) has no Go constant", at.obj.Name(), v, at.cuePath),
				})
			}
		}
		for _, v := range sortedKeys(goMembers) {
			if !cueMembers[v] {
				pass.Report(analysis.Diagnostic{
					Pos:      at.pos,
					Category: CategoryCueExtra,
					Message:  fmt.Sprintf("type %s: Go constant %q is not in CUE disjunction at %s", at.obj.Name(), v, at.cuePath),
				})
			}
		}
	}
}

// packageSchema concatenates the package's *_schema.cue files, without their
// package clauses. Returns a nil slice when there are none.
func packageSchema(pass *analysis.Pass) ([]byte, string, error) {
	var dir string
	for _, file := range pass.Files {
		if name := pass.Fset.Position(file.Pos()).Filename; name != "" {
			dir = filepath.Dir(name)
			break
		}
	}
	if dir == "" {
		return nil, "", nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("reading package directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), "_schema.cue") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, "", nil
	}
	sort.Strings(names)

	var combined []byte
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", name, err)
		}
		for line := range bytes.SplitSeq(data, []byte("\n")) {
			if bytes.HasPrefix(bytes.TrimSpace(line), []byte("package ")) {
				continue
			}
			combined = append(combined, line...)
			combined = append(combined, '\n')
		}
	}
	return combined, filepath.Join(dir, names[0]), nil
}

// lookup resolves a dotted path such as #UIConfig.color_scheme, following
// optional fields and definition references.
func lookup(root cue.Value, path string) (cue.Value, error) {
	if v := root.LookupPath(cue.ParsePath(path)); v.Err() == nil && v.Exists() {
		return v, nil
	}

	current := root
	for part := range strings.SplitSeq(path, ".") {
		next := current.LookupPath(cue.ParsePath(part))
		if next.Err() == nil && next.Exists() {
			current = next
			continue
		}

		label := strings.TrimSuffix(part, "?")
		found := false
		iter, err := current.Fields(cue.Optional(true), cue.Definitions(true))
		if err != nil {
			return cue.Value{}, err
		}
		for iter.Next() {
			if strings.TrimSuffix(iter.Selector().String(), "?") == label {
				current = iter.Value()
				found = true
				break
			}
		}
		if !found {
			return cue.Value{}, fmt.Errorf("field %q not found", part)
		}
	}
	return current, nil
}

func collectDisjunction(v cue.Value, out map[string]bool) {
	if op, args := v.Expr(); op == cue.OrOp && len(args) >= 2 {
		for _, arg := range args {
			collectDisjunction(arg, out)
		}
		return
	}
	if s, err := v.String(); err == nil {
		out[s] = true
		return
	}
	if i, err := v.Int64(); err == nil {
		out[strconv.FormatInt(i, 10)] = true
	}
}
