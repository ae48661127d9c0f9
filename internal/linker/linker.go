// Package linker resolves every type name referenced by a file's
// declarations against the whole import graph and assembles the bundle the
// code emitter consumes. Reference failures are aggregated, never
// short-circuited; structural defects of the graph fail fast.
package linker

import (
	"sort"

	"github.com/blossom-graphql/blossom/errors"
	"github.com/blossom-graphql/blossom/internal/loader"
	"github.com/blossom-graphql/blossom/types"
)

// ParsedFile pairs a loaded source file with its declaration dictionary.
type ParsedFile struct {
	Source     *loader.SourceFile
	Dictionary *types.Dictionary
}

// FileSet is the completed graph after the parse phase. It must not be
// mutated once linking starts; multiple targets may then be linked against
// it concurrently without locking.
type FileSet map[string]*ParsedFile

// namespace restricts a presence probe to the declaration kinds a
// referencing declaration may legally name.
type namespace int

const (
	// object fields may reference objects, enums and unions
	nsObject namespace = iota
	// input fields may reference inputs and enums only
	nsInput
)

type presence int

const (
	notPresent presence = iota
	present
	invalid
)

// probe checks one file's dictionary for name under the namespace rule. A
// hit in the wrong namespace is definitive: the reference is invalid, not
// merely unresolved.
func probe(d *types.Dictionary, name string, ns namespace) presence {
	switch ns {
	case nsObject:
		if _, ok := d.Objects[name]; ok {
			return present
		}
		if _, ok := d.Enums[name]; ok {
			return present
		}
		if _, ok := d.Unions[name]; ok {
			return present
		}
		if _, ok := d.Inputs[name]; ok {
			return invalid
		}
	case nsInput:
		if _, ok := d.Inputs[name]; ok {
			return present
		}
		if _, ok := d.Enums[name]; ok {
			return present
		}
		if _, ok := d.Objects[name]; ok {
			return invalid
		}
		if _, ok := d.Unions[name]; ok {
			return invalid
		}
	}
	return notPresent
}

type linker struct {
	path    string
	file    *ParsedFile
	files   FileSet
	imports map[string]map[string]bool // source path -> imported names
	caps    types.Capabilities
}

// Link resolves every reference made by the declarations of the target file
// and produces its bundle. All reference failures are gathered into a single
// LinkingError; schema and operation collisions abort immediately.
func Link(path string, files FileSet) (*types.Bundle, error) {
	file, ok := files[path]
	if !ok {
		return nil, errors.Errorf(errors.FileNotFoundInGraph, "%q is not part of the resolved graph", path).WithFile(path)
	}
	if err := checkSchemaBlocks(files); err != nil {
		return nil, err
	}

	l := &linker{
		path:    path,
		file:    file,
		files:   files,
		imports: make(map[string]map[string]bool),
	}

	dict := file.Dictionary
	bundle := &types.Bundle{Path: path}
	var defects []errors.Defect

	// operation roots are emitted as signatures, not as plain objects
	rootTypes := make(map[string]bool, len(dict.Operations))
	for _, typeName := range dict.Operations {
		rootTypes[typeName] = true
	}

	index := 0
	collect := func(declaration string, errs []error) {
		for _, err := range errs {
			defects = append(defects, errors.Defect{Index: index, Declaration: declaration, Err: err})
		}
		index++
	}

	for _, name := range sortedKeys(dict.Objects) {
		obj := dict.Objects[name]
		collect(name, l.resolveAll(obj.References, nsObject))
		if !rootTypes[name] {
			bundle.Objects = append(bundle.Objects, obj)
		}
		for _, f := range obj.Fields {
			l.scanCaps(f)
		}
	}
	for _, name := range sortedKeys(dict.Inputs) {
		input := dict.Inputs[name]
		collect(name, l.resolveAll(input.References, nsInput))
		bundle.Inputs = append(bundle.Inputs, input)
		for _, f := range input.Fields {
			l.scanCaps(f)
		}
	}
	for _, name := range sortedKeys(dict.Unions) {
		union := dict.Unions[name]
		collect(name, l.resolveAll(union.References, nsObject))
		bundle.Unions = append(bundle.Unions, union)
	}
	for _, name := range sortedKeys(dict.Enums) {
		bundle.Enums = append(bundle.Enums, dict.Enums[name])
	}

	for _, role := range []types.Operation{types.Query, types.Mutation} {
		typeName, ok := dict.Operations[role]
		if !ok {
			continue
		}
		obj, err := l.resolveRootObject(typeName)
		if err != nil {
			collect(typeName, []error{err})
			continue
		}
		sig := &types.OperationSignature{Operation: role, TypeName: typeName}
		for _, f := range obj.Fields {
			// root fields are always asynchronous entry points
			af := *f
			af.Thunk = types.ThunkAsync
			sig.Fields = append(sig.Fields, &af)
			l.scanCaps(&af)
		}
		bundle.Operations = append(bundle.Operations, sig)
		index++
	}

	if len(defects) > 0 {
		return nil, &errors.LinkingError{File: path, Defects: defects}
	}

	bundle.Imports = l.crossImports()
	bundle.Capabilities = l.caps
	return bundle, nil
}

// resolveAll runs the tiered lookup for every name in a declaration's work
// list, in sorted order, collecting failures instead of stopping at the
// first one.
func (l *linker) resolveAll(refs map[string]bool, ns namespace) []error {
	var errs []error
	for _, name := range sortedKeys(refs) {
		if _, err := l.resolve(name, ns); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// resolve is the three-tier presence lookup: the file's own dictionary,
// then explicit import members, then wildcard imports in declaration order.
// The first definitive answer wins. It returns the defining file's path and
// records the cross-file import when tiers two or three succeed.
func (l *linker) resolve(name string, ns namespace) (string, error) {
	switch probe(l.file.Dictionary, name, ns) {
	case present:
		return l.path, nil
	case invalid:
		return "", errors.Errorf(errors.InvalidReference, "%q cannot be referenced from this position", name).
			WithName(name).WithFile(l.path)
	}

	for _, imp := range l.file.Source.Manifest.Imports {
		if imp.All || !imp.Has(name) {
			continue
		}
		target, ok := l.files[imp.Path]
		if !ok {
			return "", errors.Errorf(errors.FileNotFoundInGraph, "imported file %q is not in the graph", imp.Path).
				WithName(name).WithFile(imp.Path)
		}
		switch probe(target.Dictionary, name, ns) {
		case present:
			l.recordImport(imp.Path, name)
			return imp.Path, nil
		case invalid:
			return "", errors.Errorf(errors.InvalidReference, "%q in %q cannot be referenced from this position", name, imp.Path).
				WithName(name).WithFile(imp.Path)
		}
	}

	for _, imp := range l.file.Source.Manifest.Imports {
		if !imp.All {
			continue
		}
		target, ok := l.files[imp.Path]
		if !ok {
			return "", errors.Errorf(errors.FileNotFoundInGraph, "imported file %q is not in the graph", imp.Path).
				WithName(name).WithFile(imp.Path)
		}
		switch probe(target.Dictionary, name, ns) {
		case present:
			l.recordImport(imp.Path, name)
			return imp.Path, nil
		case invalid:
			return "", errors.Errorf(errors.InvalidReference, "%q in %q cannot be referenced from this position", name, imp.Path).
				WithName(name).WithFile(imp.Path)
		}
	}

	return "", errors.Errorf(errors.ReferenceNotFound, "no declaration found for %q", name).
		WithName(name).WithFile(l.path)
}

// resolveRootObject resolves an operation root, which must land on an
// object declaration; enums, unions and inputs are invalid in root position.
func (l *linker) resolveRootObject(name string) (*types.ObjectType, error) {
	from, err := l.resolve(name, nsObject)
	if err != nil {
		return nil, err
	}
	obj, ok := l.files[from].Dictionary.Objects[name]
	if !ok {
		return nil, errors.Errorf(errors.InvalidReference, "operation root %q is not an object type", name).
			WithName(name).WithFile(from)
	}
	return obj, nil
}

func (l *linker) recordImport(path, name string) {
	if path == l.path {
		return
	}
	names, ok := l.imports[path]
	if !ok {
		names = make(map[string]bool)
		l.imports[path] = names
	}
	names[name] = true
}

func (l *linker) crossImports() []*types.CrossImport {
	if len(l.imports) == 0 {
		return nil
	}
	imports := make([]*types.CrossImport, 0, len(l.imports))
	for _, path := range sortedKeys(l.imports) {
		imports = append(imports, &types.CrossImport{Path: path, Names: sortedKeys(l.imports[path])})
	}
	return imports
}

// scanCaps derives the runtime capability flags from one field, including
// its array element and arguments.
func (l *linker) scanCaps(f *types.Field) {
	if !f.Required {
		l.caps.NeedsOptional = true
	}
	if f.Thunk != types.ThunkNone {
		l.caps.NeedsContext = true
	}
	if f.Element != nil {
		l.scanCaps(f.Element)
	}
	for _, arg := range f.Arguments {
		l.scanCaps(arg)
	}
}

// checkSchemaBlocks enforces the structural invariants of the whole graph:
// at most one schema block, and each operation role defined at most once.
func checkSchemaBlocks(files FileSet) error {
	var schemaFile string
	roles := make(map[types.Operation]string)
	for _, path := range sortedKeys(files) {
		dict := files[path].Dictionary
		if dict.HasSchema {
			if schemaFile != "" {
				return errors.Errorf(errors.SchemaCollision, "schema block defined in both %q and %q", schemaFile, path).
					WithFile(path)
			}
			schemaFile = path
		}
		for role := range dict.Operations {
			if prev, ok := roles[role]; ok {
				return errors.Errorf(errors.OperationTypeCollision, "%s operation defined in both %q and %q", role, prev, path).
					WithName(string(role)).WithFile(path)
			}
			roles[role] = path
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

