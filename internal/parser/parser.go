// Package parser turns one file's already-parsed SDL syntax tree into its
// intermediate declaration dictionary. The grammar itself is handled by
// gqlparser; import directives are comments at this level and have already
// been collected by the loader.
package parser

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/blossom-graphql/blossom/errors"
	"github.com/blossom-graphql/blossom/types"
)

// Parse walks the top-level declarations of one file once, bucketing each
// into the matching map by its declared name. Unions, enums, object types,
// input types and at most one schema block are recognized; anything else is
// a forward-compatible no-op. A later declaration with the same name
// replaces the earlier one; the shadowed name is recorded in Duplicates.
func Parse(path string, doc *ast.SchemaDocument) (*types.Dictionary, error) {
	dict := types.NewDictionary()

	for _, def := range doc.Definitions {
		switch def.Kind {
		case ast.Object:
			obj := parseObject(def)
			if _, ok := dict.Objects[obj.Name]; ok {
				dict.Duplicates = append(dict.Duplicates, types.Duplicate{Kind: "type", Name: obj.Name})
			}
			dict.Objects[obj.Name] = obj
		case ast.InputObject:
			input := parseInput(def)
			if _, ok := dict.Inputs[input.Name]; ok {
				dict.Duplicates = append(dict.Duplicates, types.Duplicate{Kind: "input", Name: input.Name})
			}
			dict.Inputs[input.Name] = input
		case ast.Enum:
			enum := parseEnum(def)
			if _, ok := dict.Enums[enum.Name]; ok {
				dict.Duplicates = append(dict.Duplicates, types.Duplicate{Kind: "enum", Name: enum.Name})
			}
			dict.Enums[enum.Name] = enum
		case ast.Union:
			union := parseUnion(def)
			if _, ok := dict.Unions[union.Name]; ok {
				dict.Duplicates = append(dict.Duplicates, types.Duplicate{Kind: "union", Name: union.Name})
			}
			dict.Unions[union.Name] = union
		default:
			// scalar, interface and extension declarations are not part of
			// the intermediate form
		}
	}

	for _, sd := range doc.Schema {
		if dict.HasSchema {
			err := errors.Errorf(errors.SchemaCollision, "second schema block").WithFile(path)
			if sd.Position != nil {
				err = err.WithLocation(sd.Position.Line, sd.Position.Column)
			}
			return nil, err
		}
		dict.HasSchema = true
		for _, op := range sd.OperationTypes {
			switch op.Operation {
			case ast.Query, ast.Mutation:
			default:
				err := errors.Errorf(errors.UnsupportedOperation, "unsupported operation %q in schema block", op.Operation).
					WithName(string(op.Operation)).WithFile(path)
				if op.Position != nil {
					err = err.WithLocation(op.Position.Line, op.Position.Column)
				}
				return nil, err
			}
			role := types.Operation(op.Operation)
			if _, ok := dict.Operations[role]; ok {
				return nil, errors.Errorf(errors.OperationTypeCollision, "%s operation provided more than once", role).
					WithName(string(role)).WithFile(path)
			}
			dict.Operations[role] = op.Type
		}
	}

	return dict, nil
}

func parseObject(def *ast.Definition) *types.ObjectType {
	obj := &types.ObjectType{
		Name:       def.Name,
		Desc:       def.Description,
		References: make(map[string]bool),
	}
	for _, f := range def.Fields {
		obj.Fields = append(obj.Fields, normalizeFieldDef(f, obj.References))
	}
	return obj
}

func parseInput(def *ast.Definition) *types.InputType {
	input := &types.InputType{
		Name:       def.Name,
		Desc:       def.Description,
		References: make(map[string]bool),
	}
	for _, f := range def.Fields {
		input.Fields = append(input.Fields, normalizeFieldDef(f, input.References))
	}
	return input
}

func parseEnum(def *ast.Definition) *types.EnumType {
	enum := &types.EnumType{
		Name: def.Name,
		Desc: def.Description,
	}
	for _, v := range def.EnumValues {
		enum.Values = append(enum.Values, &types.EnumValue{Name: v.Name, Desc: v.Description})
	}
	return enum
}

func parseUnion(def *ast.Definition) *types.UnionType {
	union := &types.UnionType{
		Name:       def.Name,
		Desc:       def.Description,
		References: make(map[string]bool),
	}
	for _, member := range def.Types {
		union.Members = append(union.Members, member)
		union.References[member] = true
	}
	return union
}
