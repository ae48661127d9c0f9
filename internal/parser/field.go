package parser

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/blossom-graphql/blossom/types"
)

// ImplDirective is the field annotation that overrides the inferred thunk
// kind. Its single argument "type" takes the literal function, async or none.
const ImplDirective = "blossomImpl"

// normalizeType flattens a List/NonNull wrapper chain into a flat field
// descriptor. A list starts out optional; only a non-null wrapper directly
// around a node flips that node's Required flag, so an array's requiredness
// stays independent of its element's.
func normalizeType(t *ast.Type, refs map[string]bool) *types.Field {
	if t.NamedType == "" {
		return &types.Field{
			Array:    true,
			Required: t.NonNull,
			Element:  normalizeType(t.Elem, refs),
		}
	}
	return &types.Field{
		Type:     terminalType(t.NamedType, refs),
		Required: t.NonNull,
	}
}

// terminalType maps the fixed built-in scalar names to their target
// representations; any other name is a reference recorded into the
// enclosing declaration's work list.
func terminalType(name string, refs map[string]bool) types.FieldType {
	switch name {
	case "ID", "String":
		return types.ScalarString
	case "Int", "Float":
		return types.ScalarNumber
	case "Boolean":
		return types.ScalarBoolean
	}
	refs[name] = true
	return types.NamedType(name)
}

// normalizeFieldDef combines the normalized type expression with the field's
// name, doc comment, arguments and inferred thunk kind. Arguments are
// normalized recursively as plain input values.
func normalizeFieldDef(def *ast.FieldDefinition, refs map[string]bool) *types.Field {
	f := normalizeType(def.Type, refs)
	f.Name = def.Name
	f.Desc = def.Description
	for _, arg := range def.Arguments {
		a := normalizeType(arg.Type, refs)
		a.Name = arg.Name
		a.Desc = arg.Description
		f.Arguments = append(f.Arguments, a)
	}
	f.Thunk = thunkFromDirectives(def.Directives, len(def.Arguments) > 0)
	return f
}

// thunkFromDirectives infers the field's invocation convention: declared
// arguments default it to a synchronous function, otherwise a plain value.
// A recognized override literal replaces the inferred kind outright — an
// explicit none wins even on a field that has arguments. Override values of
// any other literal kind are ignored and the default stands.
func thunkFromDirectives(directives ast.DirectiveList, hasArguments bool) types.ThunkKind {
	kind := types.ThunkNone
	if hasArguments {
		kind = types.ThunkFunction
	}

	d := directives.ForName(ImplDirective)
	if d == nil {
		return kind
	}
	arg := d.Arguments.ForName("type")
	if arg == nil || arg.Value == nil {
		return kind
	}
	switch arg.Value.Kind {
	case ast.StringValue, ast.EnumValue:
	default:
		return kind
	}
	switch arg.Value.Raw {
	case "function":
		return types.ThunkFunction
	case "async":
		return types.ThunkAsync
	case "none":
		return types.ThunkNone
	}
	return kind
}
