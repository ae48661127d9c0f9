// Package naming holds the deterministic identifier conventions shared by
// the compiler and the code emitter. The functions are pure and total: the
// same inputs always produce the same identifier, which is what lets
// generated declarations cross-reference each other without a registry.
package naming

import (
	"github.com/iancoleman/strcase"

	"github.com/blossom-graphql/blossom/types"
)

// Resolver names the resolver for a declared type, e.g. "userProfileResolver".
func Resolver(typeName string) string {
	return strcase.ToLowerCamel(typeName) + "Resolver"
}

// ConnectionResolver names the cursor-connection resolver for a declared type.
func ConnectionResolver(typeName string) string {
	return strcase.ToLowerCamel(typeName) + "ConnectionResolver"
}

// Loader names the batch loader for one field of a declared type,
// e.g. Loader("User", "posts") == "userPostsLoader".
func Loader(typeName, field string) string {
	return strcase.ToLowerCamel(typeName) + strcase.ToCamel(field) + "Loader"
}

// RootResolver names the resolver bound to a root operation field,
// e.g. RootResolver(types.Query, "search") == "searchQueryResolver".
func RootResolver(op types.Operation, field string) string {
	return strcase.ToLowerCamel(field) + strcase.ToCamel(string(op)) + "Resolver"
}

// RootSignature names the signature alias for an operation root type,
// e.g. RootSignature(types.Mutation, "CreateUser") == "CreateUserMutation".
func RootSignature(op types.Operation, typeName string) string {
	return strcase.ToCamel(typeName) + strcase.ToCamel(string(op))
}
