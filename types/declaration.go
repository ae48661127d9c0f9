package types

// Operation is a root operation role declared by a schema block.
type Operation string

const (
	Query    Operation = "query"
	Mutation Operation = "mutation"
)

// ObjectType is an output object declaration.
type ObjectType struct {
	Name   string
	Desc   string
	Fields []*Field

	// References holds every named, non-scalar type mentioned by any field
	// or argument. It is the linker's work list.
	References map[string]bool
}

// InputType is an input object declaration.
type InputType struct {
	Name       string
	Desc       string
	Fields     []*Field
	References map[string]bool
}

// EnumValue is a single member of an enum declaration.
type EnumValue struct {
	Name string
	Desc string
}

// EnumType is an enum declaration.
type EnumType struct {
	Name   string
	Desc   string
	Values []*EnumValue
}

// UnionType is a union declaration. Every member name is also recorded in
// References, since members must resolve to object declarations.
type UnionType struct {
	Name       string
	Desc       string
	Members    []string
	References map[string]bool
}

// Duplicate records a declaration name that appeared more than once in a
// file. The later declaration replaces the earlier one; the record lets a
// consumer warn about the shadowing without changing that behavior.
type Duplicate struct {
	Kind string // "type", "input", "enum" or "union"
	Name string
}

// Dictionary is the intermediate form of a single schema file: every
// declaration bucketed by kind and name, plus the operation roots named by
// a schema block, if one is present. It is built once per file and read-only
// afterwards.
type Dictionary struct {
	Objects map[string]*ObjectType
	Inputs  map[string]*InputType
	Enums   map[string]*EnumType
	Unions  map[string]*UnionType

	Operations map[Operation]string
	HasSchema  bool

	Duplicates []Duplicate
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		Objects:    make(map[string]*ObjectType),
		Inputs:     make(map[string]*InputType),
		Enums:      make(map[string]*EnumType),
		Unions:     make(map[string]*UnionType),
		Operations: make(map[Operation]string),
	}
}
