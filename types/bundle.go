package types

// CrossImport lists the declarations a bundle pulls in from another file of
// the graph, deduplicated and sorted for stable emission.
type CrossImport struct {
	Path  string
	Names []string
}

// OperationSignature is an operation root re-emitted for the target file:
// every field of the root object type with its thunk forced to asynchronous,
// since root fields are always asynchronous entry points.
type OperationSignature struct {
	Operation Operation
	TypeName  string
	Fields    []*Field
}

// Capabilities flags the runtime support the emitted file will need. The
// emitter consults these to decide which support imports to add.
type Capabilities struct {
	// NeedsOptional is set once any field, argument or array element is not
	// required and therefore needs the optional-value wrapper.
	NeedsOptional bool
	// NeedsContext is set once any field resolves through a function and
	// therefore needs the resolver-context type.
	NeedsContext bool
}

// Bundle is the linker output for one target file: everything the code
// emitter needs to render it into target-language source. Declaration lists
// are ordered by name; object types serving as operation roots appear only
// as operation signatures, never as plain objects.
type Bundle struct {
	Path string

	Imports []*CrossImport

	Enums      []*EnumType
	Objects    []*ObjectType
	Inputs     []*InputType
	Unions     []*UnionType
	Operations []*OperationSignature

	Capabilities Capabilities
}
