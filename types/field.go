package types

// ThunkKind is the invocation convention of a field: a plain value, a
// synchronous function or an asynchronous function.
type ThunkKind int

const (
	ThunkNone ThunkKind = iota
	ThunkFunction
	ThunkAsync
)

func (k ThunkKind) String() string {
	switch k {
	case ThunkFunction:
		return "function"
	case ThunkAsync:
		return "async"
	default:
		return "none"
	}
}

// FieldType is the terminal type of a single-valued field: either one of
// the built-in scalars or a reference to a named declaration. The union is
// closed; consumers switch exhaustively over ScalarType and NamedType.
type FieldType interface {
	fieldType()
}

// ScalarType is a built-in scalar in its target representation. ID and
// String render as strings, Int and Float as numbers.
type ScalarType int

const (
	ScalarString ScalarType = iota
	ScalarNumber
	ScalarBoolean
)

func (ScalarType) fieldType() {}

func (s ScalarType) String() string {
	switch s {
	case ScalarNumber:
		return "number"
	case ScalarBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// NamedType references a declaration by name. The linker resolves it to a
// defining file or fails.
type NamedType string

func (NamedType) fieldType() {}

func (n NamedType) String() string { return string(n) }

// Field is the flat descriptor of a field or argument after wrapper
// normalization. Required means a non-null wrapper sat directly around this
// node; an array carries its own requiredness independent of its element's.
type Field struct {
	Name      string
	Desc      string
	Array     bool
	Required  bool
	Thunk     ThunkKind
	Type      FieldType // nil when Array
	Element   *Field    // set only when Array
	Arguments []*Field
}
