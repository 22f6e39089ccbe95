package schema

// TypeKind discriminates the Type union. The set is closed: every
// switch over a TypeKind must carry a default branch that reports an
// unmapped kind as a fatal generator defect.
type TypeKind string

const (
	KindVoid   TypeKind = "void"
	KindBool   TypeKind = "bool"
	KindByte   TypeKind = "byte"
	KindI16    TypeKind = "i16"
	KindI32    TypeKind = "i32"
	KindI64    TypeKind = "i64"
	KindDouble TypeKind = "double"
	KindString TypeKind = "string"
	KindBinary TypeKind = "binary"
	KindList   TypeKind = "list"
	KindSet    TypeKind = "set"
	KindMap    TypeKind = "map"
	KindEnum   TypeKind = "enum"
	KindStruct TypeKind = "struct"
	KindNamed  TypeKind = "named"
)

// Type is a schema type reference. Container kinds own their element
// types structurally; enum/struct/named kinds reference an entity by
// name, resolved later by the consumer.
type Type struct {
	Kind TypeKind `json:"kind"`
	// Name is set for enum, struct, and named references.
	Name string `json:"name,omitempty"`
	// Elem is the element type of list and set, and the value type of map.
	Elem *Type `json:"elem,omitempty"`
	// Key is the key type of map.
	Key *Type `json:"key,omitempty"`
}

// Primitive reports whether the type is one of the eight scalar kinds
// that have wire-level read/write operations.
func (t *Type) Primitive() bool {
	switch t.Kind {
	case KindBool, KindByte, KindI16, KindI32, KindI64, KindDouble, KindString, KindBinary:
		return true
	default:
		return false
	}
}

// Container reports whether the type is a list, set, or map.
func (t *Type) Container() bool {
	return t.Kind == KindList || t.Kind == KindSet || t.Kind == KindMap
}

// ConstKind discriminates the Constant union.
type ConstKind string

const (
	ConstNull       ConstKind = "null"
	ConstBool       ConstKind = "bool"
	ConstInt        ConstKind = "int"
	ConstDouble     ConstKind = "double"
	ConstString     ConstKind = "string"
	ConstList       ConstKind = "list"
	ConstMap        ConstKind = "map"
	ConstEnumValue  ConstKind = "enumValue"
	ConstIdentifier ConstKind = "identifier"
)

// Constant is a literal value from the schema document. Exactly the
// field matching Kind is meaningful; the rest are zero.
type Constant struct {
	Kind   ConstKind   `json:"kind"`
	Bool   bool        `json:"bool,omitempty"`
	Int    int64       `json:"int,omitempty"`
	Double float64     `json:"double,omitempty"`
	Str    string      `json:"str,omitempty"`
	List   []Constant  `json:"list,omitempty"`
	Map    []ConstPair `json:"map,omitempty"`
	// Enum and Value qualify an enumValue reference; Name holds an
	// identifier reference.
	Enum  string `json:"enum,omitempty"`
	Value string `json:"value,omitempty"`
	Name  string `json:"name,omitempty"`
}

// ConstPair is one key/value entry of a map constant. Pairs preserve
// declaration order.
type ConstPair struct {
	Key   Constant `json:"key"`
	Value Constant `json:"value"`
}
