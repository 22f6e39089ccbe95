package schema

// Document is the root of a parsed interface-definition file. It is
// produced by the external frontend (parser + validator) and consumed
// read-only by the generators.
type Document struct {
	Includes   []Include         `json:"includes"`
	Namespaces map[string]string `json:"namespaces"`
	Consts     []Const           `json:"consts"`
	Enums      []Enum            `json:"enums"`
	Structs    []Struct          `json:"structs"`
	Services   []Service         `json:"services"`
}

// TargetNamespace returns the namespace declared for the given
// language, falling back to the java namespace and then to the
// catch-all "*" entry. Empty when the document declares none.
func (d *Document) TargetNamespace(language string) string {
	if ns, ok := d.Namespaces[language]; ok {
		return ns
	}
	if ns, ok := d.Namespaces["java"]; ok {
		return ns
	}
	return d.Namespaces["*"]
}

// Include represents an include header pointing at another document.
type Include struct {
	Name string `json:"name"`
	// Namespace is the included document's target namespace, resolved
	// by the frontend.
	Namespace string `json:"namespace"`
}

// Const is a named document-level constant.
type Const struct {
	Name  string   `json:"name"`
	Type  Type     `json:"type"`
	Value Constant `json:"value"`
}

// Enum represents an enum definition. Value order is declaration
// order and is preserved in the output.
type Enum struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values"`
}

// EnumValue is a single named value inside an enum.
type EnumValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Requiredness is the declared presence rule for a field.
type Requiredness string

const (
	Required Requiredness = "required"
	Optional Requiredness = "optional"
	// DefaultRequiredness is the implicit rule when a field declares
	// neither required nor optional.
	DefaultRequiredness Requiredness = "default"
)

// Field is a struct field or a service-method argument.
type Field struct {
	Name         string       `json:"name"`
	Type         Type         `json:"type"`
	Requiredness Requiredness `json:"requiredness"`
	Default      *Constant    `json:"default,omitempty"`
}

// Struct represents a struct definition.
type Struct struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Service represents a service block.
type Service struct {
	Name    string     `json:"name"`
	Methods []Function `json:"methods"`
}

// Function is a single service method.
type Function struct {
	Name       string  `json:"name"`
	ReturnType Type    `json:"returnType"`
	Args       []Field `json:"args"`
}
