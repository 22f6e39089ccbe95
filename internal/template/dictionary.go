// Package template implements the fragment substitution engine used by
// the code generators: named text fragments with scalar substitution,
// boolean- and sequence-gated sections, and partial inclusion, rendered
// against a typed dictionary tree.
package template

// Value is one node of the dictionary tree a fragment is rendered
// against. The set of implementations is closed: String, Bool, Dict,
// and List. Any other shape reaching the renderer is a defect.
type Value interface {
	isValue()
}

// String is a scalar substitution value.
type String string

// Bool gates a section: true renders its body once, false skips it.
type Bool bool

// Dict maps fragment keys to values. A Dict used as a section value
// renders the body once with the Dict pushed onto the lookup scope.
type Dict map[string]Value

// List is an ordered sequence of dictionaries; a section bound to a
// List renders its body once per element, in order.
type List []Dict

func (String) isValue() {}
func (Bool) isValue()   {}
func (Dict) isValue()   {}
func (List) isValue()   {}

// kindOf names a value's shape for error messages.
func kindOf(v Value) string {
	switch v.(type) {
	case String:
		return "scalar"
	case Bool:
		return "boolean"
	case Dict:
		return "dictionary"
	case List:
		return "sequence"
	default:
		return "unknown"
	}
}
