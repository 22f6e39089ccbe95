package scala

import (
	"fmt"

	"github.com/lexn82/scrooge/internal/schema"
)

// TargetType maps a schema type to its Scala type expression.
// Container types map structurally; enum, struct, and named references
// map to their own (already normalized) type names.
func TargetType(t *schema.Type) (string, error) {
	switch t.Kind {
	case schema.KindVoid:
		return "Unit", nil
	case schema.KindBool:
		return "Boolean", nil
	case schema.KindByte:
		return "Byte", nil
	case schema.KindI16:
		return "Short", nil
	case schema.KindI32:
		return "Int", nil
	case schema.KindI64:
		return "Long", nil
	case schema.KindDouble:
		return "Double", nil
	case schema.KindString:
		return "String", nil
	case schema.KindBinary:
		return "ByteBuffer", nil
	case schema.KindList:
		elem, err := TargetType(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Seq[%s]", elem), nil
	case schema.KindSet:
		elem, err := TargetType(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Set[%s]", elem), nil
	case schema.KindMap:
		key, err := TargetType(t.Key)
		if err != nil {
			return "", err
		}
		value, err := TargetType(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Map[%s, %s]", key, value), nil
	case schema.KindEnum, schema.KindStruct, schema.KindNamed:
		return t.Name, nil
	default:
		return "", fmt.Errorf("internal error: no target type for kind %q", t.Kind)
	}
}

// WireTag maps a schema type to its serialization tag. String and
// binary share TType.STRING at the wire level (legacy quirk), and
// enums are transmitted as TType.I32.
func WireTag(t *schema.Type) (string, error) {
	switch t.Kind {
	case schema.KindVoid:
		return "TType.VOID", nil
	case schema.KindBool:
		return "TType.BOOL", nil
	case schema.KindByte:
		return "TType.BYTE", nil
	case schema.KindI16:
		return "TType.I16", nil
	case schema.KindI32, schema.KindEnum:
		return "TType.I32", nil
	case schema.KindI64:
		return "TType.I64", nil
	case schema.KindDouble:
		return "TType.DOUBLE", nil
	case schema.KindString, schema.KindBinary:
		return "TType.STRING", nil
	case schema.KindList:
		return "TType.LIST", nil
	case schema.KindSet:
		return "TType.SET", nil
	case schema.KindMap:
		return "TType.MAP", nil
	case schema.KindStruct, schema.KindNamed:
		return "TType.STRUCT", nil
	default:
		return "", fmt.Errorf("internal error: no wire tag for kind %q", t.Kind)
	}
}

// ReadOp returns the protocol read operation for a primitive scalar
// type. Composite and enum types have no primitive read operation;
// reaching one here means the generator's case table is incomplete.
func ReadOp(t *schema.Type) (string, error) {
	op, err := primitiveOp(t)
	if err != nil {
		return "", err
	}
	return "read" + op, nil
}

// WriteOp returns the protocol write operation for a primitive scalar
// type, under the same restrictions as ReadOp.
func WriteOp(t *schema.Type) (string, error) {
	op, err := primitiveOp(t)
	if err != nil {
		return "", err
	}
	return "write" + op, nil
}

func primitiveOp(t *schema.Type) (string, error) {
	switch t.Kind {
	case schema.KindBool:
		return "Bool", nil
	case schema.KindByte:
		return "Byte", nil
	case schema.KindI16:
		return "I16", nil
	case schema.KindI32:
		return "I32", nil
	case schema.KindI64:
		return "I64", nil
	case schema.KindDouble:
		return "Double", nil
	case schema.KindString:
		return "String", nil
	case schema.KindBinary:
		return "Binary", nil
	default:
		return "", fmt.Errorf("internal error: no primitive protocol operation for kind %q", t.Kind)
	}
}

// ZeroValue returns the primitive zero literal for a scalar type. The
// optional-field "absent" rule lives in the field descriptor builder,
// not here.
func ZeroValue(t *schema.Type) (string, error) {
	switch t.Kind {
	case schema.KindBool:
		return "false", nil
	case schema.KindByte, schema.KindI16, schema.KindI32:
		return "0", nil
	case schema.KindI64:
		return "0L", nil
	case schema.KindDouble:
		return "0.0", nil
	case schema.KindString, schema.KindBinary:
		return "null", nil
	default:
		return "", fmt.Errorf("internal error: no zero value for kind %q", t.Kind)
	}
}
