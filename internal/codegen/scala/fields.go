package scala

import (
	"strings"

	"github.com/lexn82/scrooge/internal/schema"
)

// DeclaredType returns the declaration-site Scala type of a field:
// the mapped type, wrapped in Option for optional fields.
func DeclaredType(f *schema.Field) (string, error) {
	t, err := TargetType(&f.Type)
	if err != nil {
		return "", err
	}
	if f.Requiredness == schema.Optional {
		return "Option[" + t + "]", nil
	}
	return t, nil
}

// DefaultExpr returns the declaration-site default expression of a
// field, or "" when the field has none and must be supplied.
// Precedence: an explicit schema default (wrapped in Some for
// optional fields), then None for optional fields, then nothing.
func DefaultExpr(f *schema.Field) (string, error) {
	if f.Default != nil {
		rendered, err := RenderConst(f.Default)
		if err != nil {
			return "", err
		}
		if f.Requiredness == schema.Optional {
			return "Some(" + rendered + ")", nil
		}
		return rendered, nil
	}
	if f.Requiredness == schema.Optional {
		return "None", nil
	}
	return "", nil
}

// ReadDefault returns the deserialization fallback value used when a
// field is absent on the wire. Optional fields fall back to None and
// primitive scalars to their zero value; everything else falls back to
// the null reference. Explicit schema defaults are deliberately
// ignored here: they govern declaration-site initialization only.
func ReadDefault(f *schema.Field) string {
	if f.Requiredness == schema.Optional {
		return "None"
	}
	switch f.Type.Kind {
	case schema.KindBool:
		return "false"
	case schema.KindByte, schema.KindI16, schema.KindI32, schema.KindI64:
		return "0"
	case schema.KindDouble:
		return "0.0"
	default:
		return "null"
	}
}

// FormatParams renders a comma-joined Scala parameter list for the
// given fields, with backtick-escaped identifiers and default
// expressions where defined.
func FormatParams(fields []schema.Field) (string, error) {
	params := make([]string, len(fields))
	for i := range fields {
		f := &fields[i]
		declared, err := DeclaredType(f)
		if err != nil {
			return "", err
		}
		param := escapeIdent(f.Name) + ": " + declared
		dflt, err := DefaultExpr(f)
		if err != nil {
			return "", err
		}
		if dflt != "" {
			param += " = " + dflt
		}
		params[i] = param
	}
	return strings.Join(params, ", "), nil
}

// escapeIdent wraps a name in backticks, Scala's verbatim-identifier
// syntax, so reserved words survive as parameter names.
func escapeIdent(name string) string {
	return "`" + name + "`"
}
