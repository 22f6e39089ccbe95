package scala

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lexn82/scrooge/internal/schema"
)

// RenderConst renders a constant value as a Scala literal. The
// rendering is total over the constant union and needs no type
// information: each variant self-describes its syntax. Identifier
// references are emitted verbatim; collision with Scala keywords is a
// known limitation left to the frontend's validation stage.
func RenderConst(c *schema.Constant) (string, error) {
	switch c.Kind {
	case schema.ConstNull:
		return "null", nil
	case schema.ConstBool:
		return strconv.FormatBool(c.Bool), nil
	case schema.ConstInt:
		return strconv.FormatInt(c.Int, 10), nil
	case schema.ConstDouble:
		lit := strconv.FormatFloat(c.Double, 'g', -1, 64)
		// Keep whole doubles lexically double-typed.
		if !strings.ContainsAny(lit, ".eE") {
			lit += ".0"
		}
		return lit, nil
	case schema.ConstString:
		return quote(c.Str), nil
	case schema.ConstList:
		elems := make([]string, len(c.List))
		for i := range c.List {
			rendered, err := RenderConst(&c.List[i])
			if err != nil {
				return "", err
			}
			elems[i] = rendered
		}
		return "Seq(" + strings.Join(elems, ", ") + ")", nil
	case schema.ConstMap:
		pairs := make([]string, len(c.Map))
		for i := range c.Map {
			key, err := RenderConst(&c.Map[i].Key)
			if err != nil {
				return "", err
			}
			value, err := RenderConst(&c.Map[i].Value)
			if err != nil {
				return "", err
			}
			pairs[i] = key + " -> " + value
		}
		return "Map(" + strings.Join(pairs, ", ") + ")", nil
	case schema.ConstEnumValue:
		return c.Enum + "." + c.Value, nil
	case schema.ConstIdentifier:
		return c.Name, nil
	default:
		return "", fmt.Errorf("internal error: no rendering for constant kind %q", c.Kind)
	}
}

// quote renders a string constant as a double-quoted Scala literal
// with C-style escapes, so re-lexing the output reproduces the
// original value.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
