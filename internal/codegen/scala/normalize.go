package scala

import (
	"github.com/lexn82/scrooge/internal/schema"
)

// Normalize returns a copy of the document with identifiers converted
// to their idiomatic Scala form: PascalCase for type, enum, and
// service names (including every nested type reference), camelCase for
// fields, arguments, and methods. Const names are left verbatim so
// identifier references declared elsewhere in the document keep
// resolving. The input document is never mutated; generators only
// render the normalized copy.
func Normalize(doc *schema.Document) *schema.Document {
	out := &schema.Document{
		Includes:   doc.Includes,
		Namespaces: doc.Namespaces,
		Consts:     make([]schema.Const, len(doc.Consts)),
		Enums:      make([]schema.Enum, len(doc.Enums)),
		Structs:    make([]schema.Struct, len(doc.Structs)),
		Services:   make([]schema.Service, len(doc.Services)),
	}

	for i, c := range doc.Consts {
		out.Consts[i] = schema.Const{
			Name:  c.Name,
			Type:  normalizeType(c.Type),
			Value: normalizeConstant(c.Value),
		}
	}
	for i, e := range doc.Enums {
		values := make([]schema.EnumValue, len(e.Values))
		copy(values, e.Values)
		out.Enums[i] = schema.Enum{Name: toPascalCase(e.Name), Values: values}
	}
	for i, s := range doc.Structs {
		out.Structs[i] = schema.Struct{
			Name:   toPascalCase(s.Name),
			Fields: normalizeFields(s.Fields),
		}
	}
	for i, svc := range doc.Services {
		methods := make([]schema.Function, len(svc.Methods))
		for j, m := range svc.Methods {
			methods[j] = schema.Function{
				Name:       toCamelCase(m.Name),
				ReturnType: normalizeType(m.ReturnType),
				Args:       normalizeFields(m.Args),
			}
		}
		out.Services[i] = schema.Service{Name: toPascalCase(svc.Name), Methods: methods}
	}

	return out
}

func normalizeFields(fields []schema.Field) []schema.Field {
	out := make([]schema.Field, len(fields))
	for i, f := range fields {
		out[i] = schema.Field{
			Name:         toCamelCase(f.Name),
			Type:         normalizeType(f.Type),
			Requiredness: f.Requiredness,
		}
		if f.Default != nil {
			d := normalizeConstant(*f.Default)
			out[i].Default = &d
		}
	}
	return out
}

func normalizeType(t schema.Type) schema.Type {
	switch t.Kind {
	case schema.KindEnum, schema.KindStruct, schema.KindNamed:
		t.Name = toPascalCase(t.Name)
	case schema.KindList, schema.KindSet:
		elem := normalizeType(*t.Elem)
		t.Elem = &elem
	case schema.KindMap:
		key := normalizeType(*t.Key)
		elem := normalizeType(*t.Elem)
		t.Key = &key
		t.Elem = &elem
	}
	return t
}

func normalizeConstant(c schema.Constant) schema.Constant {
	switch c.Kind {
	case schema.ConstList:
		list := make([]schema.Constant, len(c.List))
		for i := range c.List {
			list[i] = normalizeConstant(c.List[i])
		}
		c.List = list
	case schema.ConstMap:
		pairs := make([]schema.ConstPair, len(c.Map))
		for i := range c.Map {
			pairs[i] = schema.ConstPair{
				Key:   normalizeConstant(c.Map[i].Key),
				Value: normalizeConstant(c.Map[i].Value),
			}
		}
		c.Map = pairs
	case schema.ConstEnumValue:
		c.Enum = toPascalCase(c.Enum)
	}
	return c
}
