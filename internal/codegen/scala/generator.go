package scala

import (
	"strconv"
	"strings"

	"github.com/lexn82/scrooge/internal/codegen/writer"
	"github.com/lexn82/scrooge/internal/schema"
	"github.com/lexn82/scrooge/internal/template"
)

// Generator generates Scala code from a schema document
type Generator struct {
	namespace string
	templates *template.Registry
}

// NewGenerator creates a new Scala code generator. The namespace
// overrides the document-declared target namespace when non-empty.
// The fragment registry is compiled here, once per generator, and
// passed nowhere else; a broken fragment fails construction, not a
// later render.
func NewGenerator(namespace string) (*Generator, error) {
	templates, err := newFragmentRegistry()
	if err != nil {
		return nil, err
	}
	return &Generator{
		namespace: namespace,
		templates: templates,
	}, nil
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "scala"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".scala"
}

// Generate produces a complete Scala source file for the document:
// header and imports, constants, enums, structs, and services, in that
// order. Output is deterministic; identical documents yield identical
// bytes.
func (g *Generator) Generate(doc *schema.Document) ([]byte, error) {
	normalized := Normalize(doc)

	var sections []string

	header, err := g.renderHeader(normalized)
	if err != nil {
		return nil, err
	}
	sections = append(sections, header)

	consts, err := g.RenderConsts(normalized.Consts)
	if err != nil {
		return nil, err
	}
	sections = append(sections, consts)

	var enums []string
	for i := range normalized.Enums {
		rendered, err := g.RenderEnum(&normalized.Enums[i])
		if err != nil {
			return nil, err
		}
		enums = append(enums, rendered)
	}
	sections = append(sections, strings.Join(enums, "\n"))

	var structs []string
	for i := range normalized.Structs {
		rendered, err := g.RenderStruct(&normalized.Structs[i])
		if err != nil {
			return nil, err
		}
		structs = append(structs, rendered)
	}
	sections = append(sections, strings.Join(structs, "\n"))

	var services []string
	for i := range normalized.Services {
		rendered, err := g.RenderService(&normalized.Services[i])
		if err != nil {
			return nil, err
		}
		services = append(services, rendered)
	}
	sections = append(sections, strings.Join(services, "\n"))

	w := writer.NewWriter()
	w.WriteComment("Generated by scrooge. DO NOT EDIT.")
	for _, section := range sections {
		if section == "" {
			continue
		}
		w.BlankLine()
		w.Write(section)
	}

	return w.Bytes(), nil
}

// RenderEnum renders a single (normalized) enum definition.
func (g *Generator) RenderEnum(e *schema.Enum) (string, error) {
	return g.templates.Render("enum", enumDict(e))
}

// RenderStruct renders a single (normalized) struct definition.
func (g *Generator) RenderStruct(s *schema.Struct) (string, error) {
	dict, err := structDict(s)
	if err != nil {
		return "", err
	}
	return g.templates.Render("struct", dict)
}

// RenderService renders a single (normalized) service definition.
func (g *Generator) RenderService(svc *schema.Service) (string, error) {
	dict, err := serviceDict(svc)
	if err != nil {
		return "", err
	}
	return g.templates.Render("service", dict)
}

// RenderConsts renders the constants object, or "" when the document
// declares no constants.
func (g *Generator) RenderConsts(consts []schema.Const) (string, error) {
	items := make(template.List, len(consts))
	for i := range consts {
		dict, err := constDict(&consts[i])
		if err != nil {
			return "", err
		}
		items[i] = dict
	}
	return g.templates.Render("consts", template.Dict{
		"hasConsts": template.Bool(len(consts) > 0),
		"consts":    items,
	})
}

// renderHeader renders the package line and the deduplicated import
// block. Includes pointing at the document's own namespace are
// dropped; the rest keep first-seen order.
func (g *Generator) renderHeader(doc *schema.Document) (string, error) {
	ns := g.namespace
	if ns == "" {
		ns = doc.TargetNamespace("scala")
	}

	var imports template.List
	seen := map[string]bool{}
	for _, inc := range doc.Includes {
		if inc.Namespace == "" || inc.Namespace == ns || seen[inc.Namespace] {
			continue
		}
		seen[inc.Namespace] = true
		imports = append(imports, template.Dict{
			"namespace": template.String(inc.Namespace),
		})
	}

	return g.templates.Render("header", template.Dict{
		"hasNamespace": template.Bool(ns != ""),
		"namespace":    template.String(ns),
		"hasImports":   template.Bool(len(imports) > 0),
		"imports":      imports,
	})
}

// enumDict is the enum fragment's model transform. The enclosing
// "enum" key lets value rows reference the enum's type name from
// inside the values section.
func enumDict(e *schema.Enum) template.Dict {
	values := make(template.List, len(e.Values))
	for i, v := range e.Values {
		values[i] = template.Dict{
			"name":      template.String(v.Name),
			"lowerName": template.String(strings.ToLower(v.Name)),
			"value":     template.String(strconv.Itoa(v.Value)),
		}
	}
	return template.Dict{
		"name":   template.String(e.Name),
		"enum":   template.String(e.Name),
		"values": values,
	}
}

// structDict is the struct fragment's model transform: the parameter
// list, the wire-absent fallback row, and per-field protocol helpers
// for primitive fields.
func structDict(s *schema.Struct) (template.Dict, error) {
	params, err := FormatParams(s.Fields)
	if err != nil {
		return nil, err
	}

	readDefaults := make([]string, len(s.Fields))
	fields := make(template.List, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		readDefaults[i] = ReadDefault(f)

		dict := template.Dict{
			"isPrimitive": template.Bool(f.Type.Primitive()),
		}
		if f.Type.Primitive() {
			fieldType, err := TargetType(&f.Type)
			if err != nil {
				return nil, err
			}
			readOp, err := ReadOp(&f.Type)
			if err != nil {
				return nil, err
			}
			writeOp, err := WriteOp(&f.Type)
			if err != nil {
				return nil, err
			}
			dict["pascal"] = template.String(toPascalCase(f.Name))
			dict["fieldType"] = template.String(fieldType)
			dict["readOp"] = template.String(readOp)
			dict["writeOp"] = template.String(writeOp)
		}
		fields[i] = dict
	}

	return template.Dict{
		"name":         template.String(s.Name),
		"params":       template.String(params),
		"readDefaults": template.String(strings.Join(readDefaults, ", ")),
		"fields":       fields,
	}, nil
}

// serviceDict is the service fragment's model transform; each method
// row is consumed by the function partial.
func serviceDict(svc *schema.Service) (template.Dict, error) {
	methods := make(template.List, len(svc.Methods))
	for i := range svc.Methods {
		m := &svc.Methods[i]
		params, err := FormatParams(m.Args)
		if err != nil {
			return nil, err
		}
		returnType, err := TargetType(&m.ReturnType)
		if err != nil {
			return nil, err
		}
		methods[i] = template.Dict{
			"name":       template.String(m.Name),
			"params":     template.String(params),
			"returnType": template.String(returnType),
		}
	}
	return template.Dict{
		"name":    template.String(svc.Name),
		"methods": methods,
	}, nil
}

// constDict is the const fragment's model transform.
func constDict(c *schema.Const) (template.Dict, error) {
	declared, err := TargetType(&c.Type)
	if err != nil {
		return nil, err
	}
	value, err := RenderConst(&c.Value)
	if err != nil {
		return nil, err
	}
	return template.Dict{
		"name":  template.String(c.Name),
		"type":  template.String(declared),
		"value": template.String(value),
	}, nil
}
