package scala

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexn82/scrooge/internal/schema"
)

func newTestGenerator(t *testing.T, namespace string) *Generator {
	t.Helper()
	g, err := NewGenerator(namespace)
	require.NoError(t, err)
	return g
}

func TestGenerator_Metadata(t *testing.T) {
	g := newTestGenerator(t, "")
	assert.Equal(t, "scala", g.Language())
	assert.Equal(t, ".scala", g.FileExtension())
}

func TestRenderEnum(t *testing.T) {
	// Test: enum rendering preserves declaration order and exposes the
	// lowercase display name
	g := newTestGenerator(t, "")

	out, err := g.RenderEnum(&schema.Enum{
		Name: "Color",
		Values: []schema.EnumValue{
			{Name: "Red", Value: 1},
			{Name: "Green", Value: 2},
		},
	})
	require.NoError(t, err)

	expected := `sealed abstract class Color(val value: Int, val name: String)

object Color {
  case object Red extends Color(1, "red")
  case object Green extends Color(2, "green")
}
`
	assert.Equal(t, expected, out)
}

func TestRenderStruct(t *testing.T) {
	// Test: struct rendering emits the parameter list, the wire-absent
	// fallback row, and protocol helpers for primitive fields only
	g := newTestGenerator(t, "")

	out, err := g.RenderStruct(&schema.Struct{
		Name: "User",
		Fields: []schema.Field{
			{Name: "name", Type: schema.Type{Kind: schema.KindString}, Requiredness: schema.Required},
			{
				Name:         "friends",
				Type:         schema.Type{Kind: schema.KindList, Elem: &schema.Type{Kind: schema.KindString}},
				Requiredness: schema.Optional,
			},
		},
	})
	require.NoError(t, err)

	expected := `case class User(` + "`name`" + `: String, ` + "`friends`" + `: Option[Seq[String]] = None)

object User {
  val Empty = User(null, None)

  private def readNameValue(_iprot: TProtocol): String = _iprot.readString()

  private def writeNameValue(_oprot: TProtocol, value: String): Unit = _oprot.writeString(value)
}
`
	assert.Equal(t, expected, out)
}

func TestRenderService(t *testing.T) {
	// Test: the function partial renders one signature per method
	g := newTestGenerator(t, "")

	out, err := g.RenderService(&schema.Service{
		Name: "UserService",
		Methods: []schema.Function{
			{
				Name:       "getUser",
				ReturnType: schema.Type{Kind: schema.KindStruct, Name: "User"},
				Args: []schema.Field{
					{Name: "id", Type: schema.Type{Kind: schema.KindI64}, Requiredness: schema.Required},
				},
			},
			{
				Name:       "ping",
				ReturnType: schema.Type{Kind: schema.KindVoid},
			},
		},
	})
	require.NoError(t, err)

	expected := `trait UserService {
  def getUser(` + "`id`" + `: Long): User
  def ping(): Unit
}
`
	assert.Equal(t, expected, out)
}

func TestRenderConsts(t *testing.T) {
	// Test: the constants object gathers all consts; an empty list
	// renders nothing at all
	g := newTestGenerator(t, "")

	out, err := g.RenderConsts([]schema.Const{
		{
			Name:  "MAX_RETRIES",
			Type:  schema.Type{Kind: schema.KindI32},
			Value: schema.Constant{Kind: schema.ConstInt, Int: 3},
		},
		{
			Name:  "GREETING",
			Type:  schema.Type{Kind: schema.KindString},
			Value: schema.Constant{Kind: schema.ConstString, Str: "hi"},
		},
	})
	require.NoError(t, err)

	expected := `object Constants {
  val MAX_RETRIES: Int = 3
  val GREETING: String = "hi"
}
`
	assert.Equal(t, expected, out)

	out, err = g.RenderConsts(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestGenerate_HeaderImports(t *testing.T) {
	// Test: imports are deduplicated by namespace, exclude the
	// document's own namespace, and keep first-seen order
	g := newTestGenerator(t, "")

	doc := &schema.Document{
		Namespaces: map[string]string{"scala": "a.b"},
		Includes: []schema.Include{
			{Name: "shared", Namespace: "a.b"},
			{Name: "common", Namespace: "a.c"},
			{Name: "shared2", Namespace: "a.b"},
			{Name: "common2", Namespace: "a.c"},
		},
	}

	code, err := g.Generate(doc)
	require.NoError(t, err)
	result := string(code)

	assert.Contains(t, result, "package a.b")
	assert.Equal(t, 1, strings.Count(result, "import a.c._"))
	assert.NotContains(t, result, "import a.b._")
}

func TestGenerate_NamespaceOverride(t *testing.T) {
	// Test: a generator-level namespace wins over the document's
	g := newTestGenerator(t, "com.example.override")

	doc := &schema.Document{Namespaces: map[string]string{"scala": "a.b"}}
	code, err := g.Generate(doc)
	require.NoError(t, err)

	assert.Contains(t, string(code), "package com.example.override")
	assert.NotContains(t, string(code), "package a.b")
}

func TestGenerate_EmptyDocument(t *testing.T) {
	// Test: an empty document generates only the banner, with no empty
	// section delimiters
	g := newTestGenerator(t, "")

	code, err := g.Generate(&schema.Document{})
	require.NoError(t, err)

	result := string(code)
	assert.Contains(t, result, "Generated by scrooge")
	assert.NotContains(t, result, "object Constants")
	assert.NotContains(t, result, "package")
}

func TestGenerate_SectionOrder(t *testing.T) {
	// Test: output order is header, constants, enums, structs, services
	g := newTestGenerator(t, "")

	doc := &schema.Document{
		Namespaces: map[string]string{"scala": "com.example"},
		Consts: []schema.Const{
			{Name: "N", Type: schema.Type{Kind: schema.KindI32}, Value: schema.Constant{Kind: schema.ConstInt, Int: 1}},
		},
		Enums: []schema.Enum{
			{Name: "color", Values: []schema.EnumValue{{Name: "Red", Value: 1}}},
		},
		Structs: []schema.Struct{
			{Name: "user"},
			{Name: "group"},
		},
		Services: []schema.Service{
			{Name: "user_service"},
		},
	}

	code, err := g.Generate(doc)
	require.NoError(t, err)
	result := string(code)

	positions := []int{
		strings.Index(result, "package com.example"),
		strings.Index(result, "object Constants"),
		strings.Index(result, "sealed abstract class Color"),
		strings.Index(result, "case class User"),
		strings.Index(result, "case class Group"),
		strings.Index(result, "trait UserService"),
	}
	for i, pos := range positions {
		require.GreaterOrEqual(t, pos, 0, "section %d missing", i)
		if i > 0 {
			assert.Greater(t, pos, positions[i-1], "section %d out of order", i)
		}
	}

	// Structs are separated by one blank line
	assert.Contains(t, result, "}\n\ncase class Group")
}

func TestGenerate_Deterministic(t *testing.T) {
	// Test: regenerating the same document yields byte-identical output
	doc := &schema.Document{
		Namespaces: map[string]string{"scala": "com.example"},
		Structs: []schema.Struct{
			{Name: "user", Fields: []schema.Field{
				{Name: "display_name", Type: schema.Type{Kind: schema.KindString}, Requiredness: schema.Optional},
			}},
		},
	}

	first, err := newTestGenerator(t, "").Generate(doc)
	require.NoError(t, err)
	second, err := newTestGenerator(t, "").Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_NormalizesIdentifiers(t *testing.T) {
	// Test: snake_case input arrives in idiomatic Scala form, including
	// nested type references, and the input document is not mutated
	g := newTestGenerator(t, "")

	doc := &schema.Document{
		Namespaces: map[string]string{"scala": "com.example"},
		Structs: []schema.Struct{
			{Name: "user_profile", Fields: []schema.Field{
				{Name: "display_name", Type: schema.Type{Kind: schema.KindString}, Requiredness: schema.Required},
				{Name: "home_town", Type: schema.Type{Kind: schema.KindStruct, Name: "geo_point"}, Requiredness: schema.Optional},
			}},
		},
		Services: []schema.Service{
			{Name: "profile_service", Methods: []schema.Function{
				{
					Name:       "get_profile",
					ReturnType: schema.Type{Kind: schema.KindStruct, Name: "user_profile"},
					Args: []schema.Field{
						{Name: "user_id", Type: schema.Type{Kind: schema.KindI64}, Requiredness: schema.Required},
					},
				},
			}},
		},
	}

	code, err := g.Generate(doc)
	require.NoError(t, err)
	result := string(code)

	assert.Contains(t, result, "case class UserProfile(")
	assert.Contains(t, result, "`displayName`: String")
	assert.Contains(t, result, "`homeTown`: Option[GeoPoint] = None")
	assert.Contains(t, result, "trait ProfileService")
	assert.Contains(t, result, "def getProfile(`userId`: Long): UserProfile")

	// The raw document stays untouched
	assert.Equal(t, "user_profile", doc.Structs[0].Name)
	assert.Equal(t, "display_name", doc.Structs[0].Fields[0].Name)
}

func TestNormalize_Constants(t *testing.T) {
	// Test: enum references inside constants are renamed with their enums
	doc := &schema.Document{
		Consts: []schema.Const{
			{
				Name: "DEFAULT_COLOR",
				Type: schema.Type{Kind: schema.KindEnum, Name: "color"},
				Value: schema.Constant{
					Kind: schema.ConstEnumValue, Enum: "color", Value: "Red",
				},
			},
		},
	}

	normalized := Normalize(doc)
	assert.Equal(t, "DEFAULT_COLOR", normalized.Consts[0].Name)
	assert.Equal(t, "Color", normalized.Consts[0].Type.Name)
	assert.Equal(t, "Color", normalized.Consts[0].Value.Enum)
	// Input untouched
	assert.Equal(t, "color", doc.Consts[0].Value.Enum)
}
