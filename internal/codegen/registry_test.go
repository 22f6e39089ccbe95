package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexn82/scrooge/internal/schema"
)

// mockGenerator is a test generator
type mockGenerator struct {
	lang string
}

func (m *mockGenerator) Generate(doc *schema.Document) ([]byte, error) {
	return []byte("mock output"), nil
}

func (m *mockGenerator) Language() string {
	return m.lang
}

func (m *mockGenerator) FileExtension() string {
	return ".mock"
}

func TestRegistry_NewRegistry(t *testing.T) {
	// Test: New registry is empty by default
	r := NewRegistry()
	assert.NotNil(t, r)

	// Should error on unknown language
	_, err := r.Get("unknown", "")
	assert.Error(t, err)
}

func TestRegistry_Register(t *testing.T) {
	// Test: Register custom generator
	r := NewRegistry()

	r.Register("mock", func(namespace string) (Generator, error) {
		return &mockGenerator{lang: "mock"}, nil
	})

	gen, err := r.Get("mock", "com.example")
	require.NoError(t, err)
	assert.NotNil(t, gen)
	assert.Equal(t, "mock", gen.Language())
}

func TestRegistry_UnsupportedLanguage(t *testing.T) {
	// Test: Error for unsupported language
	r := NewRegistry()

	gen, err := r.Get("unknown", "")
	assert.Error(t, err)
	assert.Nil(t, gen)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestRegistry_Languages(t *testing.T) {
	// Test: Languages lists everything registered
	r := NewRegistry()
	r.Register("mock", func(namespace string) (Generator, error) {
		return &mockGenerator{lang: "mock"}, nil
	})
	r.Register("other", func(namespace string) (Generator, error) {
		return &mockGenerator{lang: "other"}, nil
	})

	languages := r.Languages()
	assert.ElementsMatch(t, []string{"mock", "other"}, languages)
}

func TestDefaultRegistry_Scala(t *testing.T) {
	// Test: the scala generator is pre-registered
	gen, err := DefaultRegistry.Get("scala", "com.example")
	require.NoError(t, err)
	assert.Equal(t, "scala", gen.Language())
	assert.Equal(t, ".scala", gen.FileExtension())
}
