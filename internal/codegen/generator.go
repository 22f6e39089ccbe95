package codegen

import "github.com/lexn82/scrooge/internal/schema"

// Generator is the interface that all language-specific code generators must implement
type Generator interface {
	// Generate generates code from the schema document and returns the generated code as bytes
	Generate(doc *schema.Document) ([]byte, error)

	// Language returns the name of the target language (e.g., "scala")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".scala")
	FileExtension() string
}

// Options contains common options for code generation
type Options struct {
	// Namespace overrides the document-declared target namespace
	Namespace string

	// OutputPath is the directory where files should be generated
	OutputPath string
}
