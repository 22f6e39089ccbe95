package schema

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load decodes a frontend-produced document from its JSON form. The
// document is assumed to have passed the frontend's validation; Load
// only rejects malformed JSON and fills structural defaults.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	if doc.Namespaces == nil {
		doc.Namespaces = map[string]string{}
	}
	for i := range doc.Structs {
		for j := range doc.Structs[i].Fields {
			if doc.Structs[i].Fields[j].Requiredness == "" {
				doc.Structs[i].Fields[j].Requiredness = DefaultRequiredness
			}
		}
	}
	for i := range doc.Services {
		for j := range doc.Services[i].Methods {
			for k := range doc.Services[i].Methods[j].Args {
				if doc.Services[i].Methods[j].Args[k].Requiredness == "" {
					doc.Services[i].Methods[j].Args[k].Requiredness = DefaultRequiredness
				}
			}
		}
	}

	return &doc, nil
}

// LoadFile reads and decodes a document from a file path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema document: %w", err)
	}
	return Load(data)
}
