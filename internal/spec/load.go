package spec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads and decodes a TemplateSpec from a JSON file. Decoding is
// strict: unknown fields fail fast so typos in a spec surface immediately.
func Load(path string) (TemplateSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return TemplateSpec{}, fmt.Errorf("failed to open spec file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode decodes a TemplateSpec from a reader.
func Decode(r io.Reader) (TemplateSpec, error) {
	var s TemplateSpec
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return TemplateSpec{}, fmt.Errorf("failed to decode spec: %w", err)
	}
	return s, nil
}
