package check

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnolang/ndcheck/internal/proof"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a proof.
type File struct {
	Premises   string          `yaml:"premises" json:"premises"`
	Conclusion string          `yaml:"conclusion" json:"conclusion"`
	Lines      []proof.RawLine `yaml:"lines" json:"lines"`
}

// Document builds the proof document described by f.
func (f File) Document() *proof.Document {
	return proof.NewDocument(f.Premises, f.Conclusion, f.Lines)
}

// LoadDocument reads a proof file. Files ending in .json are decoded as
// JSON, anything else as YAML.
func LoadDocument(path string) (*proof.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading proof: %w", err)
	}
	f, err := ParseFile(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, fmt.Errorf("error parsing proof %s: %w", path, err)
	}
	return f.Document(), nil
}

// ParseFile decodes a proof file from data.
func ParseFile(data []byte, isJSON bool) (File, error) {
	var f File
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, err
		}
		return f, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, err
	}
	return f, nil
}
