package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Serializer encodes values to and decodes values from one textual format
type Serializer interface {
	// Encode writes the document for v to w
	Encode(w io.Writer, v any) error
	// Decode reads one document from r into v, which must be a non-nil pointer
	Decode(r io.Reader, v any) error
}

// JSONSerializer implements Serializer for JSON
type JSONSerializer struct {
	Indent string
}

// Encode writes v as JSON followed by a newline. Strings that are not valid
// UTF-8 are rejected instead of being replaced.
func (s JSONSerializer) Encode(w io.Writer, v any) error {
	if err := checkText(v, jsonText); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	enc := json.NewEncoder(w)
	if s.Indent != "" {
		enc.SetIndent("", s.Indent)
	}
	return enc.Encode(v)
}

// Decode reads exactly one JSON value into v. Unknown object keys and
// trailing data are rejected.
func (JSONSerializer) Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

// YAMLSerializer implements Serializer for YAML
type YAMLSerializer struct {
	// Indent is the number of spaces per nesting level; zero means 2
	Indent int
}

func (s YAMLSerializer) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	indent := s.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := encodeYAML(enc, v); err != nil {
		return err
	}
	return enc.Close()
}

// encodeYAML converts the panics yaml.v3 raises for unsupported values into errors
func encodeYAML(enc *yaml.Encoder, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: cannot encode value: %v", r)
		}
	}()
	return enc.Encode(v)
}

func (YAMLSerializer) Decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("yaml: empty document")
		}
		return err
	}
	return nil
}
