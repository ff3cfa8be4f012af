package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"sync"
)

const (
	// DefaultIndent is used for JSON and XML when no indent is configured
	DefaultIndent = "  "
	// DefaultFileMode is the permission used for newly created documents
	DefaultFileMode fs.FileMode = 0644
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileCodecConfig configures a FileCodec
type FileCodecConfig struct {
	Indent   string      // indent for JSON and XML; YAML uses its length
	FileMode fs.FileMode // permission for created files
}

// FileCodec writes records to files and reads them back
type FileCodec struct {
	mu          sync.RWMutex
	fileMode    fs.FileMode
	serializers map[Format]Serializer
}

// NewFileCodec creates a codec with the built-in JSON, XML and YAML serializers
func NewFileCodec(config FileCodecConfig) *FileCodec {
	if config.Indent == "" {
		config.Indent = DefaultIndent
	}
	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}

	return &FileCodec{
		fileMode: config.FileMode,
		serializers: map[Format]Serializer{
			FormatJSON: JSONSerializer{Indent: config.Indent},
			FormatXML:  XMLSerializer{Indent: config.Indent},
			FormatYAML: YAMLSerializer{Indent: len(config.Indent)},
		},
	}
}

// Register adds or replaces the serializer for a format
func (c *FileCodec) Register(format Format, s Serializer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serializers[format] = s
}

// Serializer returns the serializer registered for format
func (c *FileCodec) Serializer(format Format) (Serializer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.serializers[format]
	if !ok {
		return nil, unknownFormat(format)
	}
	return s, nil
}

// Marshal encodes v into a document
func (c *FileCodec) Marshal(v any, format Format) ([]byte, error) {
	data, err := c.encode(v, format)
	if err != nil {
		return nil, newError(KindEncoding, "marshal", "", format, err)
	}
	return data, nil
}

// Unmarshal decodes a document into v, which must be a non-nil pointer.
// On error v is left unchanged.
func (c *FileCodec) Unmarshal(data []byte, format Format, v any) error {
	if err := c.decode(data, format, v); err != nil {
		return newError(KindParse, "unmarshal", "", format, err)
	}
	return nil
}

// Write encodes v and replaces the contents of path with the document.
// The file is only touched once encoding has succeeded.
func (c *FileCodec) Write(v any, format Format, path string) error {
	data, err := c.encode(v, format)
	if err != nil {
		return newError(KindEncoding, "write", path, format, err)
	}

	if err := c.writeFile(path, data); err != nil {
		return newError(KindIO, "write", path, format, err)
	}

	return nil
}

// Read decodes the document at path into v, which must be a non-nil pointer.
// The document replaces the value v points to; on error v is left unchanged.
func (c *FileCodec) Read(path string, format Format, v any) error {
	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newError(KindNotFound, "read", path, format, err)
		}
		return newError(KindIO, "read", path, format, err)
	}

	if err := c.decode(data, format, v); err != nil {
		return newError(KindParse, "read", path, format, err)
	}

	return nil
}

// Read decodes the document at path as a T
func Read[T any](c *FileCodec, path string, format Format) (T, error) {
	var v T
	if err := c.Read(path, format, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Unmarshal decodes data as a T
func Unmarshal[T any](c *FileCodec, data []byte, format Format) (T, error) {
	var v T
	if err := c.Unmarshal(data, format, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (c *FileCodec) encode(v any, format Format) ([]byte, error) {
	s, err := c.Serializer(format)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *FileCodec) decode(data []byte, format Format, v any) error {
	s, err := c.Serializer(format)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", v)
	}

	fresh := reflect.New(rv.Elem().Type())
	if err := s.Decode(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)), fresh.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

func (c *FileCodec) writeFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, c.fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
