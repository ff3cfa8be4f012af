package codec

import (
	"encoding"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

const maxTextDepth = 1000

var (
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	xmlMarshalerType  = reflect.TypeOf((*xml.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// textRules describes which strings a format can hold without rewriting them.
type textRules struct {
	tag       string // struct tag consulted for "-"
	xmlChars  bool   // restrict runes to the XML 1.0 Char production
	bytesText bool   // []byte is written as text rather than base64
	opaque    []reflect.Type
}

var (
	jsonText = textRules{tag: "json", opaque: []reflect.Type{jsonMarshalerType, textMarshalerType}}
	xmlText  = textRules{tag: "xml", xmlChars: true, bytesText: true, opaque: []reflect.Type{xmlMarshalerType, textMarshalerType}}
)

// checkText walks v and reports the first string the format would silently
// replace on encode: invalid UTF-8 for JSON and XML, and runes outside the
// XML character range for XML.
func checkText(v any, rules textRules) error {
	return rules.check(reflect.ValueOf(v), "", 0)
}

func (r textRules) check(v reflect.Value, path string, depth int) error {
	if !v.IsValid() {
		return nil
	}
	if depth > maxTextDepth {
		return fmt.Errorf("value nested deeper than %d levels", maxTextDepth)
	}
	if r.isOpaque(v.Type()) {
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		return r.checkString(v.String(), path)
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return r.check(v.Elem(), path, depth+1)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get(r.tag), ",")
			if name == "-" {
				continue
			}
			if err := r.check(v.Field(i), joinPath(path, f.Name), depth+1); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			if !r.bytesText {
				return nil
			}
			if v.Kind() == reflect.Slice {
				return r.checkString(string(v.Bytes()), path)
			}
		}
		for i := 0; i < v.Len(); i++ {
			if err := r.check(v.Index(i), fmt.Sprintf("%s[%d]", path, i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%s[%v]", path, iter.Key())
			if err := r.check(iter.Key(), key, depth+1); err != nil {
				return err
			}
			if err := r.check(iter.Value(), key, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r textRules) checkString(s, path string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%s: invalid UTF-8 in %q", fieldName(path), s)
	}
	if !r.xmlChars {
		return nil
	}
	for i, c := range s {
		if !isXMLChar(c) {
			return fmt.Errorf("%s: character %U at byte %d is not allowed in XML", fieldName(path), c, i)
		}
	}
	return nil
}

func (r textRules) isOpaque(t reflect.Type) bool {
	for _, m := range r.opaque {
		if t.Implements(m) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(m)) {
			return true
		}
	}
	return false
}

// isXMLChar reports whether c is in the XML 1.0 Char production.
func isXMLChar(c rune) bool {
	return c == 0x09 || c == 0x0A || c == 0x0D ||
		(c >= 0x20 && c <= 0xD7FF) ||
		(c >= 0xE000 && c <= 0xFFFD) ||
		(c >= 0x10000 && c <= 0x10FFFF)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func fieldName(path string) string {
	if path == "" {
		return "value"
	}
	return path
}
