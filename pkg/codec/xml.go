package codec

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// XMLSerializer implements Serializer for XML.
//
// A slice is written as a container root named ArrayOf<Element> holding one
// element per item. Decoding checks that the root element, and each item of a
// sequence, carries the name the target type would be encoded with.
//
// Strings holding invalid UTF-8 or characters outside the XML 1.0 range fail
// to encode. XML has no empty list, so a nil and an empty slice field both
// read back as nil.
type XMLSerializer struct {
	Indent string
}

func (s XMLSerializer) Encode(w io.Writer, v any) error {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return errors.New("xml: cannot encode nil value")
	}
	if err := checkText(rv.Interface(), xmlText); err != nil {
		return fmt.Errorf("xml: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	if s.Indent != "" {
		enc.Indent("", s.Indent)
	}

	if isSequence(rv.Type()) {
		start := xml.StartElement{Name: xml.Name{Local: rootName(rv.Type())}}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		for i := 0; i < rv.Len(); i++ {
			if err := enc.Encode(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(start.End()); err != nil {
			return err
		}
		if err := enc.Flush(); err != nil {
			return err
		}
	} else if err := enc.Encode(v); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func (XMLSerializer) Decode(r io.Reader, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("xml: decode target must be a non-nil pointer, got %T", v)
	}

	dec := xml.NewDecoder(r)
	start, err := nextStart(dec)
	if err != nil {
		return err
	}

	target := rv.Elem()
	if err := checkName(start, target.Type()); err != nil {
		return err
	}
	if !isSequence(target.Type()) {
		return dec.DecodeElement(v, &start)
	}

	elemType := target.Type().Elem()
	items := reflect.MakeSlice(target.Type(), 0, 0)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := checkName(t, elemType); err != nil {
				return err
			}
			item := reflect.New(elemType)
			if err := dec.DecodeElement(item.Interface(), &t); err != nil {
				return err
			}
			items = reflect.Append(items, item.Elem())
		case xml.EndElement:
			target.Set(items)
			return nil
		}
	}
}

// nextStart skips the prolog and returns the root element
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, errors.New("xml: no root element")
			}
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func checkName(start xml.StartElement, t reflect.Type) error {
	want := rootName(t)
	if want == "" || start.Name.Local == want {
		return nil
	}
	return fmt.Errorf("xml: unexpected element <%s>, want <%s>", start.Name.Local, want)
}

func isSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8
}

// rootName returns the element name encoding/xml uses for a value of type t,
// or "" when t has no fixed name.
func rootName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if isSequence(t) {
		elem := rootName(t.Elem())
		if elem == "" {
			return "ArrayOfAnyType"
		}
		r, size := utf8.DecodeRuneInString(elem)
		return "ArrayOf" + string(unicode.ToUpper(r)) + elem[size:]
	}
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName("XMLName"); ok {
			if name := xmlTagName(f.Tag.Get("xml")); name != "" {
				return name
			}
		}
	}
	return t.Name()
}

// xmlTagName extracts the local name from an xml struct tag such as
// "urn:ns book,attr".
func xmlTagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}
