package demo

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ssargent/roundtrip/pkg/codec"
)

// RecordType lets the CLI load and display documents of a record type chosen by name
type RecordType struct {
	Name string

	load func(c *codec.FileCodec, path string, f codec.Format) (any, error)
	rows func(v any) ([]string, [][]string, error)
}

var recordTypes = map[string]RecordType{
	"person": newRecordType("person",
		[]string{"NAME", "AGE", "EMAIL", "HOBBIES"},
		func(p Person) []string {
			return []string{p.Name, strconv.Itoa(p.Age), p.Email, strings.Join(p.Hobbies, ", ")}
		}),
	"book": newRecordType("book",
		[]string{"TITLE", "AUTHOR", "YEAR", "PRICE", "CATEGORIES"},
		func(b Book) []string {
			return []string{b.Title, b.Author, strconv.Itoa(b.Year), FormatPrice(b.Price), strings.Join(b.Categories, ", ")}
		}),
	"student": newRecordType("student",
		[]string{"NAME", "GRADE", "SUBJECT", "SCORE"},
		func(s Student) []string {
			return []string{s.Name, s.Grade, s.Subject, strconv.Itoa(s.Score)}
		}),
	"product": newRecordType("product",
		[]string{"ID", "NAME", "PRICE", "IN STOCK"},
		func(p Product) []string {
			return []string{strconv.Itoa(p.ID), p.Name, FormatPrice(p.Price), strconv.FormatBool(p.InStock)}
		}),
}

// LookupRecordType finds a record type by name
func LookupRecordType(name string) (RecordType, error) {
	rt, ok := recordTypes[strings.ToLower(name)]
	if !ok {
		return RecordType{}, fmt.Errorf("unknown record type %q (want one of %s)", name, strings.Join(RecordTypeNames(), ", "))
	}
	return rt, nil
}

// RecordTypeNames returns the registered names in sorted order
func RecordTypeNames() []string {
	names := make([]string, 0, len(recordTypes))
	for name := range recordTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a document holding either a sequence of records or a single
// record. The result is a []T or a T.
func (rt RecordType) Load(c *codec.FileCodec, path string, f codec.Format) (any, error) {
	return rt.load(c, path, f)
}

// WriteTable renders a value returned by Load as an aligned table
func (rt RecordType) WriteTable(w io.Writer, v any) error {
	header, rows, err := rt.rows(v)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func newRecordType[T any](name string, header []string, row func(T) []string) RecordType {
	return RecordType{
		Name: name,
		load: func(c *codec.FileCodec, path string, f codec.Format) (any, error) {
			items, err := codec.Read[[]T](c, path, f)
			if err == nil {
				return items, nil
			}
			if codec.KindOf(err) != codec.KindParse {
				return nil, err
			}

			item, err := codec.Read[T](c, path, f)
			if err != nil {
				return nil, err
			}
			return item, nil
		},
		rows: func(v any) ([]string, [][]string, error) {
			switch t := v.(type) {
			case []T:
				rows := make([][]string, 0, len(t))
				for _, item := range t {
					rows = append(rows, row(item))
				}
				return header, rows, nil
			case T:
				return header, [][]string{row(t)}, nil
			default:
				return nil, nil, fmt.Errorf("%s table: unexpected value of type %T", name, v)
			}
		},
	}
}
