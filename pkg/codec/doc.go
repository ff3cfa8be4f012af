// Package codec provides file serialization for plain Go records.
//
// The codec package converts a record, or an ordered slice of records, into a
// textual document and back. Three formats are supported:
//
//   - JSON: indented objects, one key per exported field
//   - XML: one element per record, sequences wrapped in an ArrayOf<Element> root
//   - YAML: block-style mappings
//
// # Usage
//
// Writing and reading a document:
//
//	c := codec.NewFileCodec(codec.FileCodecConfig{})
//
//	// Write a slice of records
//	if err := c.Write(books, codec.FormatXML, "book.xml"); err != nil {
//	    return err
//	}
//
//	// Read it back; the type argument is the expected shape
//	loaded, err := codec.Read[[]Book](c, "book.xml", codec.FormatXML)
//	if err != nil {
//	    return err
//	}
//
// # Round Trips
//
// A record written and then read in the same format is equal field for field
// to the value that was written. Slices keep their order and length. Decimal
// values are written in their shortest exact form, so 49.99 stays 49.99.
//
// Text that a format would otherwise rewrite is refused with EncodingFailure:
// invalid UTF-8 in JSON and XML, and control characters other than tab, CR
// and LF in XML. XML has no empty list, so an empty slice field reads back as
// nil; JSON and YAML keep it empty.
//
// Read and Unmarshal replace the value the target points to and leave it
// unchanged on error.
//
// Values are encoded in memory before the destination is opened. A value that
// cannot be encoded never truncates an existing file.
//
// # Error Handling
//
// Every failure is returned as an *Error carrying a Kind:
//   - NotFound: the source file does not exist
//   - ParseFailure: the text is malformed or does not match the expected shape
//   - EncodingFailure: a value cannot be represented in the target format
//   - IOFailure: the file could not be opened, read or written
//
// Use errors.Is with ErrNotFound, ErrParse, ErrEncoding or ErrIO, or KindOf,
// to branch on the kind.
//
// # Thread Safety
//
// A FileCodec is safe for concurrent use once configured. Register must not be
// called concurrently with Write or Read. Concurrent access to the same file
// is not coordinated.
package codec
