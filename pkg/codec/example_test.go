package codec_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ssargent/roundtrip/pkg/codec"
)

type Product struct {
	ID      int
	Name    string
	Price   float64
	InStock bool
}

// ExampleFileCodec_Write writes a record as XML and reads it back
func ExampleFileCodec_Write() {
	dir, err := os.MkdirTemp("", "codec_example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	c := codec.NewFileCodec(codec.FileCodecConfig{})
	path := filepath.Join(dir, "product.xml")

	product := Product{ID: 101, Name: "Laptop", Price: 999.99, InStock: true}
	if err := c.Write(product, codec.FormatXML, path); err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))

	loaded, err := codec.Read[Product](c, path, codec.FormatXML)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("From XML: %s - $%v\n", loaded.Name, loaded.Price)

	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <Product>
	//   <ID>101</ID>
	//   <Name>Laptop</Name>
	//   <Price>999.99</Price>
	//   <InStock>true</InStock>
	// </Product>
	// From XML: Laptop - $999.99
}

// ExampleKindOf shows how a missing file is reported
func ExampleKindOf() {
	c := codec.NewFileCodec(codec.FileCodecConfig{})

	_, err := codec.Read[Product](c, filepath.Join(os.TempDir(), "does-not-exist.json"), codec.FormatJSON)
	fmt.Println(codec.KindOf(err))
	fmt.Println(errors.Is(err, codec.ErrNotFound))

	// Output:
	// NotFound
	// true
}
