package demo

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatPrice renders a decimal amount without exponent or padding
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func PrintPerson(w io.Writer, p Person) {
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Age: %d\n", p.Age)
	fmt.Fprintf(w, "Email: %s\n", p.Email)
	fmt.Fprintf(w, "Hobbies: %s\n", strings.Join(p.Hobbies, ", "))
}

func PrintBook(w io.Writer, b Book) {
	fmt.Fprintf(w, "Title: %s\n", b.Title)
	fmt.Fprintf(w, "Author: %s\n", b.Author)
	fmt.Fprintf(w, "Year: %d\n", b.Year)
	fmt.Fprintf(w, "Price: $%s\n", FormatPrice(b.Price))
	fmt.Fprintf(w, "Categories: %s\n", strings.Join(b.Categories, ", "))
}

func PrintStudent(w io.Writer, s Student) {
	fmt.Fprintf(w, "%s: %s in %s (Score: %d)\n", s.Name, s.Grade, s.Subject, s.Score)
}
