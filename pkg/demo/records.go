package demo

// Person is a contact with a list of hobbies
type Person struct {
	Name    string   `json:"Name" xml:"Name" yaml:"Name"`
	Age     int      `json:"Age" xml:"Age" yaml:"Age"`
	Email   string   `json:"Email" xml:"Email" yaml:"Email"`
	Hobbies []string `json:"Hobbies" xml:"Hobbies>Hobby" yaml:"Hobbies"`
}

// Book is a catalogue entry; Price is a decimal amount in dollars
type Book struct {
	Title      string   `json:"Title" xml:"Title" yaml:"Title"`
	Author     string   `json:"Author" xml:"Author" yaml:"Author"`
	Year       int      `json:"Year" xml:"Year" yaml:"Year"`
	Price      float64  `json:"Price" xml:"Price" yaml:"Price"`
	Categories []string `json:"Categories" xml:"Categories>Category" yaml:"Categories"`
}

type Student struct {
	Name    string `json:"Name" xml:"Name" yaml:"Name"`
	Grade   string `json:"Grade" xml:"Grade" yaml:"Grade"`
	Subject string `json:"Subject" xml:"Subject" yaml:"Subject"`
	Score   int    `json:"Score" xml:"Score" yaml:"Score"`
}

type Product struct {
	ID      int     `json:"Id" xml:"Id" yaml:"Id"`
	Name    string  `json:"Name" xml:"Name" yaml:"Name"`
	Price   float64 `json:"Price" xml:"Price" yaml:"Price"`
	InStock bool    `json:"InStock" xml:"InStock" yaml:"InStock"`
}

// SamplePeople returns the people written by the JSON step
func SamplePeople() []Person {
	return []Person{
		{
			Name:    "John Doe",
			Age:     30,
			Email:   "john@example.com",
			Hobbies: []string{"Reading", "Gaming", "Cooking"},
		},
		{
			Name:    "Klime Doe",
			Age:     30,
			Email:   "klime@example.com",
			Hobbies: []string{"Gaming", "Cooking"},
		},
	}
}

// SampleBooks returns the books written by the XML step
func SampleBooks() []Book {
	return []Book{
		{
			Title:      "C# Programming Guide",
			Author:     "Jane Smith",
			Year:       2024,
			Price:      49.99,
			Categories: []string{"Programming", "Technology", "Education"},
		},
		{
			Title:      "Data Formats in Practice",
			Author:     "Jane Smith",
			Year:       2023,
			Price:      39.5,
			Categories: []string{"Programming", "Technology"},
		},
	}
}

func SampleStudents() []Student {
	return []Student{
		{Name: "Alice", Grade: "A", Subject: "Math", Score: 95},
		{Name: "Bob", Grade: "B", Subject: "Science", Score: 87},
		{Name: "Charlie", Grade: "A", Subject: "History", Score: 92},
	}
}

func SampleProduct() Product {
	return Product{ID: 101, Name: "Laptop", Price: 999.99, InStock: true}
}
