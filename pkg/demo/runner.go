package demo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/ssargent/roundtrip/pkg/codec"
)

// RunnerConfig configures a demonstration run
type RunnerConfig struct {
	Codec     *codec.FileCodec
	Logger    *zap.Logger
	Out       io.Writer
	OutputDir string
	NoColor   bool
}

// Summary reports what a run did
type Summary struct {
	Steps    int
	Files    []string
	Failures int
}

// Runner executes the fixed sequence of serialization examples
type Runner struct {
	codec *codec.FileCodec
	log   *zap.Logger
	out   io.Writer
	dir   string

	ok   *color.Color
	bad  *color.Color
	head *color.Color

	summary Summary
}

type step struct {
	title string
	run   func()
}

// NewRunner creates a runner; nil fields get working defaults
func NewRunner(config RunnerConfig) *Runner {
	if config.Codec == nil {
		config.Codec = codec.NewFileCodec(codec.FileCodecConfig{})
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}

	r := &Runner{
		codec: config.Codec,
		log:   config.Logger,
		out:   config.Out,
		dir:   config.OutputDir,
		ok:    color.New(color.FgGreen),
		bad:   color.New(color.FgRed),
		head:  color.New(color.Bold),
	}
	if config.NoColor {
		r.ok.DisableColor()
		r.bad.DisableColor()
		r.head.DisableColor()
	}
	return r
}

// Run executes every step in order. A failing step is reported and the next
// one still runs; Run itself never fails.
func (r *Runner) Run() Summary {
	r.summary = Summary{}
	r.head.Fprint(r.out, "=== SERIALIZATION: CREATE AND READ FILES ===\n\n")

	steps := []step{
		{title: "JSON FILE EXAMPLE", run: r.peopleJSON},
		{title: "XML FILE EXAMPLE", run: r.booksXML},
		{title: "MULTIPLE STUDENTS EXAMPLE", run: r.studentsJSON},
		{title: "USING UTILITY CLASS", run: r.productAllFormats},
		{title: "ERROR REPORTING EXAMPLE", run: r.errorReporting},
	}

	for _, s := range steps {
		r.head.Fprintf(r.out, "=== %s ===\n", s.title)
		s.run()
		fmt.Fprintln(r.out)
		r.summary.Steps++
	}

	fmt.Fprintf(r.out, "Done: %d steps, %d files written, %d failures\n",
		r.summary.Steps, len(r.summary.Files), r.summary.Failures)
	r.log.Info("demonstration finished",
		zap.Int("steps", r.summary.Steps),
		zap.Int("files", len(r.summary.Files)),
		zap.Int("failures", r.summary.Failures))

	return r.summary
}

func (r *Runner) peopleJSON() {
	path := r.path("person.json")
	if generate(r, SamplePeople(), codec.FormatJSON, path) {
		r.showFile(path)
	}

	fmt.Fprint(r.out, "\n--- Reading from file ---\n")
	people, ok := load[[]Person](r, path, codec.FormatJSON)
	if !ok {
		return
	}
	for _, p := range people {
		PrintPerson(r.out, p)
		fmt.Fprintln(r.out)
	}
}

func (r *Runner) booksXML() {
	path := r.path("book.xml")
	if generate(r, SampleBooks(), codec.FormatXML, path) {
		r.showFile(path)
	}

	fmt.Fprint(r.out, "\n--- Reading from file ---\n")
	books, ok := load[[]Book](r, path, codec.FormatXML)
	if !ok {
		return
	}
	for _, b := range books {
		PrintBook(r.out, b)
	}
}

func (r *Runner) studentsJSON() {
	students := SampleStudents()
	path := r.path("students.json")
	if generate(r, students, codec.FormatJSON, path) {
		fmt.Fprintf(r.out, "  (%d students)\n", len(students))
	}

	fmt.Fprint(r.out, "\n--- Reading all students from file ---\n")
	loaded, ok := load[[]Student](r, path, codec.FormatJSON)
	if !ok {
		return
	}
	for _, s := range loaded {
		PrintStudent(r.out, s)
	}
}

func (r *Runner) productAllFormats() {
	product := SampleProduct()
	for _, f := range codec.Formats() {
		generate(r, product, f, r.path("product"+f.Ext()))
	}

	for _, f := range codec.Formats() {
		loaded, ok := load[Product](r, r.path("product"+f.Ext()), f)
		if !ok {
			continue
		}
		fmt.Fprintf(r.out, "From %s: %s - $%s\n", strings.ToUpper(string(f)), loaded.Name, FormatPrice(loaded.Price))
	}
}

// errorReporting reads documents that are expected to fail and checks that
// the failure is reported with the right kind.
func (r *Runner) errorReporting() {
	probe[Person](r, r.path("missing.json"), codec.FormatJSON, codec.KindNotFound)
	probe[Product](r, r.path("person.json"), codec.FormatJSON, codec.KindParse)
}

func (r *Runner) path(name string) string {
	return filepath.Join(r.dir, name)
}

func (r *Runner) showFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.fail("Error showing file", path, "", err)
		return
	}
	fmt.Fprintln(r.out, "File contents:")
	fmt.Fprint(r.out, string(data))
}

func (r *Runner) fail(msg, path string, format codec.Format, err error) {
	r.summary.Failures++
	r.log.Error(strings.ToLower(msg),
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Stringer("kind", codec.KindOf(err)),
		zap.Error(err))
	r.bad.Fprintf(r.out, "%s: %v\n", msg, err)
}

func generate[T any](r *Runner, v T, format codec.Format, path string) bool {
	if err := r.codec.Write(v, format, path); err != nil {
		r.fail("Error generating file", path, format, err)
		return false
	}

	r.summary.Files = append(r.summary.Files, path)
	r.log.Debug("document written", zap.String("path", path), zap.String("format", string(format)))
	r.ok.Fprintf(r.out, "✓ Generated file: %s\n", path)
	return true
}

func load[T any](r *Runner, path string, format codec.Format) (T, bool) {
	v, err := codec.Read[T](r.codec, path, format)
	if err != nil {
		r.fail("Error reading file", path, format, err)
		return v, false
	}
	return v, true
}

func probe[T any](r *Runner, path string, format codec.Format, want codec.Kind) {
	_, err := codec.Read[T](r.codec, path, format)
	if err == nil {
		r.fail("Expected failure", path, format, fmt.Errorf("reading as %T succeeded, want %s", *new(T), want))
		return
	}

	got := codec.KindOf(err)
	if got != want {
		r.fail("Unexpected failure", path, format, err)
		return
	}

	r.log.Warn("read rejected",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Stringer("kind", got),
		zap.Error(err))
	r.ok.Fprintf(r.out, "✓ %s reported: %v\n", got, err)
}
