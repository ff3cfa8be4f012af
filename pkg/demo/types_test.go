package demo

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/roundtrip/pkg/codec"
)

func TestLookupRecordType(t *testing.T) {
	rt, err := LookupRecordType("Book")
	require.NoError(t, err)
	assert.Equal(t, "book", rt.Name)

	_, err = LookupRecordType("invoice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "book, person, product, student")
}

func TestRecordType_Load(t *testing.T) {
	c := codec.NewFileCodec(codec.FileCodecConfig{})
	dir := t.TempDir()
	rt, err := LookupRecordType("product")
	require.NoError(t, err)

	for _, f := range codec.Formats() {
		t.Run(string(f)+"/single", func(t *testing.T) {
			path := filepath.Join(dir, "single"+f.Ext())
			require.NoError(t, c.Write(SampleProduct(), f, path))

			v, err := rt.Load(c, path, f)
			require.NoError(t, err)
			assert.Equal(t, SampleProduct(), v)
		})

		t.Run(string(f)+"/sequence", func(t *testing.T) {
			path := filepath.Join(dir, "many"+f.Ext())
			want := []Product{SampleProduct(), {ID: 102, Name: "Mouse", Price: 19.95}}
			require.NoError(t, c.Write(want, f, path))

			v, err := rt.Load(c, path, f)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := rt.Load(c, filepath.Join(dir, "nope.json"), codec.FormatJSON)
		assert.Equal(t, codec.KindNotFound, codec.KindOf(err))
	})

	t.Run("other record type", func(t *testing.T) {
		path := filepath.Join(dir, "book.xml")
		require.NoError(t, c.Write(SampleBooks(), codec.FormatXML, path))

		_, err := rt.Load(c, path, codec.FormatXML)
		assert.Equal(t, codec.KindParse, codec.KindOf(err))
	})
}

func TestRecordType_WriteTable(t *testing.T) {
	rt, err := LookupRecordType("student")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rt.WriteTable(&buf, SampleStudents()[:2]))
	assert.Equal(t,
		"NAME   GRADE  SUBJECT  SCORE\n"+
			"Alice  A      Math     95\n"+
			"Bob    B      Science  87\n",
		buf.String())

	buf.Reset()
	require.NoError(t, rt.WriteTable(&buf, SampleStudents()[2]))
	assert.Contains(t, buf.String(), "Charlie  A      History  92\n")

	assert.Error(t, rt.WriteTable(&buf, SampleBooks()))
}
