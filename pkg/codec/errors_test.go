package codec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := newError(KindIO, "write", "a.json", FormatJSON, errors.New("disk full"))
	wrapped := fmt.Errorf("saving report: %w", err)

	assert.True(t, errors.Is(wrapped, ErrIO))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrEncoding))
	assert.Equal(t, KindIO, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestError_Message(t *testing.T) {
	err := newError(KindEncoding, "write", "a.xml", FormatXML, errors.New("unsupported type"))
	assert.Equal(t, "codec: write a.xml (xml): EncodingFailure: unsupported type", err.Error())

	assert.Equal(t, "codec: NotFound", ErrNotFound.Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "ParseFailure", KindParse.String())
	assert.Equal(t, "EncodingFailure", KindEncoding.String())
	assert.Equal(t, "IOFailure", KindIO.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}
