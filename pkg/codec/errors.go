package codec

import (
	"errors"
	"fmt"
)

// Kind classifies codec failures
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindParse
	KindEncoding
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindParse:
		return "ParseFailure"
	case KindEncoding:
		return "EncodingFailure"
	case KindIO:
		return "IOFailure"
	default:
		return "Unknown"
	}
}

var (
	ErrNotFound = &Error{Kind: KindNotFound}
	ErrParse    = &Error{Kind: KindParse}
	ErrEncoding = &Error{Kind: KindEncoding}
	ErrIO       = &Error{Kind: KindIO}

	// ErrUnknownFormat is wrapped when a format has no registered serializer
	ErrUnknownFormat = errors.New("unknown format")
)

// Error describes a failed codec operation
type Error struct {
	Kind   Kind
	Op     string // "write", "read", "marshal" or "unmarshal"
	Path   string
	Format Format
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op
		if e.Path != "" {
			msg += " " + e.Path
		}
		if e.Format != "" {
			msg += " (" + string(e.Format) + ")"
		}
		msg += ": " + e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "codec: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a kind sentinel matching e
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

func newError(kind Kind, op, path string, format Format, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Format: format, Err: err}
}

func unknownFormat(f Format) error {
	return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}
