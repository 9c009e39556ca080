// Package text provides an immutable text container with character-indexed operations.
//
// Lengths and indices count characters (runes), not bytes.
package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/boxkit/boxkit/slicing"
)

var (
	// ErrType is returned by Concat when the argument cannot be read as text.
	ErrType = errors.New("argument is not text")

	// ErrValue is returned by IndexOf when the searched item is not a string.
	ErrValue = errors.New("item must be a string")
)

// Text wraps a string value. The zero value is the empty text.
type Text struct {
	value string
}

// New creates a text holding value.
func New(value string) Text {
	return Text{value: value}
}

// Concat returns the value followed by other. The receiver is not modified.
//
// other may be a string, Text, *Text, []byte, []rune or fmt.Stringer.
// Numbers are rejected, including rune values, since rune is an int32.
func (t Text) Concat(other any) (string, error) {
	s, ok := asText(other)
	if !ok {
		return "", fmt.Errorf("concat %T: %w", other, ErrType)
	}
	return t.value + s, nil
}

// Substring returns the characters selected by b.
func (t Text) Substring(b slicing.Bound) (string, error) {
	runes, err := slicing.Apply([]rune(t.value), b)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// Len returns the number of characters.
func (t Text) Len() int {
	return utf8.RuneCountInString(t.value)
}

// IndexOf returns the character index of the first occurrence of item, or -1.
//
// An empty receiver always yields -1, before item is inspected.
// An empty item yields 0 on any non-empty receiver.
func (t Text) IndexOf(item any) (int, error) {
	if t.value == "" {
		return -1, nil
	}

	var needle string
	switch value := item.(type) {
	case string:
		needle = value
	case Text:
		needle = value.value
	default:
		return 0, fmt.Errorf("indexof %T: %w", item, ErrValue)
	}

	if needle == "" {
		return 0, nil
	}

	i := strings.Index(t.value, needle)
	if i < 0 {
		return -1, nil
	}
	return utf8.RuneCountInString(t.value[:i]), nil
}

// String returns the wrapped value.
func (t Text) String() string {
	return t.value
}

func asText(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case Text:
		return value.value, true
	case *Text:
		if value == nil {
			return "", true
		}
		return value.value, true
	case []byte:
		return string(value), true
	case []rune:
		return string(value), true
	case fmt.Stringer:
		return value.String(), true
	default:
		return "", false
	}
}
