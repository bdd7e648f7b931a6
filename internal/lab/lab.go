// Package lab implements the heterogeneous sequence demonstration. A
// string-declared sequence is populated through the checked insertion
// path, violated once through the unsafe storage handle, and then read
// by consumers that make different assumptions about element types.
package lab

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vajrock/erasure-lab/internal/config"
	"github.com/vajrock/erasure-lab/internal/sequence"
)

// Lab owns a single string-declared sequence and the operations that
// populate and inspect it. A Lab is single-threaded; it is never shared
// across goroutines.
type Lab struct {
	id     uuid.UUID
	config *config.Config
	seq    *sequence.Sequence
}

// New creates a Lab with an empty sequence.
func New(cfg *config.Config) *Lab {
	return &Lab{
		id:     uuid.New(),
		config: cfg,
		seq:    sequence.New(),
	}
}

// ID returns the unique identifier of this lab run.
func (l *Lab) ID() uuid.UUID {
	return l.id
}

// Initialize populates the sequence. The configured string values go
// through the checked Append path, and the foreign value is inserted
// through the unsafe handle once ForeignIndex values have been
// appended. The foreign insert itself raises no signal; the only
// possible error is failure to acquire the unsafe handle, which means
// the demonstration setup is broken rather than the data.
func (l *Lab) Initialize() error {
	for i, v := range l.config.StringValues {
		if i == l.config.ForeignIndex {
			if err := l.insertForeignBypassingTypeCheck(); err != nil {
				return fmt.Errorf("foreign insert: %w", err)
			}
		}
		l.seq.Append(v)
	}
	if l.config.ForeignIndex >= len(l.config.StringValues) {
		if err := l.insertForeignBypassingTypeCheck(); err != nil {
			return fmt.Errorf("foreign insert: %w", err)
		}
	}
	return nil
}

// insertForeignBypassingTypeCheck appends the configured numeric value
// directly into the sequence storage, skipping the type-checked Append
// path. Nothing detects the declared-type violation at this point.
func (l *Lab) insertForeignBypassingTypeCheck() error {
	h, err := l.seq.Unsafe()
	if err != nil {
		return fmt.Errorf("acquiring unsafe storage handle: %w", err)
	}
	h.Append(sequence.Int(l.config.ForeignValue))
	return nil
}

// FormatValues renders every element as an opaque value, in insertion
// order. No string-specific operation is applied, so the presence of a
// foreign element is invisible and the call never fails.
func (l *Lab) FormatValues() string {
	var b strings.Builder
	b.WriteString("The Strings collection value is: [")
	for i, v := range l.seq.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(v.Display())
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// FormatReversedValues renders every element with its characters
// reversed, assuming each is of the declared string type. The first
// element whose concrete type is not string aborts the traversal with a
// *sequence.TypeMismatchError; no partial result is returned.
func (l *Lab) FormatReversedValues() (string, error) {
	var b strings.Builder
	b.WriteString("The Strings collection with values in reverse order is: [")
	for i, v := range l.seq.Values() {
		s, ok := v.AsString()
		if !ok {
			return "", &sequence.TypeMismatchError{
				Op:       "reverse",
				Index:    i,
				Actual:   v.TypeName(),
				Expected: sequence.KindString.String(),
			}
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(reverseString(s))
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String(), nil
}

// StringLengthAt reads the element at index i as an opaque value and
// dynamically invokes the string length operation on it. For string
// elements it returns the decimal length; for the foreign element the
// dispatch fails with a *sequence.InvalidOperationError.
func (l *Lab) StringLengthAt(i int) (string, error) {
	v, err := l.seq.At(i)
	if err != nil {
		return "", err
	}
	res, err := v.Invoke("length")
	if err != nil {
		return "", err
	}
	return res.Display(), nil
}

// InvokeLengthOnForeignElement invokes the string length operation at
// the known foreign insertion position.
func (l *Lab) InvokeLengthOnForeignElement() (string, error) {
	return l.StringLengthAt(l.config.ForeignIndex)
}

// reverseString reverses the character sequence of s.
func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
