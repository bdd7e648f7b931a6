// Package sequence implements an ordered container that is declared to
// hold string elements but enforces that declaration only at the public
// insertion API. Elements are stored as dynamically typed values, so a
// privileged handle to the underlying storage can insert any kind
// without a runtime signal.
package sequence

import "fmt"

// Sequence is an ordered, growable container declared to hold strings.
// Only call sites that go through Append preserve the declaration; the
// container itself makes no runtime guarantee about element types.
type Sequence struct {
	elems []Value
}

// New returns an empty Sequence ready for use.
func New() *Sequence {
	return &Sequence{elems: make([]Value, 0)}
}

// Append inserts a value through the type-checked path. Only the
// declared string type is accepted.
func (s *Sequence) Append(v string) {
	s.elems = append(s.elems, Str(v))
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return len(s.elems)
}

// At returns the element at index i as an opaque value.
func (s *Sequence) At(i int) (Value, error) {
	if i < 0 || i >= len(s.elems) {
		return Value{}, fmt.Errorf("index %d out of range [0,%d)", i, len(s.elems))
	}
	return s.elems[i], nil
}

// Values returns a copy of the elements in insertion order.
func (s *Sequence) Values() []Value {
	out := make([]Value, len(s.elems))
	copy(out, s.elems)
	return out
}

// Unsafe returns a privileged handle to the underlying storage. It
// fails only when the sequence was not constructed with New, in which
// case there is no storage to reach; callers treat that as a fatal
// setup fault.
func (s *Sequence) Unsafe() (*UnsafeHandle, error) {
	if s == nil || s.elems == nil {
		return nil, fmt.Errorf("sequence storage is not initialized")
	}
	return &UnsafeHandle{seq: s}, nil
}

// UnsafeHandle is a privileged reference to a sequence's underlying
// storage. Writes through the handle bypass the type-checked Append
// path entirely.
type UnsafeHandle struct {
	seq *Sequence
}

// Append writes a value of any kind directly into the storage. No
// signal is raised when the value's kind differs from the declared
// element type; the violation surfaces only at later read sites that
// assume the declaration.
func (h *UnsafeHandle) Append(v Value) {
	h.seq.elems = append(h.seq.elems, v)
}
