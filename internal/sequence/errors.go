package sequence

import "fmt"

// TypeMismatchError reports that an element's concrete type differs
// from the type a transformation requires. The violation is structural;
// retrying the same traversal cannot succeed.
type TypeMismatchError struct {
	// Op is the transformation that was being applied.
	Op string

	// Index is the position of the offending element.
	Index int

	// Actual is the concrete type name of the offending element.
	Actual string

	// Expected is the declared element type name.
	Expected string
}

// Error returns a human-readable description of the mismatch.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot apply %q to element at index %d: concrete type is %s, sequence declares %s",
		e.Op, e.Index, e.Actual, e.Expected)
}

// InvalidOperationError reports that an operation name valid for the
// declared element type was invoked on a value whose concrete type does
// not support it. It is distinct from TypeMismatchError: the failure is
// about operation applicability, not a cast.
type InvalidOperationError struct {
	// Op is the operation name that was invoked.
	Op string

	// Actual is the concrete type name of the receiver.
	Actual string

	// Expected is the type name the operation is valid for.
	Expected string
}

// Error returns a human-readable description of the failed invocation.
func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("operation %q is not valid for type %s (it is valid for the declared type %s)",
		e.Op, e.Actual, e.Expected)
}
