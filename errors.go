package hkaccessory

import "fmt"

// InvalidValueError reports an incoming wire value that is well-formed but
// not acceptable for the declared format, e.g. the number 2 for a bool
// characteristic where only 0 and 1 are understood.
type InvalidValueError struct {
	Format Format
	Value  interface{}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v for format %s", e.Value, e.Format)
}

// DecodeError reports an incoming wire value whose structure does not match
// the declared format at all.
type DecodeError struct {
	Format Format
	err    error
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode value for format %s: %v", e.Format, e.err)
}
