package slicex

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned (or panicked with) when the input or the
	// transform function do not have the required shape. Nothing has been
	// invoked when this error is reported.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransformFailure matches every *TransformError.
	ErrTransformFailure = errors.New("transform failed")
)

// TransformError reports the failure of the transform function for the element
// at Index. Err is the error exactly as the transform returned it.
type TransformError struct {
	Index int
	Err   error
}

func (e *TransformError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transform element %d", e.Index)
	}

	return fmt.Sprintf("transform element %d: %s", e.Index, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Cause implements the causer interface of github.com/pkg/errors.
func (e *TransformError) Cause() error {
	return e.Err
}

func (e *TransformError) Is(target error) bool {
	return target == ErrTransformFailure
}

func invalidArgument(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrInvalidArgument, format, args...)
}
