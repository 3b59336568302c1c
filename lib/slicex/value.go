package slicex

import (
	"reflect"

	"github.com/hashicorp/go-multierror"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// MapValue is the reflection based version of Map and MapErr for values
// whose types are only known at runtime.
//
// The sequence must be a slice or an array. The transform must be a function taking
// one argument the elements are assignable to, returning either a single value or
// a value and an error. The result is a new slice of the transforms first result type.
//
// Shape problems are reported as ErrInvalidArgument before the transform is called.
// If both arguments are invalid, both problems are reported in a *multierror.Error.
func MapValue(sequence any, transform any) (any, error) {
	rSequence := reflect.ValueOf(sequence)
	rTransform := reflect.ValueOf(transform)

	var result *multierror.Error

	if err := checkSequence(rSequence); err != nil {
		result = multierror.Append(result, err)
	}

	if err := checkTransform(rTransform, rSequence); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	transformType := rTransform.Type()
	fallible := transformType.NumOut() == 2

	count := rSequence.Len()
	output := reflect.MakeSlice(reflect.SliceOf(transformType.Out(0)), count, count)

	args := make([]reflect.Value, 1)
	for idx := 0; idx < count; idx++ {
		args[0] = rSequence.Index(idx)

		results := rTransform.Call(args)
		if fallible && !results[1].IsNil() {
			return nil, &TransformError{Index: idx, Err: results[1].Interface().(error)}
		}

		output.Index(idx).Set(results[0])
	}

	return output.Interface(), nil
}

func checkSequence(rSequence reflect.Value) error {
	if !rSequence.IsValid() {
		return invalidArgument("sequence is nil")
	}

	switch rSequence.Kind() {
	case reflect.Slice, reflect.Array:
		return nil

	default:
		return invalidArgument("sequence of type %s is not a slice or array", rSequence.Type())
	}
}

func checkTransform(rTransform, rSequence reflect.Value) error {
	if !rTransform.IsValid() {
		return invalidArgument("transform is nil")
	}

	transformType := rTransform.Type()
	if transformType.Kind() != reflect.Func {
		return invalidArgument("transform of type %s is not a function", transformType)
	}

	if rTransform.IsNil() {
		return invalidArgument("transform function is nil")
	}

	if transformType.NumIn() != 1 || transformType.IsVariadic() {
		return invalidArgument("transform %s must accept exactly one argument", transformType)
	}

	switch transformType.NumOut() {
	case 1:
	case 2:
		if transformType.Out(1) != errorType {
			return invalidArgument("second result of transform %s must be an error", transformType)
		}

	default:
		return invalidArgument("transform %s must return a value and optionally an error", transformType)
	}

	// the element type can only be checked against a valid sequence
	if checkSequence(rSequence) == nil {
		elementType := rSequence.Type().Elem()
		if !elementType.AssignableTo(transformType.In(0)) {
			return invalidArgument("transform %s does not accept elements of type %s", transformType, elementType)
		}
	}

	return nil
}
