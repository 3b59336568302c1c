package slicex

// Map applies the mapper function to each item of the input slice and returns a new slice
// with the mapped values.
//
// The mapper is called exactly once per item, in order of the items in the input.
// The result always has the same length as the input and never shares storage with it,
// an empty input gives an empty (non nil) result. Map panics with ErrInvalidArgument if
// the mapper is nil, even if the input is empty.
func Map[T any, R any](input []T, mapper func(T) R) []R {
	if mapper == nil {
		panic(invalidArgument("mapper function is nil"))
	}

	result := make([]R, len(input))

	for idx, value := range input {
		result[idx] = mapper(value)
	}

	return result
}

// MapErr works like Map, but with a mapper that can fail. Mapping stops at the first
// item the mapper fails for. In that case no result is returned, only a *TransformError
// holding the index of the item and the error of the mapper.
func MapErr[T any, R any](input []T, mapper func(T) (R, error)) ([]R, error) {
	if mapper == nil {
		return nil, invalidArgument("mapper function is nil")
	}

	result := make([]R, len(input))

	for idx, value := range input {
		mapped, err := mapper(value)
		if err != nil {
			return nil, &TransformError{Index: idx, Err: err}
		}

		result[idx] = mapped
	}

	return result, nil
}
