package slicex

// Filter does what it says and creates a new list with all values
// which evaluate the predicate to true. The input is never modified.
func Filter[T any](values []T, predicate func(value T) bool) []T {
	if predicate == nil {
		panic(invalidArgument("predicate function is nil"))
	}

	result := []T{}

	for _, value := range values {
		if predicate(value) {
			result = append(result, value)
		}
	}

	return result
}
