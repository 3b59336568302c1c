package startup_logrus

import (
	"github.com/flachnetz/slicemap/lib/slicex"
	"github.com/sirupsen/logrus"
)

// LoggedMap maps the input with a fresh Logged wrapper around the transform,
// so the logged index is always the index of the element in the input.
func LoggedMap[T any, R any](log logrus.FieldLogger, input []T, transform func(T) R) []R {
	return slicex.Map(input, Logged(log, transform))
}

// LoggedMapErr is LoggedMap for transforms that can fail.
func LoggedMapErr[T any, R any](log logrus.FieldLogger, input []T, transform func(T) (R, error)) ([]R, error) {
	return slicex.MapErr(input, LoggedErr(log, transform))
}

// Logged wraps the transform so that each call is logged on debug level with its
// input, output and a running call index. The returned function is single use:
// the counter is never reset, so pass it to exactly one mapping, or use LoggedMap.
func Logged[T any, R any](log logrus.FieldLogger, transform func(T) R) func(T) R {
	var idx int

	return func(value T) R {
		result := transform(value)

		log.WithFields(logrus.Fields{
			"index":  idx,
			"input":  value,
			"output": result,
		}).Debug("Transformed value")

		idx++
		return result
	}
}

// LoggedErr is Logged for transforms that can fail. Failures are logged on warn level.
// Like Logged, the returned function is single use.
func LoggedErr[T any, R any](log logrus.FieldLogger, transform func(T) (R, error)) func(T) (R, error) {
	var idx int

	return func(value T) (R, error) {
		result, err := transform(value)

		entry := log.WithFields(logrus.Fields{"index": idx, "input": value})
		if err != nil {
			entry.WithError(err).Warn("Transform failed")
		} else {
			entry.WithField("output", result).Debug("Transformed value")
		}

		idx++
		return result, err
	}
}
