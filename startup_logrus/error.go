package startup_logrus

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// FieldError carries logrus fields along with an error, so the
// code that finally logs the error can add them to the log entry.
type FieldError struct {
	Err    error
	Fields logrus.Fields
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error with fields"
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// WithFields attaches the fields to the error. If the error already is
// or wraps a FieldError, the fields are merged into the existing one.
func WithFields(err error, fields logrus.Fields) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		if fe.Fields == nil {
			fe.Fields = logrus.Fields{}
		}

		for k, v := range fields {
			fe.Fields[k] = v
		}

		return err
	}

	return &FieldError{
		Err:    err,
		Fields: fields,
	}
}

// FieldsOf returns the fields attached to the error, or an empty set of fields.
func FieldsOf(err error) logrus.Fields {
	var fe *FieldError
	if errors.As(err, &fe) && fe.Fields != nil {
		return fe.Fields
	}

	return logrus.Fields{}
}
