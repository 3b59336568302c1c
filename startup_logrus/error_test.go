package startup_logrus

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestWithFields(t *testing.T) {
	errBase := errors.New("base")

	err := WithFields(errBase, logrus.Fields{"a": 1})
	err = WithFields(err, logrus.Fields{"b": 2})

	if !errors.Is(err, errBase) {
		t.Fatalf("expected error to wrap the base error")
	}

	fields := FieldsOf(err)
	if fields["a"] != 1 || fields["b"] != 2 {
		t.Fatalf("expected merged fields, got %v", fields)
	}
}

func TestWithFieldsNil(t *testing.T) {
	if err := WithFields(nil, logrus.Fields{"a": 1}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	if fields := FieldsOf(errors.New("plain")); len(fields) != 0 {
		t.Fatalf("expected no fields, got %v", fields)
	}
}
