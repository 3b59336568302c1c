package startup_logrus

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetLogger(t *testing.T) {
	ctx := context.Background()

	log := logrus.WithField("a", 1)
	ctx = WithLogger(ctx, log)

	entry := GetLogger(ctx, "test")

	value := entry.Data["a"].(int)
	if value != 1 {
		t.Fatalf("value should be 1, but was %d", value)
	}

	if prefix := entry.Data["prefix"]; prefix != "test" {
		t.Fatalf("expected prefix 'test' but got '%v'", prefix)
	}
}

func TestGetLoggerWithoutLogger(t *testing.T) {
	entry := GetLogger(context.Background(), "empty")

	if prefix := entry.Data["prefix"]; prefix != "empty" {
		t.Fatalf("expected prefix 'empty' but got '%v'", prefix)
	}

	if len(entry.Data) != 1 {
		t.Fatalf("expected only the prefix field, got %v", entry.Data)
	}
}
