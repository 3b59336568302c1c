package startup_base

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "startup-base")

func FatalOnError(err error, reason string, args ...interface{}) {
	if err != nil {
		log.Fatalf("%s: %s", fmt.Sprintf(reason, args...), err)
		return
	}
}

// OpenWriter opens the named file for writing logs. The names of the standard
// streams map to the streams, "-" is stderr as stdout carries the program output.
// "/dev/null" gives a nil file.
func OpenWriter(name string) (*os.File, error) {
	switch name {
	case "", "-", "/dev/stderr":
		return os.Stderr, nil

	case "/dev/stdout":
		return os.Stdout, nil

	case "/dev/null":
		return nil, nil

	default:
		// some output file
		return os.Create(name)
	}
}

// OpenReader opens the named file for reading, "-" or "/dev/stdin" give stdin.
func OpenReader(name string) (*os.File, error) {
	switch name {
	case "-", "/dev/stdin":
		return os.Stdin, nil

	default:
		return os.Open(name)
	}
}

type StartupError error

func Errorf(msg string, args ...interface{}) error {
	return StartupError(fmt.Errorf(msg, args...))
}

func Panicf(msg string, args ...interface{}) {
	panic(Errorf(msg, args...))
}

// Close closes the closer and logs a failure. The standard streams are never closed.
func Close(closer io.Closer, onErrorMessage string) {
	if isStandardStream(closer) {
		return
	}

	if err := closer.Close(); err != nil {
		log.WithError(err).Warn(onErrorMessage)
	}
}

func isStandardStream(closer io.Closer) bool {
	file, ok := closer.(*os.File)
	return ok && (file == os.Stdin || file == os.Stdout || file == os.Stderr)
}
