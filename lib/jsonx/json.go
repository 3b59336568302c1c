package jsonx

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshal unmarshalls a value of the type T.
func Unmarshal[T any](bytes []byte) (T, error) {
	var target T
	err := json.Unmarshal(bytes, &target)
	return target, err
}

// Read reads exactly one json value of the type T from the reader.
func Read[T any](reader io.Reader) (T, error) {
	var target T
	err := json.UnmarshalRead(reader, &target)
	return target, err
}

// WriteIndented writes the value as indented json, followed by a newline.
func WriteIndented(writer io.Writer, value any) error {
	bytes, err := json.Marshal(value, jsontext.WithIndent("  "))
	if err != nil {
		return err
	}

	_, err = writer.Write(append(bytes, '\n'))
	return err
}
