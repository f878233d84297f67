// Package rawjson turns raw JSON bytes into the value trees the
// canonicalizer consumes, keeping numbers as their literal text.
package rawjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

var ErrEmptyInput = errors.New("empty json input")
var ErrTrailingData = errors.New("trailing data after json value")

// Decode parses exactly one JSON value. Numbers come back as json.Number so
// the original literal form survives into the canonical output.
func Decode(raw []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return value, nil
}
