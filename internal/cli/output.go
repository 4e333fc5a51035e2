package cli

import (
	"encoding/json"
	"io"
	"reflect"
)

// WriteOutput writes v as indented JSON, or as one compact JSON value per
// line with --jsonl. Slices are written one element per line.
func WriteOutput(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if !IsJSONLOutput() {
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return enc.Encode(v)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := enc.Encode(rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}
