package jsonx

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Write encodes v as JSON to w, optionally indented by two spaces.
func Write(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode-json: %w", err)
	}
	return nil
}

func EncodeFile[T any](file string, t T, indent bool) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create-file %q: %w", file, err)
	}
	if err := writeClose(f, t, indent); err != nil {
		return fmt.Errorf("file %q: %w", file, err)
	}
	return nil
}

// writeClose writes v to wc and closes it. A close error is returned if the write succeeded.
func writeClose(wc io.WriteCloser, v any, indent bool) error {
	if err := Write(wc, v, indent); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

func DecodeFile[T any](file string) (T, error) {
	var t T
	f, err := os.Open(file)
	if err != nil {
		return t, fmt.Errorf("open-file %q: %w", file, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&t); err != nil {
		var zT T
		return zT, fmt.Errorf("decode-json: %w", err)
	}
	return t, nil
}
