// Package iojson holds helpers for writing JSON output from CLI
// commands.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the standard shape emitted to stderr when a command fails in
// JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func fallbackError(msg string, jsonErr error) string {
	// json.Marshal on plain strings cannot fail; used for escaping.
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// WriteWith marshals obj as indented JSON to w. Marshal failures are
// reported as an Error blob on ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, fallbackError("error marshaling output", err))
		return werr
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}

// WriteErrorWith emits an Error blob to w.
func WriteErrorWith(w io.Writer, msg string, data map[string]any) error {
	blob, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		blob = []byte(fallbackError(msg, err))
	}
	_, err = fmt.Fprintln(w, string(blob))
	return err
}

// WriteError calls WriteErrorWith with [os.Stderr].
func WriteError(msg string, data map[string]any) error {
	return WriteErrorWith(os.Stderr, msg, data)
}
