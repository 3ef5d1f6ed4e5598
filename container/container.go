// Package container implements the JSON envelope:
// {"version": 1, "data": "<base64 of raw bytecode>"}.
package container

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Version is the only container version this package accepts on decode.
const Version = 1

// envelope mirrors the wire JSON shape exactly; Data is base64 text, kept as
// a string field here rather than []byte so encoding/json doesn't also
// base64-encode an already-encoded value.
type envelope struct {
	Version int    `json:"version"`
	Data    string `json:"data"`
}

// Encode wraps raw bytecode in the JSON container.
func Encode(data []byte) ([]byte, error) {
	env := envelope{
		Version: Version,
		Data:    base64.StdEncoding.EncodeToString(data),
	}
	return json.Marshal(env)
}

// Decode unwraps the JSON container, rejecting any version other than
// Version.
func Decode(data []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("💥 invalid ledctrl JSON container: %w", err)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("💥 unsupported ledctrl container version: %d", env.Version)
	}
	raw, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, fmt.Errorf("💥 invalid base64 payload in ledctrl container: %w", err)
	}
	return raw, nil
}
