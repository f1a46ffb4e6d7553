package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Reports are plain structs of numbers and slices, so JSON covers them
// fully; it is also the most portable option for downstream consumers
// (display shells, notebooks).
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = JSON{}
