package codec

import (
	"encoding/json"

	"github.com/klauspost/compress/s2"
)

// JSONS2 is a JSON codec whose output is s2-compressed.
//
// Sweep outputs over large ensembles repeat cluster summaries heavily and
// compress well; use this codec when reports are shipped or stored in bulk.
type JSONS2 struct{}

// Marshal encodes the value to JSON and compresses it with s2.
func (JSONS2) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return s2.Encode(nil, b), nil
}

// Unmarshal decompresses the s2 data and decodes the JSON into v.
func (JSONS2) Unmarshal(data []byte, v any) error {
	b, err := s2.Decode(nil, data)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, v)
}

// Name returns the unique name of the codec ("json-s2").
func (JSONS2) Name() string { return "json-s2" }
