package ddb

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the wrapper the character service returns around a document
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// Decode reads a document. Both the bare document and the service envelope
// ({"success": true, "data": {...}}) are accepted.
func Decode(data []byte) (*Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Success != nil {
		if !*env.Success {
			return nil, fmt.Errorf("document envelope reports failure")
		}
		data = env.Data
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}
