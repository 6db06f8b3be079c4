// Package api holds the wire types shared by the catalog service and
// the client.
package api

import (
	"encoding/json"

	"filmbox/internal/catalog"
)

// Envelope is the uniform response wrapper written by the service:
// {"success": bool, "data": ..., "error": ..., "count": ...} with
// operation-specific extras (message, category, deleted_media).
type Envelope struct {
	Success      bool            `json:"success"`
	Data         any             `json:"data,omitempty"`
	Error        string          `json:"error,omitempty"`
	Count        *int            `json:"count,omitempty"`
	Category     string          `json:"category,omitempty"`
	Message      string          `json:"message,omitempty"`
	DeletedMedia *catalog.Record `json:"deleted_media,omitempty"`
}

// Reply is the client-side view of an envelope; Data stays raw until the
// caller knows whether to expect a record or a list.
type Reply struct {
	Success      bool            `json:"success"`
	Data         json.RawMessage `json:"data"`
	Error        string          `json:"error"`
	Count        *int            `json:"count"`
	Category     string          `json:"category"`
	Message      string          `json:"message"`
	DeletedMedia *catalog.Record `json:"deleted_media"`
}

// Records decodes the data payload as a record list.
func (r Reply) Records() ([]catalog.Record, error) {
	if len(r.Data) == 0 {
		return nil, nil
	}
	var records []catalog.Record
	if err := json.Unmarshal(r.Data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Record decodes the data payload as a single record.
func (r Reply) Record() (*catalog.Record, error) {
	if len(r.Data) == 0 {
		return nil, nil
	}
	var rec catalog.Record
	if err := json.Unmarshal(r.Data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
