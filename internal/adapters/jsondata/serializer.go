// Package jsondata serializes export documents as indented JSON.
package jsondata

import (
	"encoding/json"
	"fmt"

	"shelfbox/internal/ports"
	"shelfbox/internal/transfer"
)

// Serializer implements ports.DataSerializer with encoding/json
type Serializer struct{}

var _ ports.DataSerializer = Serializer{}

// NewSerializer creates the JSON serializer
func NewSerializer() Serializer {
	return Serializer{}
}

func (Serializer) Serialize(data *transfer.ExportData) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export data: %w", err)
	}
	return string(out), nil
}

func (Serializer) Deserialize(text string) (*transfer.ExportData, error) {
	var data transfer.ExportData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("failed to parse export data: %w", err)
	}
	return &data, nil
}
