package pipeline

import (
	"encoding/json"

	"go-record-pipeline/internal/model"
)

// Codec serializes one Record into its on-disk byte form. The pipeline
// never interprets the encoded bytes.
type Codec interface {
	Encode(rec model.Record) ([]byte, error)
}

// JSONCodec encodes records as JSON documents, one document per file.
type JSONCodec struct{}

// Encode implements Codec.
func (JSONCodec) Encode(rec model.Record) ([]byte, error) {
	return json.Marshal(rec)
}
