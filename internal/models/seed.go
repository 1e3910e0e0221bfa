package models

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

//go:embed seed.jsonc
var seedJSONC []byte

var seed = mustParseSeed(seedJSONC)

// DefaultDocument returns a fresh copy of the seed document.
func DefaultDocument() *AppData {
	return seed.Clone()
}

// ParseDocument decodes a document from JSON or JSONC (JSON with comments
// and trailing commas).
func ParseDocument(data []byte) (*AppData, error) {
	var d AppData
	if err := json.Unmarshal(jsonc.ToJSON(data), &d); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &d, nil
}

func mustParseSeed(data []byte) *AppData {
	d, err := ParseDocument(data)
	if err != nil {
		panic(err)
	}
	if d.Settings == nil {
		panic("seed document has no settings")
	}
	return d
}
