package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// ExtensionKey is the document-level OpenAPI extension carrying the rule
// catalog for backends that publish it inline with their API description.
const ExtensionKey = "x-validation-rules"

// ExtractOpenAPI parses an OpenAPI document and pulls the rule catalog from
// the x-validation-rules document extension. Backends that ship their catalog
// this way avoid a second discovery endpoint; the extension value is the same
// array of definitions a standalone catalog file would hold.
func ExtractOpenAPI(ctx context.Context, data []byte) (*Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(data) == 0 {
		return nil, errors.New("catalog: openapi document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: load openapi document: %w", err)
	}

	raw, ok := spec.Extensions[ExtensionKey]
	if !ok || raw == nil {
		return New(), nil
	}

	// Extension values surface either decoded or as raw JSON depending on
	// the document source; a marshal round trip normalises both.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: encode %s extension: %w", ExtensionKey, err)
	}

	var definitions []Definition
	if err := json.Unmarshal(encoded, &definitions); err != nil {
		return nil, fmt.Errorf("catalog: decode %s extension: %w", ExtensionKey, err)
	}

	return New(definitions...), nil
}
