package pkgmap

import _ "embed"

//go:generate go run ./cmd/gen-jsonschema docs/pkg-map.schema.json

// schemaJSON contains the embedded JSON schema for mapping documents.
// This is generated at build time by running `go generate`.
//
//go:embed docs/pkg-map.schema.json
var schemaJSON []byte

// GetJSONSchema returns the embedded JSON schema for mapping documents.
func GetJSONSchema() []byte {
	return schemaJSON
}
