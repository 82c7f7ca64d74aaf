package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/pkgmap/pkgmap"
)

func main() {
	dt, err := generateJSONSchema()
	if err != nil {
		panic(err)
	}

	if len(os.Args) > 1 {
		// Write to file
		if err := os.WriteFile(os.Args[1], dt, 0644); err != nil {
			panic(err)
		}
		return
	}

	fmt.Println(string(dt))
}

// generateJSONSchema generates and returns the JSON schema for mapping
// documents. This schema can be used by editors and tools for validation and
// autocomplete.
func generateJSONSchema() ([]byte, error) {
	var r jsonschema.Reflector
	if err := r.AddGoComments("github.com/pkgmap/pkgmap", "./"); err != nil {
		return nil, err
	}

	schema := r.Reflect(&pkgmap.Document{})

	dt, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, err
	}

	return dt, nil
}
