package pkgmap

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Document is a package-name mapping for one element. Each tier maps logical
// package names to distro-specific package names, with more specific tiers
// overriding less specific ones during resolution.
type Document struct {
	// Default is the distro-agnostic fallback tier.
	Default map[string]string `yaml:"default,omitempty" json:"default,omitempty"`

	// Family maps an OS family (e.g. "redhat") to its name overrides.
	Family map[string]map[string]string `yaml:"family,omitempty" json:"family,omitempty"`

	// Distro maps a distro identifier (e.g. "fedora") to its name overrides.
	Distro map[string]map[string]string `yaml:"distro,omitempty" json:"distro,omitempty"`

	// Release maps a distro identifier to per-release name overrides, the most
	// specific tier.
	Release map[string]map[string]map[string]string `yaml:"release,omitempty" json:"release,omitempty"`
}

// LoadDocument reads and parses the mapping document at path.
//
// A missing file is reported as [ErrNotFound] so callers can distinguish "no
// mapping defined" from a broken one. Any parse failure is returned as a
// [MalformedDocumentError] wrapping the original diagnostic.
func LoadDocument(path string) (*Document, error) {
	dt, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, path)
		}
		return nil, errors.Wrapf(err, "error reading mapping document %s", path)
	}
	return ParseDocument(path, dt)
}

// ParseDocument parses dt as a mapping document. The document must be YAML
// (which includes plain JSON). Unknown top-level sections and duplicate keys
// are rejected rather than silently dropped.
func ParseDocument(path string, dt []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalWithOptions(dt, &doc, yaml.Strict()); err != nil {
		return nil, &MalformedDocumentError{Path: path, Err: err}
	}
	return &doc, nil
}
