package pkgmap

import (
	"sort"

	"github.com/pkg/errors"
)

// ResolveOptions selects which tiers of a document apply to a query.
type ResolveOptions struct {
	// Distro selects the distro tier and, through [FamilyOf], the family tier.
	Distro string

	// Release selects the release tier. Optional; when empty the release tier
	// contributes nothing.
	Release string

	// MissingOK makes names absent from the effective mapping resolve to
	// themselves instead of failing the whole resolution.
	MissingOK bool
}

// Effective merges the document's tiers into the single mapping used to
// answer queries for the given distro and release. Tiers are overlaid
// key-by-key, least specific first: default, family, distro, release.
func (d *Document) Effective(distro, release string) map[string]string {
	out := make(map[string]string, len(d.Default))
	overlay := func(m map[string]string) {
		for k, v := range m {
			out[k] = v
		}
	}

	overlay(d.Default)
	overlay(d.Family[string(FamilyOf(distro))])
	overlay(d.Distro[distro])
	if release != "" {
		overlay(d.Release[distro][release])
	}
	return out
}

// Resolve maps each logical name to its distro-specific package name, in
// input order. Names mapped to the empty string are intentional suppressions
// and produce no entry. Names absent from the effective mapping resolve to
// themselves when opts.MissingOK is set; otherwise Resolve collects every
// absent name and returns an [UnresolvedError] listing all of them.
func (d *Document) Resolve(opts ResolveOptions, names ...string) ([]string, error) {
	if opts.Distro == "" {
		return nil, errors.New("no distro specified")
	}
	if len(names) == 0 {
		return nil, errors.New("no package names specified")
	}

	effective := d.Effective(opts.Distro, opts.Release)

	var out []string
	var missing []string
	for _, name := range names {
		mapped, ok := effective[name]
		switch {
		case ok && mapped != "":
			out = append(out, mapped)
		case ok:
			// present but empty: no package needed, suppress output
		case opts.MissingOK:
			out = append(out, name)
		default:
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, &UnresolvedError{Names: missing}
	}
	return out, nil
}

// SortedKeys returns the keys of m in lexical order, for deterministic
// iteration over the effective mapping.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
