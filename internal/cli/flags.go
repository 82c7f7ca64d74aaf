package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkgmap/pkgmap"
	"github.com/pkgmap/pkgmap/internal/elements"
)

// documentFlags selects the mapping document for a command: a named element
// looked up under the search path, or an explicit file path. Exactly one must
// be given.
type documentFlags struct {
	element string
	path    string
}

func addDocumentFlags(cmd *cobra.Command, f *documentFlags) {
	cmd.Flags().StringVar(&f.element, "element", "", "element whose mapping document to use")
	cmd.Flags().StringVar(&f.path, "pkg-map", "", "explicit path to a mapping document")
	cmd.MarkFlagsOneRequired("element", "pkg-map")
	cmd.MarkFlagsMutuallyExclusive("element", "pkg-map")
}

// locate resolves the document location without reading it.
func (f *documentFlags) locate(v *viper.Viper) (string, error) {
	if f.path != "" {
		return f.path, nil
	}
	return elements.Locate(v.GetString("elements-path"), f.element)
}

// load resolves and parses the selected document, returning it along with the
// location it was read from.
func (f *documentFlags) load(v *viper.Viper) (*pkgmap.Document, string, error) {
	path, err := f.locate(v)
	if err != nil {
		return nil, "", err
	}
	doc, err := pkgmap.LoadDocument(path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}
