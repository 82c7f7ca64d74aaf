package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgmap/pkgmap"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for mapping documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), string(pkgmap.GetJSONSchema()))
			return err
		},
	}
}
