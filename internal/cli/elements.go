package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkgmap/pkgmap/internal/elements"
)

func newElementsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:           "elements",
		Short:         "List elements that carry a mapping document",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range elements.List(v.GetString("elements-path")) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
