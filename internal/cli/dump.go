package cli

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkgmap/pkgmap"
)

func newDumpCmd(v *viper.Viper) *cobra.Command {
	var (
		doc    documentFlags
		format string
	)

	cmd := &cobra.Command{
		Use:           "dump",
		Short:         "Print the effective merged mapping for a distro",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			distro := queryString(cmd, v, "distro")
			if distro == "" {
				return &usageError{"no distro specified: use --distro or set DISTRO_NAME"}
			}

			d, _, err := doc.load(v)
			if err != nil {
				return err
			}
			effective := d.Effective(distro, queryString(cmd, v, "release"))

			switch format {
			case "yaml":
				ordered := yaml.MapSlice{}
				for _, k := range pkgmap.SortedKeys(effective) {
					ordered = append(ordered, yaml.MapItem{Key: k, Value: effective[k]})
				}
				dt, err := yaml.Marshal(ordered)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(dt))
			case "json":
				dt, err := json.MarshalIndent(effective, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(dt))
			default:
				return &usageError{fmt.Sprintf("unknown format %q: expected yaml or json", format)}
			}
			return nil
		},
	}

	addDocumentFlags(cmd, &doc)
	addQueryFlags(cmd)
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml or json)")
	return cmd
}
