package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(v *viper.Viper) *cobra.Command {
	var doc documentFlags

	cmd := &cobra.Command{
		Use:           "validate",
		Short:         "Check that a mapping document parses",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := doc.load(v)
			if err != nil {
				return err
			}
			logrus.WithField("path", path).Debug("mapping document is valid")
			return nil
		},
	}

	addDocumentFlags(cmd, &doc)
	return cmd
}
