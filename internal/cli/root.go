// Package cli implements the pkg-map command tree.
package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkgmap/pkgmap"
	"github.com/pkgmap/pkgmap/internal/elements"
)

// New returns the pkg-map root command. The root command itself performs
// resolution; inspection commands (validate, dump, elements, schema) hang off
// of it.
func New() *cobra.Command {
	v := newViper()

	var (
		doc       documentFlags
		missingOK bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "pkg-map [flags] PACKAGE...",
		Short: "Resolve logical package names to distro-specific ones",
		Long: `pkg-map resolves logical package names to the names used by a target
distro, using a per-element mapping document with default, family, distro,
and release override tiers.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(cmd.ErrOrStderr())
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, v, &doc, missingOK, args)
		},
	}

	addDocumentFlags(cmd, &doc)
	addQueryFlags(cmd)
	cmd.Flags().BoolVar(&missingOK, "missing-ok", false, "resolve unmapped names to themselves instead of failing")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug tracing on stderr")

	cmd.AddCommand(
		newValidateCmd(v),
		newDumpCmd(v),
		newElementsCmd(v),
		newSchemaCmd(),
	)

	return cmd
}

// newViper binds the process environment the way the shell callers expect:
// DISTRO_NAME and DIB_RELEASE seed the query, ELEMENTS_PATH the element
// search path. Flags override the environment.
func newViper() *viper.Viper {
	v := viper.New()
	v.BindEnv("distro", "DISTRO_NAME")
	v.BindEnv("release", "DIB_RELEASE")
	v.BindEnv("elements-path", "ELEMENTS_PATH")
	v.SetDefault("elements-path", elements.DefaultPath)
	return v
}

// addQueryFlags registers --distro and --release. Their values fall back to
// the bound environment via queryString when the flags are unset.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("distro", "", "target distro (default $DISTRO_NAME)")
	cmd.Flags().String("release", "", "target release (default $DIB_RELEASE)")
}

// queryString returns the value of a query flag, falling back to the viper
// key (and through it, the environment) when the flag was not set on the
// command line.
func queryString(cmd *cobra.Command, v *viper.Viper, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return f.Value.String()
	}
	return v.GetString(name)
}

func runResolve(cmd *cobra.Command, v *viper.Viper, doc *documentFlags, missingOK bool, names []string) error {
	distro := queryString(cmd, v, "distro")
	if distro == "" {
		return &usageError{"no distro specified: use --distro or set DISTRO_NAME"}
	}
	release := queryString(cmd, v, "release")

	d, path, err := doc.load(v)
	if err != nil {
		if errors.Is(err, pkgmap.ErrNotFound) && missingOK {
			// No mapping document means no customization: every name
			// passes through unchanged.
			logrus.WithError(err).Debug("no mapping document, using identity passthrough")
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}
		return err
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"distro":  distro,
		"release": release,
		"family":  pkgmap.FamilyOf(distro),
	}).Debug("resolving package names")

	resolved, err := d.Resolve(pkgmap.ResolveOptions{
		Distro:    distro,
		Release:   release,
		MissingOK: missingOK,
	}, names...)
	if err != nil {
		return err
	}

	for _, name := range resolved {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
