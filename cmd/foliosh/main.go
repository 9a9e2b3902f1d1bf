// Package main provides the foliosh command: a portfolio shell over a synthetic
// file tree, run as a terminal UI, as a one-shot command runner, or mounted
// read-only through FUSE.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	rootUse              = "foliosh"
	rootShortDescription = "browse a portfolio as a tiny shell"
	rootLongDescription  = `foliosh presents a profile (biography, work history, projects, skills and
contact details) as a small read-only file tree you can explore with ls, cd and cat.
Run without arguments for the interactive terminal.`

	configFlagName      = "config"
	profileFlagName     = "profile"
	logLevelFlagName    = "log-level"
	metricsAddrFlagName = "metrics-addr"
)

// exitCodeError carries a shell exit code out of a command.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, configFlagName, "", "config file (default ~/.config/foliosh/config.json)")
	flags.StringVar(&opts.profilePath, profileFlagName, "", "profile YAML or JSON file (default: built-in profile)")
	flags.StringVar(&opts.logLevel, logLevelFlagName, "", "log level: debug, info, warn or error (output is set by log.output in the config)")
	flags.StringVar(&opts.metricsAddr, metricsAddrFlagName, "", "serve Prometheus metrics on this address, e.g. :9090")

	root.AddCommand(newExecCommand(opts), newMountCommand(opts))
	return root
}
