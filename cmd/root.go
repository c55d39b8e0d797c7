package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sensing-dev/sdprobe/internal/config"
	"github.com/sensing-dev/sdprobe/pkg/probe"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configDir string
	logLevel  string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", os.Getenv(probe.EnvConfigDir), "directory with additional .hcl probe definitions")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

var rootCmd = &cobra.Command{
	Use:   "sdprobe",
	Short: "sdprobe - installation checks for the Sensing-Dev SDK",
	Long: "sdprobe lists and runs the installation probes of the Sensing-Dev SDK.\n" +
		"Every probe is a standalone binary linked against exactly one library.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		log.SetLevel(level)
		return nil
	},
}

func loadCatalog() (*config.Catalog, error) {
	catalog, err := config.LoadCatalog(configDir)
	return catalog, withHint(err, "fix or remove the offending .hcl file in the directory given by --config-dir or "+probe.EnvConfigDir)
}

func lookupProbe(name string) (*config.Probe, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	p, err := catalog.Lookup(name)
	return p, withHint(err, "run 'sdprobe list' to see the configured probes, or define the probe in --config-dir")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process status. Probe failures keep
// the probe's own status and print nothing beyond the probe's output.
func exitCode(err error) int {
	var probeExit *exitCodeError
	if errors.As(err, &probeExit) {
		log.Debug(err)
		return probeExit.code
	}

	fmt.Fprintln(os.Stderr, renderError(err))
	return probe.ExitFailed
}
