package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sensing-dev/sdprobe/pkg/probe"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitAbnormal is reported when the probe was killed by a signal, e.g. an
// uncaught C++ exception ending in abort().
const exitAbnormal = 2

// exitCodeError carries a probe's exit status through cobra.
type exitCodeError struct {
	probe string
	code  int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("probe %s exited with status %d", e.probe, e.code)
}

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:        "run <probe>",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"probe"},
	Short:      "Run one probe",
	Long: "This command executes the binary of one probe variant and exits with its status.\n\n" +
		"The probe output is passed through unchanged.",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if _, err := lookupProbe(name); err != nil {
			return err
		}

		binary, err := locateProbeBinary(name)
		if err != nil {
			return withHint(err, "install the probe binaries next to sdprobe or add their directory to PATH")
		}

		log.WithFields(log.Fields{"kind": "probe", "name": name, "binary": binary}).Debug("executing probe binary")

		c := exec.Command(binary)
		c.Stdout = cmd.OutOrStdout()
		c.Stderr = cmd.ErrOrStderr()
		c.Env = os.Environ()
		if configDir != "" {
			c.Env = append(c.Env, probe.EnvConfigDir+"="+configDir)
		}

		err = c.Run()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				code = exitAbnormal
			}
			return &exitCodeError{probe: name, code: code}
		}
		if err != nil {
			return fmt.Errorf("failed to execute probe %s: %w", name, err)
		}
		return nil
	},
}
