package probe

import (
	"fmt"
	"io"
	"os"

	"github.com/sensing-dev/sdprobe/internal/config"
	log "github.com/sirupsen/logrus"
)

const (
	EnvConfigDir = "SDPROBE_CONFIG_DIR"
	EnvLogLevel  = "SDPROBE_LOG_LEVEL"
)

// Main is the entry point of a probe binary. Command-line arguments are not
// consulted. The returned value is the process exit code.
func Main(name string, libs Libraries) int {
	return mainWithOutput(name, libs, os.Stdout, os.Stderr)
}

func mainWithOutput(name string, libs Libraries, stdout, stderr io.Writer) int {
	initLogging(stderr)

	catalog, err := config.LoadCatalog(os.Getenv(EnvConfigDir))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailed
	}

	variant, err := catalog.Lookup(name)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailed
	}

	p, err := BuildProbe(variant, libs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailed
	}

	log.WithFields(log.Fields{"kind": "probe", "name": name, "library": variant.Library(), "guarded": !variant.Unguarded}).Debug("executing probe")

	var result *ProbeResult
	if variant.Unguarded {
		result = RunUnguarded(name, p)
	} else {
		result = Run(name, p)
	}

	reporter := &Reporter{Stdout: stdout, Stderr: stderr}
	reporter.Report(variant, result)

	return ExitCode(result)
}

func initLogging(out io.Writer) {
	log.SetOutput(out)

	level := log.WarnLevel
	if l := os.Getenv(EnvLogLevel); l != "" {
		parsed, err := log.ParseLevel(l)
		if err != nil {
			log.Warnf("ignoring invalid %s %q", EnvLogLevel, l)
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)
}
