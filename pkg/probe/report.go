package probe

import (
	"fmt"
	"io"

	"github.com/sensing-dev/sdprobe/internal/config"
)

// Reporter prints probe results in the plain console format installers parse.
type Reporter struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r *Reporter) Report(variant *config.Probe, result *ProbeResult) {
	if result.OK {
		if variant.Marker != "" {
			fmt.Fprintln(r.Stdout, variant.Marker)
		}
		return
	}

	out := r.Stderr
	if result.Kind != FailureWrongResult && variant.DiagnosticStream() == config.StreamStdout {
		out = r.Stdout
	}
	fmt.Fprintln(out, result.Message)
}
