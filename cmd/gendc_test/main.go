// Command gendc_test checks the GenDC separator headers: it converts a PFNC
// name and expects a non-GenDC buffer to be rejected.
package main

import (
	"os"

	"github.com/sensing-dev/sdprobe/internal/native/gendc"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

func main() {
	os.Exit(probe.Main("gendc_test", probe.Libraries{GenDC: gendc.Library{}}))
}
