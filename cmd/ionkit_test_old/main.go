// Command ionkit_test_old is the ion-kit check for older layouts. It resolves
// the host target through Halide and has no fault boundary: a failure aborts
// the process.
package main

import (
	"os"

	"github.com/sensing-dev/sdprobe/internal/native/ionkit"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

func main() {
	os.Exit(probe.Main("ionkit_test_old", probe.Libraries{IonKit: ionkit.Library{}}))
}
