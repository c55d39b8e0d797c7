// Command ionkit_test checks that ion-kit can create a builder for the host
// target and load the ion-bb module.
package main

import (
	"os"

	"github.com/sensing-dev/sdprobe/internal/native/ionkit"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

func main() {
	os.Exit(probe.Main("ionkit_test", probe.Libraries{IonKit: ionkit.Library{}}))
}
