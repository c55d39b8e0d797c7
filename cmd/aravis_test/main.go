// Command aravis_test checks that Aravis is installed under /opt/sensing-dev
// and can refresh its device list.
package main

import (
	"os"

	"github.com/sensing-dev/sdprobe/internal/native/aravis"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

func main() {
	os.Exit(probe.Main("aravis_test", probe.Libraries{Aravis: aravis.Library{}}))
}
