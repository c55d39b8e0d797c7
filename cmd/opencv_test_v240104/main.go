// Command opencv_test_v240104 is the OpenCV matrix check for the
// include/opencv4 layout introduced with the 24.01.04 installer.
package main

import (
	"os"

	"github.com/sensing-dev/sdprobe/internal/native/opencv/opencv4"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

func main() {
	os.Exit(probe.Main("opencv_test_v240104", probe.Libraries{OpenCV: opencv4.Library{}}))
}
