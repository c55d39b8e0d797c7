// Command opencv_gst_test checks that the installed OpenCV was built with
// GStreamer support.
package main

import (
	"os"

	"github.com/sensing-dev/sdprobe/internal/native/opencv/opencv4"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

func main() {
	os.Exit(probe.Main("opencv_gst_test", probe.Libraries{OpenCV: opencv4.Library{}}))
}
