// Command opencv_test checks that OpenCV is installed under /opt/sensing-dev
// by allocating a small matrix. It compiles against headers found directly
// under include/opencv2.
package main

import (
	"os"

	"github.com/sensing-dev/sdprobe/internal/native/opencv"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

func main() {
	os.Exit(probe.Main("opencv_test", probe.Libraries{OpenCV: opencv.Library{}}))
}
