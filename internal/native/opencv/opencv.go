// Package opencv binds opencv_core through a C++ shim, with the headers found
// directly under include/opencv2. Installations using the include/opencv4
// layout are checked through package opencv4.
package opencv

import (
	"github.com/pkg/errors"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

var ErrNotLinked = errors.New("opencv: binary was built without native bindings (sdnative build tag)")

type Library struct{}

var _ probe.OpenCVLibrary = Library{}
