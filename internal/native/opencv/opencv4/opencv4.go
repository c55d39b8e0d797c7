// Package opencv4 binds opencv_core for installations that ship the headers
// under include/opencv4. It compiles the shim of package opencv with its own
// include path, so a binary linking it fails to build on the older layout.
package opencv4

import (
	"github.com/pkg/errors"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

var ErrNotLinked = errors.New("opencv4: binary was built without native bindings (sdnative build tag)")

type Library struct{}

var _ probe.OpenCVLibrary = Library{}
