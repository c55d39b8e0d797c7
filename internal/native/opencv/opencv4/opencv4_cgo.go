//go:build sdnative

package opencv4

/*
#cgo CXXFLAGS: -std=c++11 -I/opt/sensing-dev/include/opencv4
#cgo LDFLAGS: -L/opt/sensing-dev/lib -lopencv_core
#include <stdlib.h>
#include "../shim.h"
*/
import "C"

import (
	"unsafe"

	"github.com/pkg/errors"
)

func (Library) NewMat(rows, cols, matType int) error {
	var cerr *C.char
	if C.sdprobe_cv_mat_new(C.int(rows), C.int(cols), C.int(matType), &cerr) != 0 {
		return takeError(cerr)
	}
	return nil
}

func (Library) BuildInformation() (string, error) {
	var out, cerr *C.char
	if C.sdprobe_cv_build_information(&out, &cerr) != 0 {
		return "", takeError(cerr)
	}
	defer C.free(unsafe.Pointer(out))
	return C.GoString(out), nil
}

func takeError(cerr *C.char) error {
	defer C.free(unsafe.Pointer(cerr))
	return errors.New(C.GoString(cerr))
}
