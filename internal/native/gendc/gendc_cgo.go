//go:build sdnative

package gendc

/*
#cgo CXXFLAGS: -std=c++11 -I/opt/sensing-dev/include
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"github.com/pkg/errors"
)

func (Library) ConvertPixelFormat(name string) (int32, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var code C.int32_t
	var cerr *C.char
	if C.sdprobe_gendc_convert_pixelformat(cname, &code, &cerr) != 0 {
		return 0, takeError(cerr)
	}
	return int32(code), nil
}

// IsGenDC copies content into C memory; the validator may read past the
// slice it was given, so callers pass a padded buffer.
func (Library) IsGenDC(content []byte) (bool, error) {
	buf := C.CBytes(content)
	defer C.free(buf)

	var accepted C.int
	var cerr *C.char
	if C.sdprobe_gendc_is_gendc((*C.char)(buf), &accepted, &cerr) != 0 {
		return false, takeError(cerr)
	}
	return accepted != 0, nil
}

func takeError(cerr *C.char) error {
	defer C.free(unsafe.Pointer(cerr))
	return errors.New(C.GoString(cerr))
}
