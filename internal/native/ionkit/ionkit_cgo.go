//go:build sdnative

package ionkit

/*
#cgo CXXFLAGS: -std=c++17 -I/opt/sensing-dev/include
#cgo LDFLAGS: -L/opt/sensing-dev/lib -lHalide -lion-core
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sensing-dev/sdprobe/internal/config"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

type builder struct {
	ptr *C.sdprobe_ion_builder
}

func (Library) NewBuilder() (probe.IonBuilder, error) {
	var ptr *C.sdprobe_ion_builder
	var cerr *C.char
	if C.sdprobe_ion_builder_new(&ptr, &cerr) != 0 {
		return nil, takeError(cerr)
	}
	return &builder{ptr: ptr}, nil
}

func (Library) HostTarget(source string) (string, error) {
	var out, cerr *C.char
	var rc C.int

	switch source {
	case config.HostTargetIon:
		rc = C.sdprobe_ion_host_target(&out, &cerr)
	case config.HostTargetHalide:
		rc = C.sdprobe_halide_host_target(&out, &cerr)
	default:
		return "", unknownSource(source)
	}

	if rc != 0 {
		return "", takeError(cerr)
	}
	defer C.free(unsafe.Pointer(out))
	return C.GoString(out), nil
}

func (b *builder) SetTarget(target string) error {
	ctarget := C.CString(target)
	defer C.free(unsafe.Pointer(ctarget))

	var cerr *C.char
	if C.sdprobe_ion_builder_set_target(b.ptr, ctarget, &cerr) != 0 {
		return takeError(cerr)
	}
	return nil
}

func (b *builder) WithBBModule(name string) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cerr *C.char
	if C.sdprobe_ion_builder_with_bb_module(b.ptr, cname, &cerr) != 0 {
		return takeError(cerr)
	}
	return nil
}

func (b *builder) Release() {
	if b.ptr == nil {
		return
	}
	C.sdprobe_ion_builder_delete(b.ptr)
	b.ptr = nil
}

func takeError(cerr *C.char) error {
	defer C.free(unsafe.Pointer(cerr))
	return errors.New(C.GoString(cerr))
}
