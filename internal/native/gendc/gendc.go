// Package gendc binds the header-only GenDC separator library through a small
// C++ shim.
package gendc

import (
	"github.com/pkg/errors"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

var ErrNotLinked = errors.New("gendc: binary was built without native bindings (sdnative build tag)")

type Library struct{}

var _ probe.GenDCLibrary = Library{}
