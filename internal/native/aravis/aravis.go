// Package aravis binds the Aravis machine vision library.
package aravis

import (
	"github.com/pkg/errors"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

var ErrNotLinked = errors.New("aravis: binary was built without native bindings (sdnative build tag)")

// Library is the linked aravis-0.8 runtime.
type Library struct{}

var _ probe.AravisLibrary = Library{}
