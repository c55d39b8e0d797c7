// Package ionkit binds ion-kit (and the Halide runtime beneath it) through a
// C++ shim.
//
// Installations whose ion-kit predates ion::get_host_target are built with
// the additional ionkit_legacy tag; the "ion" host target source then fails
// and only "halide" resolves.
package ionkit

import (
	"github.com/pkg/errors"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

var ErrNotLinked = errors.New("ionkit: binary was built without native bindings (sdnative build tag)")

type Library struct{}

var _ probe.IonKitLibrary = Library{}

func unknownSource(source string) error {
	return errors.Errorf("ionkit: unknown host target source %q", source)
}
