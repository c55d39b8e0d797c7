// Package native groups the cgo bindings to the libraries installed under
// /opt/sensing-dev. Each sub package links exactly one library, and only when
// built with the sdnative tag:
//
//	go build -tags sdnative ./cmd/aravis_test
//
// Without the tag every binding compiles to a stub whose calls fail with
// ErrNotLinked. Include and library paths are fixed at build time; the
// runtime loader must find the shared libraries through the environment the
// installer prepares (LD_LIBRARY_PATH or the system loader configuration).
package native

// InstallRoot is the installation tree the cgo directives point at.
const InstallRoot = "/opt/sensing-dev"
