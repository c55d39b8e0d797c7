//go:build !sdnative

package ionkit

import (
	"github.com/sensing-dev/sdprobe/internal/config"
	"github.com/sensing-dev/sdprobe/pkg/probe"
)

func (Library) NewBuilder() (probe.IonBuilder, error) {
	return nil, ErrNotLinked
}

func (Library) HostTarget(source string) (string, error) {
	switch source {
	case config.HostTargetIon, config.HostTargetHalide:
		return "", ErrNotLinked
	}
	return "", unknownSource(source)
}
