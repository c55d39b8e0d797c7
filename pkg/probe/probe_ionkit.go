package probe

import (
	"github.com/sensing-dev/sdprobe/internal/config"
	"github.com/sensing-dev/sdprobe/internal/helper"
	log "github.com/sirupsen/logrus"
)

type ionKitProbe struct {
	lib        IonKitLibrary
	hostTarget string
	target     string
	bbModule   string
}

func NewIonKitProbe(cfg *config.IonKit, lib IonKitLibrary) *ionKitProbe {
	cfg.HostTarget = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.HostTarget), config.DefaultHostTarget, "hostTarget", "ionkit")
	cfg.Target = helper.ResolveEnv(cfg.Target)
	cfg.BBModule = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.BBModule), config.DefaultBBModule, "bbModule", "ionkit")

	return &ionKitProbe{
		lib:        lib,
		hostTarget: cfg.HostTarget,
		target:     cfg.Target,
		bbModule:   cfg.BBModule,
	}
}

// Exec constructs a builder, points it at the host target and loads the
// building block module. No graph nodes are added.
func (i *ionKitProbe) Exec() error {
	builder, err := i.lib.NewBuilder()
	if err != nil {
		return err
	}
	defer builder.Release()

	target := i.target
	if target == "" {
		target, err = i.lib.HostTarget(i.hostTarget)
		if err != nil {
			return err
		}
	}

	if err := builder.SetTarget(target); err != nil {
		return err
	}

	if err := builder.WithBBModule(i.bbModule); err != nil {
		return err
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "ionkit", "target": target, "module": i.bbModule, "status": "alive"}).Debug()
	return nil
}
