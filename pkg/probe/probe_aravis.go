package probe

import (
	log "github.com/sirupsen/logrus"
)

type aravisProbe struct {
	lib AravisLibrary
}

func NewAravisProbe(lib AravisLibrary) *aravisProbe {
	return &aravisProbe{lib: lib}
}

// Exec refreshes the device list. No camera needs to be attached.
func (a *aravisProbe) Exec() error {
	if err := a.lib.UpdateDeviceList(); err != nil {
		return err
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "aravis", "status": "alive"}).Debug()
	return nil
}
