package probe

import (
	"github.com/pkg/errors"
	"github.com/sensing-dev/sdprobe/internal/config"
)

// ErrLibraryNotLinked is returned when a variant needs a library the running
// binary was not built with.
var ErrLibraryNotLinked = errors.New("library is not linked into this binary")

// BuildProbe creates the probe for a catalog variant from the libraries
// linked into the current binary.
func BuildProbe(cfg *config.Probe, libs Libraries) (Probe, error) {
	switch cfg.Library() {
	case config.LibraryAravis:
		if libs.Aravis == nil {
			return nil, notLinked(cfg)
		}
		return NewAravisProbe(libs.Aravis), nil
	case config.LibraryGenDC:
		if libs.GenDC == nil {
			return nil, notLinked(cfg)
		}
		return NewGenDCProbe(cfg.GenDC, libs.GenDC), nil
	case config.LibraryIonKit:
		if libs.IonKit == nil {
			return nil, notLinked(cfg)
		}
		return NewIonKitProbe(cfg.IonKit, libs.IonKit), nil
	case config.LibraryOpenCV:
		if libs.OpenCV == nil {
			return nil, notLinked(cfg)
		}
		p, err := NewOpenCVProbe(cfg.OpenCV, libs.OpenCV)
		if err != nil {
			return nil, errors.Wrapf(err, "probe %q", cfg.Name)
		}
		return p, nil
	}

	return nil, errors.Errorf("probe %q declares no library", cfg.Name)
}

func notLinked(cfg *config.Probe) error {
	return errors.Wrapf(ErrLibraryNotLinked, "probe %q needs %s", cfg.Name, cfg.Library())
}
