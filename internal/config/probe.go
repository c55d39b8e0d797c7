package config

import (
	"github.com/pkg/errors"
)

// Library reports which library block is set. Validate guarantees exactly one.
func (p *Probe) Library() Library {
	switch {
	case p.Aravis != nil:
		return LibraryAravis
	case p.GenDC != nil:
		return LibraryGenDC
	case p.IonKit != nil:
		return LibraryIonKit
	case p.OpenCV != nil:
		return LibraryOpenCV
	}
	return ""
}

// DiagnosticStream is the stream library faults are written to.
func (p *Probe) DiagnosticStream() string {
	if p.Diagnostics == "" {
		return StreamStderr
	}
	return p.Diagnostics
}

func (p *Probe) Validate() error {
	if p.Name == "" {
		return errors.New("probe has no name")
	}

	blocks := 0
	for _, set := range []bool{p.Aravis != nil, p.GenDC != nil, p.IonKit != nil, p.OpenCV != nil} {
		if set {
			blocks++
		}
	}
	if blocks != 1 {
		return errors.Errorf("probe %q must declare exactly one library block, found %d", p.Name, blocks)
	}

	switch p.Diagnostics {
	case "", StreamStdout, StreamStderr:
	default:
		return errors.Errorf("probe %q: unknown diagnostics stream %q", p.Name, p.Diagnostics)
	}

	if p.IonKit != nil {
		switch p.IonKit.HostTarget {
		case "", HostTargetIon, HostTargetHalide:
		default:
			return errors.Errorf("probe %q: unknown host target source %q", p.Name, p.IonKit.HostTarget)
		}
	}

	if p.OpenCV != nil && !p.OpenCV.RequireGStreamer {
		if p.OpenCV.Rows < 0 || p.OpenCV.Cols < 0 {
			return errors.Errorf("probe %q: matrix dimensions must not be negative", p.Name)
		}
	}

	return nil
}
