package probe

import (
	"fmt"

	"github.com/sensing-dev/sdprobe/internal/config"
	"github.com/sensing-dev/sdprobe/internal/helper"
	log "github.com/sirupsen/logrus"
)

const (
	// containerBufferSize is the size of the zero-padded buffer handed to the
	// container validator, so it can read a full header without overrunning.
	containerBufferSize = 256

	wrongResultMessage = "Wrong result."
)

type genDCProbe struct {
	lib            GenDCLibrary
	pixelFormat    string
	invalidContent []byte
}

func NewGenDCProbe(cfg *config.GenDC, lib GenDCLibrary) *genDCProbe {
	cfg.PixelFormat = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.PixelFormat), config.DefaultPixelFormat, "pixelFormat", "gendc")
	cfg.InvalidContent = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.InvalidContent), config.DefaultInvalidContent, "invalidContent", "gendc")

	size := containerBufferSize
	if len(cfg.InvalidContent) >= size {
		size = len(cfg.InvalidContent) + 1
	}
	content := make([]byte, size)
	copy(content, cfg.InvalidContent)

	return &genDCProbe{
		lib:            lib,
		pixelFormat:    cfg.PixelFormat,
		invalidContent: content,
	}
}

func (g *genDCProbe) Exec() error {
	code, err := g.lib.ConvertPixelFormat(g.pixelFormat)
	if err != nil {
		return err
	}
	if code < 0 {
		return wrongResult(fmt.Sprintf("pixel format %s resolved to invalid code %d", g.pixelFormat, code))
	}
	log.WithFields(log.Fields{"kind": "probe", "name": "gendc", "pixelFormat": g.pixelFormat, "code": fmt.Sprintf("0x%08x", code)}).Debug()

	accepted, err := g.lib.IsGenDC(g.invalidContent)
	if err != nil {
		return err
	}
	if accepted {
		return wrongResult(wrongResultMessage)
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "gendc", "status": "alive"}).Debug()
	return nil
}
