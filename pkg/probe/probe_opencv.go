package probe

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sensing-dev/sdprobe/internal/config"
	"github.com/sensing-dev/sdprobe/internal/helper"
	log "github.com/sirupsen/logrus"
)

const (
	gstreamerNotBuiltMessage = "This openCV is not built with Gstreamer"
	gstreamerMissingMessage  = "GStreamer is not mentioned in the OpenCV build information"
)

var matDepths = map[string]int{
	"8U":  0,
	"8S":  1,
	"16U": 2,
	"16S": 3,
	"32S": 4,
	"32F": 5,
	"64F": 6,
	"16F": 7,
}

var matTypePattern = regexp.MustCompile(`^CV_(8U|8S|16U|16S|32S|32F|64F|16F)C([1-4])$`)

// ParseMatType converts a name such as CV_8UC1 into OpenCV's numeric type code.
func ParseMatType(name string) (int, error) {
	m := matTypePattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(name)))
	if m == nil {
		return 0, fmt.Errorf("unsupported matrix type %q", name)
	}

	channels, _ := strconv.Atoi(m[2])
	return matDepths[m[1]] + (channels-1)<<3, nil
}

type openCVProbe struct {
	lib              OpenCVLibrary
	rows             int
	cols             int
	matType          int
	requireGStreamer bool
}

func NewOpenCVProbe(cfg *config.OpenCV, lib OpenCVLibrary) (*openCVProbe, error) {
	cfg.Rows = helper.SetDefaultIntIfZero(cfg.Rows, config.DefaultMatDimension, "rows", "opencv")
	cfg.Cols = helper.SetDefaultIntIfZero(cfg.Cols, config.DefaultMatDimension, "cols", "opencv")
	cfg.MatType = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.MatType), config.DefaultMatType, "matType", "opencv")

	matType, err := ParseMatType(cfg.MatType)
	if err != nil {
		return nil, err
	}

	return &openCVProbe{
		lib:              lib,
		rows:             cfg.Rows,
		cols:             cfg.Cols,
		matType:          matType,
		requireGStreamer: cfg.RequireGStreamer,
	}, nil
}

func (o *openCVProbe) Exec() error {
	if o.requireGStreamer {
		return o.checkGStreamer()
	}

	if err := o.lib.NewMat(o.rows, o.cols, o.matType); err != nil {
		return err
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "opencv", "rows": o.rows, "cols": o.cols, "type": o.matType, "status": "alive"}).Debug()
	return nil
}

// checkGStreamer looks for the GStreamer line of the video I/O section in
// the build information. The first GStreamer line carrying YES or NO decides;
// GStreamer lines with neither are skipped.
func (o *openCVProbe) checkGStreamer() error {
	info, err := o.lib.BuildInformation()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"kind": "probe", "name": "opencv"}).Debug(info)

	for _, line := range strings.Split(info, "\n") {
		if !strings.Contains(line, "GStreamer") {
			continue
		}
		if strings.Contains(line, "NO") {
			return wrongResult(gstreamerNotBuiltMessage)
		}
		if strings.Contains(line, "YES") {
			return nil
		}
	}

	return wrongResult(gstreamerMissingMessage)
}
