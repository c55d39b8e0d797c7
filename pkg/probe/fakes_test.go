package probe

import (
	"errors"
	"strings"
)

type fakeAravis struct {
	err   error
	calls int
}

func (f *fakeAravis) UpdateDeviceList() error {
	f.calls++
	return f.err
}

type fakeGenDC struct {
	code       int32
	convertErr error
	accept     bool
	validErr   error

	convertedName string
	validated     []byte
}

func (f *fakeGenDC) ConvertPixelFormat(name string) (int32, error) {
	f.convertedName = name
	return f.code, f.convertErr
}

func (f *fakeGenDC) IsGenDC(content []byte) (bool, error) {
	f.validated = content
	return f.accept, f.validErr
}

type fakeBuilder struct {
	setTargetErr error
	moduleErr    error

	target   string
	module   string
	released bool
	calls    []string
}

func (b *fakeBuilder) SetTarget(target string) error {
	b.calls = append(b.calls, "set_target")
	b.target = target
	return b.setTargetErr
}

func (b *fakeBuilder) WithBBModule(name string) error {
	b.calls = append(b.calls, "with_bb_module")
	b.module = name
	return b.moduleErr
}

func (b *fakeBuilder) Release() {
	b.released = true
}

type fakeIonKit struct {
	builder    *fakeBuilder
	builderErr error
	targets    map[string]string

	requestedSource string
}

func (f *fakeIonKit) HostTarget(source string) (string, error) {
	f.requestedSource = source
	t, ok := f.targets[source]
	if !ok {
		return "", errors.New("host target source " + source + " is not available")
	}
	return t, nil
}

func (f *fakeIonKit) NewBuilder() (IonBuilder, error) {
	if f.builderErr != nil {
		return nil, f.builderErr
	}
	return f.builder, nil
}

func newFakeIonKit() *fakeIonKit {
	return &fakeIonKit{
		builder: &fakeBuilder{},
		targets: map[string]string{
			"ion":    "x86-64-linux-avx-avx2-f16c-fma-sse41",
			"halide": "x86-64-linux-avx-avx2-f16c-fma-sse41",
		},
	}
}

type fakeOpenCV struct {
	matErr    error
	info      string
	infoErr   error
	rows      int
	cols      int
	matType   int
	infoCalls int
}

func (f *fakeOpenCV) NewMat(rows, cols, matType int) error {
	f.rows, f.cols, f.matType = rows, cols, matType
	return f.matErr
}

func (f *fakeOpenCV) BuildInformation() (string, error) {
	f.infoCalls++
	return f.info, f.infoErr
}

func buildInfo(gstreamer string) string {
	lines := []string{
		"",
		"General configuration for OpenCV 4.5.2 =====================================",
		"  Video I/O:",
		"    DC1394:                      NO",
		"    FFMPEG:                      YES",
	}
	if gstreamer != "" {
		lines = append(lines, "    GStreamer:                   "+gstreamer)
	}
	lines = append(lines, "    v4l/v4l2:                    YES (linux/videodev2.h)")
	return strings.Join(lines, "\n")
}

type errProbe struct {
	err error
}

func (e errProbe) Exec() error {
	return e.err
}
