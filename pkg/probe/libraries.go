package probe

// The library interfaces below are implemented by the cgo bindings in
// internal/native. Each probe binary links exactly one of them.

type AravisLibrary interface {
	UpdateDeviceList() error
}

type GenDCLibrary interface {
	ConvertPixelFormat(name string) (int32, error)
	IsGenDC(content []byte) (bool, error)
}

type IonKitLibrary interface {
	// HostTarget returns the host target string as resolved by the named API
	// ("ion" or "halide").
	HostTarget(source string) (string, error)
	NewBuilder() (IonBuilder, error)
}

type IonBuilder interface {
	SetTarget(target string) error
	WithBBModule(name string) error
	Release()
}

type OpenCVLibrary interface {
	NewMat(rows, cols, matType int) error
	BuildInformation() (string, error)
}

type Libraries struct {
	Aravis AravisLibrary
	GenDC  GenDCLibrary
	IonKit IonKitLibrary
	OpenCV OpenCVLibrary
}
