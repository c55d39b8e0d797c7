package config

// Library names a native library a probe variant links against.
type Library string

const (
	LibraryAravis Library = "aravis"
	LibraryGenDC  Library = "gendc"
	LibraryIonKit Library = "ionkit"
	LibraryOpenCV Library = "opencv"
)

const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

const (
	HostTargetIon    = "ion"
	HostTargetHalide = "halide"
)

// Values a probe runs with when its block leaves the setting out.
const (
	DefaultPixelFormat    = "Mono8"
	DefaultInvalidContent = "THIS_IS_INVALID_GENDC_BINARY_CONTENT"
	DefaultBBModule       = "ion-bb"
	DefaultHostTarget     = HostTargetIon
	DefaultMatDimension   = 5
	DefaultMatType        = "CV_8UC1"
)

type Aravis struct{}

type GenDC struct {
	PixelFormat    string `hcl:"pixelFormat" json:"pixelFormat,omitempty"`
	InvalidContent string `hcl:"invalidContent" json:"invalidContent,omitempty"`
}

type IonKit struct {
	// HostTarget selects which API resolves the host target ("ion" or "halide").
	// It is ignored when Target is set.
	HostTarget string `hcl:"hostTarget" json:"hostTarget,omitempty"`
	Target     string `hcl:"target" json:"target,omitempty"`
	BBModule   string `hcl:"bbModule" json:"bbModule,omitempty"`
}

type OpenCV struct {
	Rows             int    `hcl:"rows" json:"rows,omitempty"`
	Cols             int    `hcl:"cols" json:"cols,omitempty"`
	MatType          string `hcl:"matType" json:"matType,omitempty"`
	RequireGStreamer bool   `hcl:"requireGStreamer" json:"requireGStreamer,omitempty"`
}

type Probe struct {
	Name        string `hcl:",key"`
	Description string `hcl:"description"`
	Marker      string `hcl:"marker"`
	Diagnostics string `hcl:"diagnostics"`
	Unguarded   bool   `hcl:"unguarded"`

	Aravis *Aravis `hcl:"aravis"`
	GenDC  *GenDC  `hcl:"gendc"`
	IonKit *IonKit `hcl:"ionkit"`
	OpenCV *OpenCV `hcl:"opencv"`
}

type Catalog struct {
	Probes []Probe `hcl:"probe"`
}
