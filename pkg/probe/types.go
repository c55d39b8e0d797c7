// Package probe runs one installation probe and maps its outcome to console
// output and a process exit code.
package probe

// Probe performs the representative call(s) against one native library.
type Probe interface {
	Exec() error
}

type FailureKind string

const (
	// FailureLibrary marks an error raised by the library under test.
	FailureLibrary FailureKind = "library"
	// FailureWrongResult marks a call that returned normally with a value
	// violating the probe's expectation.
	FailureWrongResult FailureKind = "wrong-result"
)

type ProbeResult struct {
	Name    string      `json:"name"`
	OK      bool        `json:"ok"`
	Message string      `json:"message,omitempty"`
	Kind    FailureKind `json:"kind,omitempty"`
}

// WrongResultError reports a negative-path assertion that did not hold.
type WrongResultError struct {
	Message string
}

func (e *WrongResultError) Error() string {
	return e.Message
}

func wrongResult(msg string) error {
	return &WrongResultError{Message: msg}
}
