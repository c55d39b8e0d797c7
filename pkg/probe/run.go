package probe

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

const (
	ExitPassed = 0
	ExitFailed = 1
)

// Run executes p inside the fault boundary. Errors become failed results with
// the error text kept verbatim. Panics are not recovered.
func Run(name string, p Probe) *ProbeResult {
	err := p.Exec()
	if err == nil {
		log.WithFields(log.Fields{"kind": "probe", "name": name, "status": "passed"}).Debug()
		return &ProbeResult{Name: name, OK: true}
	}

	kind := FailureLibrary
	var wrong *WrongResultError
	if errors.As(err, &wrong) {
		kind = FailureWrongResult
	}

	log.WithFields(log.Fields{"kind": "probe", "name": name, "failure": kind}).Debug("probe failed")
	return &ProbeResult{Name: name, OK: false, Message: err.Error(), Kind: kind}
}

// RunUnguarded executes p without a fault boundary: an error terminates the
// process abnormally instead of producing a failed result.
func RunUnguarded(name string, p Probe) *ProbeResult {
	if err := p.Exec(); err != nil {
		panic(err)
	}
	return &ProbeResult{Name: name, OK: true}
}

func ExitCode(result *ProbeResult) int {
	if result.OK {
		return ExitPassed
	}
	return ExitFailed
}
