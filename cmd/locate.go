package cmd

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// executablePath is replaced in tests.
var executablePath = os.Executable

// locateProbeBinary looks for the probe binary next to the running sdprobe
// executable first, then on PATH.
func locateProbeBinary(name string) (string, error) {
	if self, err := executablePath(); err == nil {
		candidate := filepath.Join(filepath.Dir(self), name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0o111 != 0 {
			return candidate, nil
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(err, "probe binary %q not found next to sdprobe or on PATH", name)
	}
	return path, nil
}
