package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	require.NoError(t, listCmd.Flags().Set("json", "false"))
	require.NoError(t, showCmd.Flags().Set("json", "false"))
	configDir = ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// fakeProbeDir installs shell scripts named like probe binaries and makes
// them the siblings of the running executable.
func fakeProbeDir(t *testing.T, scripts map[string]string) {
	t.Helper()

	dir := t.TempDir()
	for name, body := range scripts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	}

	original := executablePath
	executablePath = func() (string, error) {
		return filepath.Join(dir, "sdprobe"), nil
	}
	t.Cleanup(func() { executablePath = original })
}

func TestListShowsEveryProbe(t *testing.T) {
	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	for _, name := range []string{"aravis_test", "gendc_test", "ionkit_test", "ionkit_test_old", "opencv_test", "opencv_test_v240104", "opencv_gst_test"} {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "unguarded")
}

func TestListAsJSON(t *testing.T) {
	fakeProbeDir(t, map[string]string{"gendc_test": "exit 0"})

	stdout, _, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var entries []probeEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 7)

	assert.Equal(t, "aravis_test", entries[0].Name)
	assert.Equal(t, "PASSED", entries[0].Marker)
	assert.True(t, entries[0].Guarded)

	for _, e := range entries {
		if e.Name == "gendc_test" {
			assert.NotEmpty(t, e.Binary)
		}
		if e.Name == "ionkit_test_old" {
			assert.False(t, e.Guarded)
			assert.Equal(t, "stderr", e.Diagnostics)
		}
	}
}

func TestShowProbe(t *testing.T) {
	stdout, _, err := executeCommand(t, "show", "gendc_test")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Mono8")
	assert.Contains(t, stdout, "THIS_IS_INVALID_GENDC_BINARY_CONTENT")
	assert.Contains(t, stdout, "/opt/sensing-dev")
}

func TestShowLabelsDefaultedSettings(t *testing.T) {
	dir := t.TempDir()
	override := `
probe "ionkit_test" {
  ionkit {
    target = "host-cuda"
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ionkit.hcl"), []byte(override), 0o644))

	stdout, _, err := executeCommand(t, "show", "--config-dir", dir, "ionkit_test")
	require.NoError(t, err)

	assert.Contains(t, stdout, "host-cuda")
	assert.Contains(t, stdout, "<default: ion-bb>")
	assert.Contains(t, stdout, "<default: ion>")
}

func TestShowProbeAsJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "show", "opencv_test", "--json")
	require.NoError(t, err)

	var out struct {
		Name     string `json:"name"`
		Library  string `json:"library"`
		Settings struct {
			Rows    int    `json:"rows"`
			MatType string `json:"matType"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "opencv_test", out.Name)
	assert.Equal(t, "opencv", out.Library)
	assert.Equal(t, 5, out.Settings.Rows)
	assert.Equal(t, "CV_8UC1", out.Settings.MatType)
}

func TestShowUnknownProbe(t *testing.T) {
	_, _, err := executeCommand(t, "show", "halide_test")
	assert.ErrorContains(t, err, `no probe named "halide_test"`)
}

func TestErrorBoxSuggestsNextStep(t *testing.T) {
	_, _, err := executeCommand(t, "show", "halide_test")
	require.Error(t, err)
	assert.Contains(t, renderError(err), "hint: run 'sdprobe list'")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.hcl"), []byte(`probe "x" {`), 0o644))

	_, _, err = executeCommand(t, "list", "--config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, renderError(err), "hint: fix or remove the offending .hcl file")

	assert.NotContains(t, renderError(errors.New("plain failure")), "hint:")
}

func TestRunPassesOutputAndStatusThrough(t *testing.T) {
	fakeProbeDir(t, map[string]string{
		"aravis_test": "echo PASSED",
		"gendc_test":  "echo 'Wrong result.' >&2; exit 1",
	})

	stdout, _, err := executeCommand(t, "run", "aravis_test")
	require.NoError(t, err)
	assert.Equal(t, "PASSED\n", stdout)

	stdout, stderr, err := executeCommand(t, "run", "gendc_test")
	assert.Empty(t, stdout)
	assert.Equal(t, "Wrong result.\n", stderr)

	var exitErr *exitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.code)
	assert.Equal(t, 1, exitCode(err))
}

func TestRunReportsSignalsAsAbnormal(t *testing.T) {
	fakeProbeDir(t, map[string]string{"ionkit_test_old": "kill -ABRT $$"})

	_, _, err := executeCommand(t, "run", "ionkit_test_old")
	assert.Equal(t, exitAbnormal, exitCode(err))
}

func TestRunForwardsConfigDir(t *testing.T) {
	fakeProbeDir(t, map[string]string{"opencv_test": `echo "$SDPROBE_CONFIG_DIR"`})
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "run", "--config-dir", dir, "opencv_test")
	require.NoError(t, err)
	assert.Equal(t, dir+"\n", stdout)
}

func TestRunRejectsUnknownProbe(t *testing.T) {
	_, _, err := executeCommand(t, "run", "halide_test")
	assert.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestRunFailsWhenBinaryIsMissing(t *testing.T) {
	fakeProbeDir(t, nil)
	t.Setenv("PATH", t.TempDir())

	_, _, err := executeCommand(t, "run", "opencv_gst_test")
	assert.ErrorContains(t, err, `probe binary "opencv_gst_test" not found`)
}

func TestVersion(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sdprobe, version")
}
