//go:build sdnative && integration

package opencv_test

import (
	"testing"

	"github.com/sensing-dev/sdprobe/internal/native/opencv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMat(t *testing.T) {
	assert.NoError(t, opencv.Library{}.NewMat(5, 5, 0))
}

func TestBuildInformationMentionsVideoIO(t *testing.T) {
	info, err := opencv.Library{}.BuildInformation()
	require.NoError(t, err)
	assert.Contains(t, info, "Video I/O")
}
