//go:build sdnative && integration

package gendc_test

import (
	"testing"

	"github.com/sensing-dev/sdprobe/internal/native/gendc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pfncMono8 = 0x01080001

func TestConvertMono8(t *testing.T) {
	code, err := gendc.Library{}.ConvertPixelFormat("Mono8")
	require.NoError(t, err)
	assert.Equal(t, int32(pfncMono8), code)

	again, err := gendc.Library{}.ConvertPixelFormat("Mono8")
	require.NoError(t, err)
	assert.Equal(t, code, again)
}

func TestInvalidContentIsRejected(t *testing.T) {
	content := make([]byte, 256)
	copy(content, "THIS_IS_INVALID_GENDC_BINARY_CONTENT")

	accepted, err := gendc.Library{}.IsGenDC(content)
	require.NoError(t, err)
	assert.False(t, accepted)
}
