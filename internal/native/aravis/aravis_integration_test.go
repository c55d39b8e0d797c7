//go:build sdnative && integration

package aravis_test

import (
	"testing"

	"github.com/sensing-dev/sdprobe/internal/native/aravis"
	"github.com/stretchr/testify/assert"
)

func TestUpdateDeviceListWithoutDevices(t *testing.T) {
	lib := aravis.Library{}

	assert.NoError(t, lib.UpdateDeviceList())
	assert.NoError(t, lib.UpdateDeviceList())
}
