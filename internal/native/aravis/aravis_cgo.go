//go:build sdnative

package aravis

/*
#cgo CFLAGS: -I/opt/sensing-dev/include -I/opt/sensing-dev/include/aravis-0.8
#cgo LDFLAGS: -L/opt/sensing-dev/lib -L/opt/sensing-dev/lib/x86_64-linux-gnu -laravis-0.8 -lgobject-2.0 -ldl -lpthread
#cgo pkg-config: glib-2.0
#include <arv.h>
*/
import "C"

// UpdateDeviceList rescans all interfaces. It succeeds with no camera attached.
func (Library) UpdateDeviceList() error {
	C.arv_update_device_list()
	return nil
}
