//go:build !sdnative

package aravis

func (Library) UpdateDeviceList() error {
	return ErrNotLinked
}
