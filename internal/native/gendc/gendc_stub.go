//go:build !sdnative

package gendc

func (Library) ConvertPixelFormat(string) (int32, error) {
	return 0, ErrNotLinked
}

func (Library) IsGenDC([]byte) (bool, error) {
	return false, ErrNotLinked
}
