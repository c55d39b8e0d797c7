//go:build !sdnative

package opencv4

func (Library) NewMat(int, int, int) error {
	return ErrNotLinked
}

func (Library) BuildInformation() (string, error) {
	return "", ErrNotLinked
}
