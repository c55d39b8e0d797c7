//go:build sdnative && integration

package ionkit_test

import (
	"testing"

	"github.com/sensing-dev/sdprobe/internal/native/ionkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderWithHostTargetAndBBModule(t *testing.T) {
	lib := ionkit.Library{}

	target, err := lib.HostTarget("halide")
	require.NoError(t, err)
	assert.NotEmpty(t, target)

	b, err := lib.NewBuilder()
	require.NoError(t, err)
	defer b.Release()

	require.NoError(t, b.SetTarget(target))
	require.NoError(t, b.WithBBModule("ion-bb"))
}
