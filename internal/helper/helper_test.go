package helper_test

import (
	"testing"

	"github.com/sensing-dev/sdprobe/internal/helper"
	"github.com/stretchr/testify/assert"
)

func TestResolveEnvReadsPrefixedVariables(t *testing.T) {
	t.Setenv("SDPROBE_TEST_MODULE", "ion-bb-custom")

	assert.Equal(t, "ion-bb-custom", helper.ResolveEnv("ENV:SDPROBE_TEST_MODULE"))
	assert.Equal(t, "", helper.ResolveEnv("ENV:SDPROBE_TEST_UNSET"))
	assert.Equal(t, "ion-bb", helper.ResolveEnv("ion-bb"))
}

func TestSetDefaults(t *testing.T) {
	assert.Equal(t, "Mono8", helper.SetDefaultStringIfEmpty("", "Mono8", "pixelFormat", "gendc"))
	assert.Equal(t, "Mono16", helper.SetDefaultStringIfEmpty("Mono16", "Mono8", "pixelFormat", "gendc"))
	assert.Equal(t, 5, helper.SetDefaultIntIfZero(0, 5, "rows", "opencv"))
	assert.Equal(t, 7, helper.SetDefaultIntIfZero(7, 5, "rows", "opencv"))
}
