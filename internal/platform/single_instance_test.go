package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstance(t *testing.T) {
	guard, err := AcquireSingleInstance("pompano-single-instance-test")
	require.NoError(t, err)

	_, err = AcquireSingleInstance("pompano-single-instance-test")
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	assert.NoError(t, guard.Release())

	again, err := AcquireSingleInstance("pompano-single-instance-test")
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}
