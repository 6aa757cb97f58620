//go:build debug
// +build debug

package sbml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPool(t *testing.T) {
	getTimes, putTimes := getBufferTotalGetTimes(), getBufferTotalPutTimes()

	d := ReadSBMLFromString(l2v4Document)
	require.NotNil(t, d.Model())

	for i := 0; i < 10; i++ {
		_, err := WriteSBMLToString(d)
		require.NoError(t, err)
		_ = d.Model().Notes().String()
	}

	gets := getBufferTotalGetTimes() - getTimes
	assert.Greater(t, gets, int64(0))
	assert.Equal(t, gets, getBufferTotalPutTimes()-putTimes)
}
