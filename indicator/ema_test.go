package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMASeedEqualsSimpleAverage(t *testing.T) {
	out := EMA(fromCloses(1, 2, 3, 4, 5, 6), 3)
	require.Len(t, out, 6)

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.Equal(t, 2.0, out[2])

	// k = 2/(3+1) = 0.5, so each step is the midpoint.
	assert.Equal(t, 3.0, out[3])
	assert.Equal(t, 4.0, out[4])
	assert.Equal(t, 5.0, out[5])
}

func TestEMAPeriodOneTracksCloses(t *testing.T) {
	out := EMA(fromCloses(10, 20, 30), 1)
	assert.Equal(t, []float64{10, 20, 30}, out)
}

func TestEMAShortSeriesAllNaN(t *testing.T) {
	out := EMA(fromCloses(1, 2, 3), 5)
	require.Len(t, out, 3)
	for _, v := range out {
		assert.True(t, math.IsNaN(v))
	}
}

func TestEMAEmpty(t *testing.T) {
	assert.Empty(t, EMA(nil, 20))
}
