package minmax

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("Should scale the example weights into the unit interval", func(t *testing.T) {
		out, err := Normalize([]float64{50.0, 150.0, 300.0})
		require.NoError(t, err)
		assert.Equal(t, []float64{0.0, 0.4, 1.0}, out)
	})

	t.Run("Should return an empty sequence for empty input", func(t *testing.T) {
		out, err := Normalize([]float64{})
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Empty(t, out)

		out, err = Normalize(nil)
		require.NoError(t, err)
		assert.Equal(t, []float64{}, out)
	})

	t.Run("Should return the midpoint for a single element", func(t *testing.T) {
		for _, x := range []float64{0, -7.25, 42, 1e300} {
			out, err := Normalize([]float64{x})
			require.NoError(t, err)
			assert.Equal(t, []float64{0.5}, out, "input %v", x)
		}
	})

	t.Run("Should return the midpoint for a single non-finite element", func(t *testing.T) {
		for _, x := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
			out, err := Normalize([]float64{x})
			require.NoError(t, err)
			assert.Equal(t, []float64{0.5}, out, "input %v", x)
		}
	})

	t.Run("Should return zeros when every element is equal", func(t *testing.T) {
		out, err := Normalize([]float64{3.3, 3.3, 3.3, 3.3})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0, 0}, out)
	})

	t.Run("Should map the minimum to zero and the maximum to one", func(t *testing.T) {
		in := []float64{7, -2.5, 19.75, 0, 3, -2.5, 19.75}
		out, err := Normalize(in)
		require.NoError(t, err)
		require.Len(t, out, len(in))
		assert.Equal(t, 0.0, out[1])
		assert.Equal(t, 0.0, out[5])
		assert.Equal(t, 1.0, out[2])
		assert.Equal(t, 1.0, out[6])
		for i, v := range out {
			assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
			assert.LessOrEqual(t, v, 1.0, "index %d", i)
		}
	})

	t.Run("Should preserve input order and leave the input untouched", func(t *testing.T) {
		in := []float64{10, 0, 5}
		out, err := Normalize(in)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0, 0.5}, out)
		assert.Equal(t, []float64{10, 0, 5}, in)
	})

	t.Run("Should stay in range when the span overflows", func(t *testing.T) {
		out, err := Normalize([]float64{-math.MaxFloat64, 0, math.MaxFloat64})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.5, 1}, out)
	})

	t.Run("Should reject NaN with a value error", func(t *testing.T) {
		_, err := Normalize([]float64{1, math.NaN(), 3})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValue)
		assert.Equal(t, KindValue, KindOf(err))
		var engErr *Error
		require.ErrorAs(t, err, &engErr)
		assert.Equal(t, 1, engErr.Index)
	})

	t.Run("Should reject infinities with a value error", func(t *testing.T) {
		_, err := Normalize([]float64{math.Inf(1), 2})
		assert.ErrorIs(t, err, ErrValue)
		_, err = Normalize([]float64{3, math.Inf(-1)})
		assert.ErrorIs(t, err, ErrValue)
	})
}

func TestBounds(t *testing.T) {
	t.Run("Should return min and max", func(t *testing.T) {
		lo, hi, err := Bounds([]float64{50, 300, 150})
		require.NoError(t, err)
		assert.Equal(t, 50.0, lo)
		assert.Equal(t, 300.0, hi)
	})

	t.Run("Should fail with ErrEmpty on an empty sequence", func(t *testing.T) {
		_, _, err := Bounds(nil)
		assert.True(t, errors.Is(err, ErrEmpty))
		assert.ErrorIs(t, err, ErrValue)
		assert.NotErrorIs(t, err, ErrType)
	})
}

func TestInfo(t *testing.T) {
	t.Run("Should expose the static engine metadata", func(t *testing.T) {
		info := Info()
		assert.Equal(t, "1.0.0", info.Version)
		assert.Equal(t, "Tu Nombre", info.Author)
		assert.Equal(t, "2024-03-15", info.UpdatedAt)
	})
}
