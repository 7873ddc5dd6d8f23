package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightCode(t *testing.T) {
	t.Run("plain code", func(t *testing.T) {
		code, ok := FlightCode("KC265")
		require.True(t, ok)
		assert.Equal(t, "KC265", code)
	})

	t.Run("internal space is stripped", func(t *testing.T) {
		code, ok := FlightCode("KC 8201")
		require.True(t, ok)
		assert.Equal(t, "KC8201", code)
	})

	t.Run("no code", func(t *testing.T) {
		_, ok := FlightCode("Jeddah")
		assert.False(t, ok)
	})
}

func TestSegments(t *testing.T) {
	t.Run("full segment with left date", func(t *testing.T) {
		row := []string{"", "01.12.2025", "KC265", "08:00", "11:30", "ALA JED"}
		segs := Segments(row)
		require.Len(t, segs, 1)
		assert.Equal(t, "KC265", segs[0].Flight)
		assert.Equal(t, "01/12/2025", segs[0].Date)
		assert.Equal(t, "08:00", segs[0].Departure)
		assert.Equal(t, "11:30", segs[0].Arrival)
		assert.Equal(t, "ALA JED", segs[0].Route)
	})

	t.Run("date two cells left within lookback", func(t *testing.T) {
		row := []string{"01.12.2025", "", "KC265", "08:00", "11:30"}
		segs := Segments(row)
		require.Len(t, segs, 1)
		assert.Equal(t, "01/12/2025", segs[0].Date)
	})

	t.Run("no date in lookback rejects segment", func(t *testing.T) {
		row := []string{"01.12.2025", "", "", "", "KC265", "08:00", "11:30"}
		assert.Empty(t, Segments(row))
	})

	t.Run("invalid times reject segment", func(t *testing.T) {
		row := []string{"01.12.2025", "KC265", "morning", "11:30"}
		assert.Empty(t, Segments(row))
	})

	t.Run("multiple segments in one row", func(t *testing.T) {
		row := []string{
			"01.12.2025", "KC265", "08:00", "11:30", "ALA JED",
			"08.12.2025", "KC266", "13:00", "20:10", "JED ALA",
		}
		segs := Segments(row)
		require.Len(t, segs, 2)
		assert.Equal(t, "KC266", segs[1].Flight)
		assert.Equal(t, "08/12/2025", segs[1].Date)
	})
}
