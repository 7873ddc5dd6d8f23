package hotels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return NewResolverWithYear(logger, 2025)
}

func TestTitleDates(t *testing.T) {
	r := testResolver(t)

	t.Run("plain span", func(t *testing.T) {
		start, end, ok := r.TitleDates("15.11-22.11 NIYET/7d")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("en dash and spacing", func(t *testing.T) {
		_, end, ok := r.TitleDates("05.11 – 12.11 HIKMA")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("no span", func(t *testing.T) {
		_, _, ok := r.TitleDates("NIYET PREMIUM")
		assert.False(t, ok)
	})
}

func TestBlocksForPackage(t *testing.T) {
	r := testResolver(t)

	t.Run("two city blocks for the package dates", func(t *testing.T) {
		grid := models.Grid{
			{"Makkah", "Al Kiswah", "15/11/2025", "22/11/2025"},
			{"Madinah", "Dar Al Eiman", "15/11/2025", "18/11/2025"},
		}
		blocks := r.BlocksForPackage(grid, "15.11-22.11 NIYET/7d")
		require.Len(t, blocks, 2)

		// Equal start dates: city-name order is preserved by the stable
		// sort, so Madinah keeps its precedence.
		assert.Equal(t, models.CityMadinah, blocks[0].City)
		assert.Equal(t, "Dar Al Eiman", blocks[0].Hotel)
		assert.Equal(t, "15/11/2025 – 18/11/2025", blocks[0].DateRange)
		require.NotNil(t, blocks[0].Nights)
		assert.Equal(t, 3, *blocks[0].Nights)

		assert.Equal(t, models.CityMakkah, blocks[1].City)
		assert.Equal(t, "Al Kiswah", blocks[1].Hotel)
		require.NotNil(t, blocks[1].Nights)
		assert.Equal(t, 7, *blocks[1].Nights)
	})

	t.Run("rows outside the date tolerance are rejected", func(t *testing.T) {
		grid := models.Grid{
			{"Makkah", "Al Kiswah", "15/11/2025", "22/11/2025"},
			{"Makkah", "Other Hotel", "01/12/2025", "08/12/2025"},
		}
		blocks := r.BlocksForPackage(grid, "15.11-22.11 NIYET/7d")
		require.Len(t, blocks, 1)
		assert.Equal(t, "Al Kiswah", blocks[0].Hotel)
	})

	t.Run("start within two days is accepted", func(t *testing.T) {
		grid := models.Grid{
			{"Madinah", "Vally", "13/11/2025", "16/11/2025"},
		}
		blocks := r.BlocksForPackage(grid, "15.11-22.11 NIYET/7d")
		require.Len(t, blocks, 1)
	})

	t.Run("at most one candidate per city, lowest row wins", func(t *testing.T) {
		grid := models.Grid{
			{"Makkah", "First Hotel", "15/11/2025", "22/11/2025"},
			{"Makkah", "Second Hotel", "15/11/2025", "22/11/2025"},
		}
		blocks := r.BlocksForPackage(grid, "15.11-22.11 NIYET/7d")
		require.Len(t, blocks, 1)
		assert.Equal(t, "First Hotel", blocks[0].Hotel)
	})

	t.Run("blocks sorted by start date", func(t *testing.T) {
		grid := models.Grid{
			{"Makkah", "Al Kiswah", "15/11/2025", "19/11/2025"},
			{"Madinah", "Dar Al Eiman", "19/11/2025", "22/11/2025"},
		}
		blocks := r.BlocksForPackage(grid, "15.11-22.11 NIYET/7d")
		require.Len(t, blocks, 2)
		assert.Equal(t, models.CityMakkah, blocks[0].City)
		assert.Equal(t, models.CityMadinah, blocks[1].City)
	})

	t.Run("title without dates fails resolution", func(t *testing.T) {
		grid := models.Grid{
			{"Makkah", "Al Kiswah", "15/11/2025", "22/11/2025"},
		}
		assert.Nil(t, r.BlocksForPackage(grid, "NIYET PREMIUM"))
	})

	t.Run("rows without hotels contribute nothing", func(t *testing.T) {
		grid := models.Grid{
			{"Makkah", "15/11/2025", "22/11/2025"},
		}
		assert.Nil(t, r.BlocksForPackage(grid, "15.11-22.11 NIYET/7d"))
	})
}

func TestBlocksNearRow(t *testing.T) {
	r := testResolver(t)

	grid := models.Grid{
		{"15.11-22.11 NIYET/7d"},
		{"Ivanov Ivan", "Gr.10"},
		{"Makkah", "Al Kiswah", "15/11/2025", "22/11/2025"},
		{"Madinah", "Dar Al Eiman", "15/11/2025", "18/11/2025"},
	}
	blocks := r.BlocksNearRow(grid, 0)
	require.Len(t, blocks, 2)
	assert.Equal(t, models.CityMakkah, blocks[0].City)
	assert.Equal(t, models.CityMadinah, blocks[1].City)
	assert.Equal(t, DefaultCheckIn, blocks[0].CheckIn)
}
