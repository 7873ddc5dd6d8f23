package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

func TestCityOf(t *testing.T) {
	t.Run("all synonyms resolve to one canonical city", func(t *testing.T) {
		madinah := []string{"Madinah", "MEDINA", "madina", "Медина", "гостиницы Медины"}
		for _, s := range madinah {
			assert.Equal(t, models.CityMadinah, CityOf(s), "input %q", s)
		}

		makkah := []string{"Makkah", "makka", "Mecca", "MEKKA", "Мекка", "МАКК"}
		for _, s := range makkah {
			assert.Equal(t, models.CityMakkah, CityOf(s), "input %q", s)
		}
	})

	t.Run("non-breaking spaces are tolerated", func(t *testing.T) {
		assert.Equal(t, models.CityMadinah, CityOf("Hotel in Madinah"))
	})

	t.Run("unrelated text yields no city", func(t *testing.T) {
		assert.Equal(t, models.CityUnknown, CityOf("Al Kiswah Towers"))
		assert.Equal(t, models.CityUnknown, CityOf(""))
	})
}

func TestDetectCity(t *testing.T) {
	t.Run("returns column of matching cell", func(t *testing.T) {
		row := []string{"", "Gr.10", "Makkah", "Al Kiswah"}
		city, col, ok := DetectCity(row, 0)
		assert.True(t, ok)
		assert.Equal(t, models.CityMakkah, city)
		assert.Equal(t, 2, col)
	})

	t.Run("respects column limit", func(t *testing.T) {
		row := []string{"x", "y", "Madinah"}
		_, _, ok := DetectCity(row, 2)
		assert.False(t, ok)
	})

	t.Run("empty row", func(t *testing.T) {
		_, _, ok := DetectCity(nil, 18)
		assert.False(t, ok)
	})
}
