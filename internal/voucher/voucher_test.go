package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

func intp(n int) *int { return &n }

func TestBuildAppliesDefaults(t *testing.T) {
	v := NewBuilder(DefaultValues()).Build()

	assert.Equal(t, "Виза и страховка", v.Service)
	assert.Equal(t, "Завтрак и ужин", v.Meal)
	assert.Equal(t, "Групповой гид", v.Guide)
	assert.Equal(t, "Мекка, Медина", v.Excursions)
	assert.Equal(t, "+966 56 328 0325", v.TechContact)
	assert.Equal(t, "—", v.Transfer)
	assert.True(t, v.Legs[0].Empty())
	assert.True(t, v.Legs[1].Empty())
}

func TestBuildFillsLegsAndCheckInFallback(t *testing.T) {
	blocks := []models.HotelBlock{
		{City: models.CityMakkah, Hotel: "Al Kiswah Towers", DateRange: "15/11/2025 – 22/11/2025", Nights: intp(7), CheckIn: "16:00"},
		{City: models.CityMadinah, Hotel: "Dar Al Eiman", DateRange: "22/11/2025 – 25/11/2025", Nights: intp(3)},
	}
	v := NewBuilder(DefaultValues()).WithBlocks(blocks).WithSourceSheet("Hotels").Build()

	assert.Equal(t, models.CityMakkah, v.Legs[0].City)
	assert.Equal(t, "16:00", v.Legs[0].CheckIn)
	assert.Equal(t, "17:00", v.Legs[1].CheckIn)
	assert.Equal(t, "Hotels", v.SourceSheet)
}

func TestBuildUsesTransportDisplay(t *testing.T) {
	info := &models.TransportInfo{Rail: true, Road: true, Display: "Поезд, Автобус"}
	v := NewBuilder(DefaultValues()).WithTransport(info).Build()
	assert.Equal(t, "Поезд, Автобус", v.Transfer)
}

func TestBuilderPartialsAreIndependent(t *testing.T) {
	base := NewBuilder(DefaultValues())
	withRail := base.WithTransport(&models.TransportInfo{Rail: true, Display: "Поезд"})

	assert.Equal(t, "—", base.Build().Transfer)
	assert.Equal(t, "Поезд", withRail.Build().Transfer)
}

func TestEnsureChronologicalSwapsAndRecomputesNights(t *testing.T) {
	v := &models.Voucher{}
	v.Legs[0] = models.CityLeg{City: models.CityMadinah, Hotel: "Dar Al Eiman", DateRange: "18/11/2025 – 21/11/2025"}
	v.Legs[1] = models.CityLeg{City: models.CityMakkah, Hotel: "Al Kiswah Towers", DateRange: "16/11/2025 – 18/11/2025"}

	EnsureChronological(v)

	assert.Equal(t, models.CityMakkah, v.Legs[0].City)
	assert.Equal(t, models.CityMadinah, v.Legs[1].City)
	require.NotNil(t, v.Legs[0].Nights)
	require.NotNil(t, v.Legs[1].Nights)
	assert.Equal(t, 2, *v.Legs[0].Nights)
	assert.Equal(t, 3, *v.Legs[1].Nights)

	// Second application is a no-op.
	EnsureChronological(v)
	assert.Equal(t, models.CityMakkah, v.Legs[0].City)
	assert.Equal(t, 2, *v.Legs[0].Nights)
}

func TestEnsureChronologicalSkipsMalformed(t *testing.T) {
	v := &models.Voucher{}
	v.Legs[0] = models.CityLeg{City: models.CityMadinah, DateRange: "soon"}
	v.Legs[1] = models.CityLeg{City: models.CityMakkah, DateRange: "16/11/2025 – 18/11/2025"}

	EnsureChronological(v)
	assert.Equal(t, models.CityMadinah, v.Legs[0].City)
}

func TestNightsFromRange(t *testing.T) {
	n := NightsFromRange("15/11/2025 – 22/11/2025")
	require.NotNil(t, n)
	assert.Equal(t, 7, *n)

	assert.Nil(t, NightsFromRange("22/11/2025 – 15/11/2025"))
	assert.Nil(t, NightsFromRange("15/11/2025"))
	assert.Nil(t, NightsFromRange(""))

	n = NightsFromRange("15/11/2025 – 15/11/2025")
	require.NotNil(t, n)
	assert.Equal(t, 0, *n)
}

func TestPluralNights(t *testing.T) {
	cases := map[int]string{
		1:  "ночь",
		2:  "ночи",
		4:  "ночи",
		5:  "ночей",
		11: "ночей",
		12: "ночей",
		14: "ночей",
		21: "ночь",
		22: "ночи",
		25: "ночей",
	}
	for n, want := range cases {
		assert.Equal(t, want, PluralNights(n), "n=%d", n)
	}
}

func TestPreviewText(t *testing.T) {
	v := NewBuilder(DefaultValues()).WithBlocks([]models.HotelBlock{
		{City: models.CityMakkah, Hotel: "Al Kiswah Towers", DateRange: "15/11/2025 – 22/11/2025", Nights: intp(7), CheckIn: "16:00"},
	}).Build()
	v.Flights = &models.FlightPlan{
		DepartDate: "15/11/2025", DepartFlight: "Рейс KC265", DepartTime1: "08:00", DepartTime2: "11:30",
		ReturnDate: "22/11/2025", ReturnFlight: "Рейс KC266", ReturnTime1: "13:00", ReturnTime2: "19:30",
	}

	text := PreviewText(v, "15.11-22.11 NIYET/7d")
	assert.Contains(t, text, "Пакет: 15.11-22.11 NIYET/7d")
	assert.Contains(t, text, "Мекка")
	assert.Contains(t, text, "Отель: Al Kiswah Towers")
	assert.Contains(t, text, "Ночей: 7 ночей")
	assert.Contains(t, text, "Рейс KC265 08:00-11:30")
	assert.NotContains(t, text, "\nМедина\n")
}

func TestFilenameSlug(t *testing.T) {
	assert.Equal(t, "15_11-22_11_NIYET_7d", FilenameSlug("15.11-22.11 NIYET/7d"))
	assert.Equal(t, "voucher", FilenameSlug("///"))
}

func TestPickSecondPage(t *testing.T) {
	assert.Equal(t, SecondPageMadinahTrain, PickSecondPage(models.CityMadinah, "Поезд Мекка-Медина"))
	assert.Equal(t, SecondPageMadinah, PickSecondPage(models.CityMadinah, "Автобус"))
	assert.Equal(t, SecondPageMakkah, PickSecondPage(models.CityMakkah, "Поезд"))
	assert.Equal(t, SecondPageMakkah, PickSecondPage(models.CityUnknown, ""))
}
