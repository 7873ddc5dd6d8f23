package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportKeywords(t *testing.T) {
	t.Run("rail in both languages", func(t *testing.T) {
		assert.True(t, HasRail("Haramain train JED-MED"))
		assert.True(t, HasRail("Поезд в 14:30"))
		assert.True(t, HasRail("трансфер жд вокзал"))
		assert.False(t, HasRail("между отелями")) // "жд" inside a word is not a keyword
		assert.False(t, HasRail("restraining order"))
	})

	t.Run("road in both languages", func(t *testing.T) {
		assert.True(t, HasRoad("bus to Makkah"))
		assert.True(t, HasRoad("Автобус 19:00"))
		assert.False(t, HasRoad("busy schedule"))
	})

	t.Run("generic transfer keyword", func(t *testing.T) {
		assert.True(t, HasTransfer("Трансфер в аэропорт"))
		assert.True(t, HasTransfer("airport transfer"))
		assert.False(t, HasTransfer("Поезд JED-MED"))
	})
}

func TestRoute(t *testing.T) {
	assert.Equal(t, "JED–MED", Route("поезд jed - med 14:30"))
	assert.Equal(t, "ALA–JED", Route("ALA–JED"))
	assert.Equal(t, "", Route("автобус до отеля"))
}

func TestTimeIn(t *testing.T) {
	assert.Equal(t, "14:30", TimeIn("поезд JED-MED 14:30"))
	assert.Equal(t, "", TimeIn("автобус"))
}
