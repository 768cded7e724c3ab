package explorer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateStep(t *testing.T) {
	origin := xy(0, 0)
	assert.Equal(t, xy(1, 0), origin.Step(East))
	assert.Equal(t, xy(0, -1), origin.Step(South))
	assert.Equal(t, xy(-1, 0), origin.Step(West))
	assert.Equal(t, xy(0, 1), origin.Step(North))
	assert.Equal(t, "(3,-2)", xy(3, -2).String())
}

func TestDirection(t *testing.T) {
	t.Run("Opposite", func(t *testing.T) {
		assert.Equal(t, West, East.Opposite())
		assert.Equal(t, North, South.Opposite())
		assert.Equal(t, East, West.Opposite())
		assert.Equal(t, South, North.Opposite())
	})

	t.Run("Rotate wraps both ways", func(t *testing.T) {
		assert.Equal(t, South, East.Rotate(1))
		assert.Equal(t, East, North.Rotate(1))
		assert.Equal(t, North, East.Rotate(-1))
		assert.Equal(t, West, West.Rotate(8))
	})

	t.Run("Parse", func(t *testing.T) {
		d, err := ParseDirection("nOrTh")
		assert.NoError(t, err)
		assert.Equal(t, North, d)

		_, err = ParseDirection("up")
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("Between", func(t *testing.T) {
		d, ok := DirectionBetween(xy(2, 2), xy(2, 3))
		assert.True(t, ok)
		assert.Equal(t, North, d)

		_, ok = DirectionBetween(xy(2, 2), xy(3, 3))
		assert.False(t, ok)

		_, ok = DirectionBetween(xy(2, 2), xy(2, 2))
		assert.False(t, ok)
	})
}
