package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatLabel(t *testing.T) {
	assert.Equal(t, "R1C1", Seat{Row: 1, Col: 1}.Label())
	assert.Equal(t, "R7C12", Seat{Row: 7, Col: 12}.Label())
}

func TestSeatIsComparable(t *testing.T) {
	seen := map[Seat]bool{{Row: 2, Col: 3}: true}
	assert.True(t, seen[Seat{Row: 2, Col: 3}])
	assert.False(t, seen[Seat{Row: 3, Col: 2}])
}

func TestRoom(t *testing.T) {
	room := NewRoom(2, 3)
	require.Equal(t, 2, room.Rows)
	require.Equal(t, 3, room.Cols)

	t.Run("place into free seat", func(t *testing.T) {
		assert.True(t, room.IsAvailable(Seat{Row: 2, Col: 3}))
		assert.True(t, room.Place(Seat{Row: 2, Col: 3}, "Ada"))
		assert.Equal(t, "Ada", room.At(Seat{Row: 2, Col: 3}))
		assert.False(t, room.IsAvailable(Seat{Row: 2, Col: 3}))
	})

	t.Run("occupied seat is kept", func(t *testing.T) {
		assert.False(t, room.Place(Seat{Row: 2, Col: 3}, "Bob"))
		assert.Equal(t, "Ada", room.At(Seat{Row: 2, Col: 3}))
	})

	t.Run("seats outside the room", func(t *testing.T) {
		for _, s := range []Seat{{0, 1}, {1, 0}, {3, 1}, {1, 4}, {-1, -1}} {
			assert.False(t, room.IsAvailable(s), s.Label())
			assert.False(t, room.Place(s, "Eve"), s.Label())
			assert.Equal(t, EmptySeat, room.At(s), s.Label())
		}
	})

	t.Run("empty seat", func(t *testing.T) {
		assert.Equal(t, EmptySeat, room.At(Seat{Row: 1, Col: 1}))
	})
}

func TestRoomSetOverwrites(t *testing.T) {
	room := NewRoom(1, 2)
	require.True(t, room.Place(Seat{Row: 1, Col: 1}, "A"))

	room.Set(Seat{Row: 1, Col: 1}, "B")
	assert.Equal(t, "B", room.At(Seat{Row: 1, Col: 1}))

	room.Set(Seat{Row: 2, Col: 1}, "C")
	assert.Equal(t, EmptySeat, room.At(Seat{Row: 2, Col: 1}))
}

func TestNewRoomNegativeSize(t *testing.T) {
	room := NewRoom(-2, 4)
	assert.Equal(t, 0, room.Rows)
	assert.False(t, room.IsAvailable(Seat{Row: 1, Col: 1}))
}
