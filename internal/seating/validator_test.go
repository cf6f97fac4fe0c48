package seating

import (
	"testing"

	"github.com/rhyrak/go-seating/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cfg := layout(2, 2, model.Seat{Row: 1, Col: 1})

	t.Run("valid plan", func(t *testing.T) {
		valid, msg := Validate([]model.Assignment{
			{Seat: model.Seat{Row: 1, Col: 2}, Student: "A"},
			{Seat: model.Seat{Row: 2, Col: 1}, Student: "B"},
		}, cfg)
		assert.True(t, valid)
		assert.Contains(t, msg, "[  OK]: Seat collision check.")
		assert.Contains(t, msg, "[  OK]: Blocked seat check.")
		assert.Contains(t, msg, "[  OK]: Seat inside room check.")
	})

	t.Run("seat used twice", func(t *testing.T) {
		valid, msg := Validate([]model.Assignment{
			{Seat: model.Seat{Row: 2, Col: 2}, Student: "A"},
			{Seat: model.Seat{Row: 2, Col: 2}, Student: "B"},
		}, cfg)
		assert.False(t, valid)
		assert.Contains(t, msg, "[FAIL]: Seat collision check.")
		assert.Contains(t, msg, "Seat R2C2 assigned to both A and B")
	})

	t.Run("blocked seat in use", func(t *testing.T) {
		valid, msg := Validate([]model.Assignment{
			{Seat: model.Seat{Row: 1, Col: 1}, Student: "A"},
		}, cfg)
		assert.False(t, valid)
		assert.Contains(t, msg, "[FAIL]: Blocked seat check.")
	})

	t.Run("seat outside room", func(t *testing.T) {
		valid, msg := Validate([]model.Assignment{
			{Seat: model.Seat{Row: 3, Col: 1}, Student: "A"},
		}, cfg)
		assert.False(t, valid)
		assert.Contains(t, msg, "[FAIL]: Seat inside room check.")
	})
}
