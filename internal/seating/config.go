package seating

import (
	"hash/maphash"

	"github.com/rhyrak/go-seating/pkg/model"
)

type Configuration struct {
	RosterFile string
	ExportFile string
	Rows       int
	Cols       int
	Blocked    []model.Seat
	Seed       *int64 // nil draws a fresh seed per run
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		RosterFile: "logic.txt",
		ExportFile: "",
		Rows:       7, // 7x9 fits a 63 student roster
		Cols:       9,
		Blocked:    []model.Seat{},
		Seed:       nil,
	}
}

// WithSeed returns a copy of the configuration pinned to seed.
func (c Configuration) WithSeed(seed int64) *Configuration {
	c.Seed = &seed
	return &c
}

// Capacity is the number of seats left after removing blocked ones.
func (c *Configuration) Capacity() int {
	return len(AvailableSeats(c.Rows, c.Cols, c.Blocked))
}

// Fast UINT64 RNG
func Rand64() uint64 {
	return new(maphash.Hash).Sum64()
}
