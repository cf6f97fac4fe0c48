package seating

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rhyrak/go-seating/pkg/model"
)

var ErrNotEnoughSeats = errors.New("not enough available seats for all students")

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a math/rand generator seeded with seed, or with a
// random seed when seed is nil.
func NewShuffler(seed *int64) Shuffler {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = int64(Rand64())
	}
	return rand.New(rand.NewSource(s))
}

// AvailableSeats lists every seat of a rows x cols room in row-major order,
// skipping blocked ones.
func AvailableSeats(rows int, cols int, blocked []model.Seat) []model.Seat {
	skip := make(map[model.Seat]bool, len(blocked))
	for _, b := range blocked {
		skip[b] = true
	}

	var seats []model.Seat
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			seat := model.Seat{Row: r, Col: c}
			if skip[seat] {
				continue
			}
			seats = append(seats, seat)
		}
	}
	return seats
}

// Assign shuffles students and seats them in row-major order.
func Assign(students []string, cfg *Configuration) ([]model.Assignment, error) {
	return AssignWith(students, cfg, NewShuffler(cfg.Seed))
}

// AssignWith is Assign with a caller supplied generator.
// The students slice is not modified.
func AssignWith(students []string, cfg *Configuration, rng Shuffler) ([]model.Assignment, error) {
	available := AvailableSeats(cfg.Rows, cfg.Cols, cfg.Blocked)
	if len(students) > len(available) {
		return nil, fmt.Errorf("%w: %d students, %d seats", ErrNotEnoughSeats, len(students), len(available))
	}

	shuffled := make([]string, len(students))
	copy(shuffled, students)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assignments := make([]model.Assignment, len(shuffled))
	for i, student := range shuffled {
		assignments[i] = model.Assignment{Seat: available[i], Student: student}
	}
	return assignments, nil
}
