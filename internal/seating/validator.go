package seating

import (
	"fmt"

	"github.com/rhyrak/go-seating/pkg/model"
)

// Validate checks a seating plan for reused, blocked and out-of-room seats.
// Returns false and a message for invalid plans.
func Validate(assignments []model.Assignment, cfg *Configuration) (bool, string) {
	var message string
	var valid bool = true
	var hasSeatCollision bool = false
	var hasBlockedSeat bool = false
	var hasStraySeat bool = false

	blocked := make(map[model.Seat]bool, len(cfg.Blocked))
	for _, b := range cfg.Blocked {
		blocked[b] = true
	}

	usedSeats := make(map[model.Seat]string, len(assignments))
	for _, a := range assignments {
		if prev, usedBefore := usedSeats[a.Seat]; usedBefore {
			valid = false
			hasSeatCollision = true
			message += fmt.Sprintf("- Seat %s assigned to both %s and %s\n", a.Seat.Label(), prev, a.Student)
		} else {
			usedSeats[a.Seat] = a.Student
		}
		if blocked[a.Seat] {
			valid = false
			hasBlockedSeat = true
			message += "- Blocked seat " + a.Seat.Label() + " is in use\n"
		}
		if a.Seat.Row < 1 || a.Seat.Row > cfg.Rows || a.Seat.Col < 1 || a.Seat.Col > cfg.Cols {
			valid = false
			hasStraySeat = true
			message += "- Seat " + a.Seat.Label() + " is outside the room\n"
		}
	}

	if hasStraySeat {
		message = "[FAIL]: Seat inside room check.\n" + message
	} else {
		message = "[  OK]: Seat inside room check.\n" + message
	}
	if hasBlockedSeat {
		message = "[FAIL]: Blocked seat check.\n" + message
	} else {
		message = "[  OK]: Blocked seat check.\n" + message
	}
	if hasSeatCollision {
		message = "[FAIL]: Seat collision check.\n" + message
	} else {
		message = "[  OK]: Seat collision check.\n" + message
	}

	return valid, message
}
