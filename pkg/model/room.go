package model

// EmptySeat is displayed for seats nobody was placed in.
const EmptySeat = "-"

type Room struct {
	Rows  int
	Cols  int
	seats [][]string
}

/* NewRoom creates an empty rows x cols room. */
func NewRoom(rows int, cols int) *Room {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	room := Room{Rows: rows, Cols: cols, seats: make([][]string, rows)}
	for i := range room.seats {
		room.seats[i] = make([]string, cols)
	}
	return &room
}

func (r *Room) inside(s Seat) bool {
	return s.Row >= 1 && s.Row <= r.Rows && s.Col >= 1 && s.Col <= r.Cols
}

// IsAvailable checks if the seat exists and is not occupied.
func (r *Room) IsAvailable(s Seat) bool {
	if !r.inside(s) {
		return false
	}
	return r.seats[s.Row-1][s.Col-1] == ""
}

// Place puts a student into the seat.
// Returns false if the seat is outside the room or already occupied.
func (r *Room) Place(s Seat, student string) bool {
	if r.IsAvailable(s) {
		r.seats[s.Row-1][s.Col-1] = student
		return true
	}
	return false
}

// Set writes student into the seat whether or not it is occupied.
// Seats outside the room are ignored.
func (r *Room) Set(s Seat, student string) {
	if r.inside(s) {
		r.seats[s.Row-1][s.Col-1] = student
	}
}

// At returns the student sitting in s, or EmptySeat.
func (r *Room) At(s Seat) string {
	if !r.inside(s) || r.seats[s.Row-1][s.Col-1] == "" {
		return EmptySeat
	}
	return r.seats[s.Row-1][s.Col-1]
}
