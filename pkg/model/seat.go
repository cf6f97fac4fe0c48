package model

import "strconv"

// Seat is a 1-indexed (row, column) position in a room.
type Seat struct {
	Row int
	Col int
}

// Label returns the seat label, e.g. "R2C5".
func (s Seat) Label() string {
	return "R" + strconv.Itoa(s.Row) + "C" + strconv.Itoa(s.Col)
}

// Assignment pairs a student with the seat they were given.
type Assignment struct {
	Seat    Seat
	Student string
}

type AssignmentCSVRow struct {
	Seat    string `csv:"seat"`
	Row     int    `csv:"row"`
	Col     int    `csv:"col"`
	Student string `csv:"student"`
}

type StudentCSVRow struct {
	ID   string `csv:"id"`
	Name string `csv:"name"`
}
