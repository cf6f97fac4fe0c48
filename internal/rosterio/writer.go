package rosterio

import (
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-seating/pkg/model"
)

// FormatList renders one "<seat>: <student>" line per assignment.
func FormatList(assignments []model.Assignment) string {
	lines := make([]string, 0, len(assignments))
	for _, a := range assignments {
		lines = append(lines, a.Seat.Label()+": "+a.Student)
	}
	return strings.Join(lines, "\n")
}

// FormatGrid renders the room row by row. Empty seats show model.EmptySeat.
// When a seat appears more than once the last assignment is shown.
func FormatGrid(assignments []model.Assignment, rows int, cols int) string {
	room := model.NewRoom(rows, cols)
	for _, a := range assignments {
		room.Set(a.Seat, a.Student)
	}

	lines := make([]string, 0, room.Rows)
	for r := 1; r <= room.Rows; r++ {
		cells := make([]string, 0, room.Cols)
		for c := 1; c <= room.Cols; c++ {
			seat := model.Seat{Row: r, Col: c}
			cells = append(cells, seat.Label()+": "+room.At(seat))
		}
		lines = append(lines, strings.Join(cells, " | "))
	}
	return strings.Join(lines, "\n")
}

// PrintAssignments writes the assignment list followed by the room view.
func PrintAssignments(w io.Writer, assignments []model.Assignment, rows int, cols int) error {
	var b strings.Builder
	b.WriteString("Seating assignments:\n")
	if len(assignments) > 0 {
		b.WriteString(FormatList(assignments))
		b.WriteString("\n")
	}
	b.WriteString("\nRoom view:\n")
	b.WriteString(FormatGrid(assignments, rows, cols))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ExportAssignments writes the plan as CSV to path, replacing any existing file.
func ExportAssignments(assignments []model.Assignment, path string) (string, error) {
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := WriteAssignmentsCSV(out, assignments); err != nil {
		return "", err
	}
	return path, nil
}

// WriteAssignmentsCSV writes the plan as CSV with a seat,row,col,student header.
func WriteAssignmentsCSV(w io.Writer, assignments []model.Assignment) error {
	rows := toCSVRows(assignments)
	return gocsv.Marshal(&rows, w)
}

// ExportAssignmentsString returns the plan in the WriteAssignmentsCSV format.
func ExportAssignmentsString(assignments []model.Assignment) (string, error) {
	rows := toCSVRows(assignments)
	return gocsv.MarshalString(&rows)
}

func toCSVRows(assignments []model.Assignment) []*model.AssignmentCSVRow {
	rows := make([]*model.AssignmentCSVRow, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, &model.AssignmentCSVRow{
			Seat:    a.Seat.Label(),
			Row:     a.Seat.Row,
			Col:     a.Seat.Col,
			Student: a.Student,
		})
	}
	return rows
}
