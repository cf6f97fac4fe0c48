package rosterio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-seating/pkg/model"
)

var ErrInvalidEncoding = errors.New("roster is not valid UTF-8")

// DemoRoster is used when no roster file exists.
func DemoRoster() []string {
	return []string{
		"Alice", "Bob", "Charlie", "Dana", "Eli", "Fatima",
		"Gina", "Hiro", "Ivy", "Jamal", "Kim", "Liu",
	}
}

// LoadOrDemo loads the roster at path, falling back to DemoRoster only when
// the file does not exist. The second return value reports the fallback.
func LoadOrDemo(path string) ([]string, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DemoRoster(), true, nil
		}
		return nil, false, err
	}
	students, err := LoadStudents(path)
	return students, false, err
}

// LoadStudents reads a roster file, one "<id> <name>" or "<name>" per line.
// Files ending in .csv are not line rosters: they are read with
// LoadStudentsCSV as an "id,name" table instead.
func LoadStudents(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadStudentsCSV(path, ',')
	}

	rosterFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer rosterFile.Close()

	students, err := ParseStudents(rosterFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return students, nil
}

// ParseStudents turns roster lines into display strings. Blank lines are
// skipped, and everything after the first token is glued together as the name.
func ParseStudents(in io.Reader) ([]string, error) {
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, ErrInvalidEncoding
	}

	students := []string{}
	for _, line := range strings.FieldsFunc(string(content), isLineBreak) {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		students = append(students, displayName(parts[0], strings.Join(parts[1:], "")))
	}
	return students, nil
}

// LoadStudentsCSV reads a roster with an "id,name" header.
func LoadStudentsCSV(path string, delim rune) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = delim
	r.TrimLeadingSpace = true

	rows := []*model.StudentCSVRow{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	students := []string{}
	for _, row := range rows {
		id := strings.TrimSpace(row.ID)
		name := strings.Join(strings.Fields(row.Name), "")
		switch {
		case id == "" && name == "":
			continue
		case id == "":
			students = append(students, name)
		default:
			students = append(students, displayName(id, name))
		}
	}
	return students, nil
}

func displayName(id string, name string) string {
	if name == "" {
		return id
	}
	return id + " " + name
}

// isLineBreak matches every rune that ends a line in a roster: LF, CR,
// VT, FF, the file/group/record separators, NEL and the Unicode line and
// paragraph separators. Empty lines between breaks are dropped.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
