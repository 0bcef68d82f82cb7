package seating

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SeatState is the exclusive state of a seat in the map view
type SeatState string

const (
	SeatAvailable   SeatState = "available"
	SeatSelected    SeatState = "selected"
	SeatUnavailable SeatState = "unavailable"
)

// SeatView is one renderable seat cell
type SeatView struct {
	Label  string    `json:"label"`
	Number int       `json:"number"`
	State  SeatState `json:"state"`
}

// RowView is one rendered seat row
type RowView struct {
	Row   string     `json:"row"`
	Max   int        `json:"max"`
	Seats []SeatView `json:"seats"`
}

// SeatMap is the full seat-selection view for one show
type SeatMap struct {
	ShowID   string    `json:"show_id"`
	Rows     []RowView `json:"rows"`
	Selected []string  `json:"selected"`
	Required int       `json:"required"`
	Degraded bool      `json:"degraded"`
}

// ToggleResult reports the outcome of a seat toggle
type ToggleResult struct {
	Seat     string   `json:"seat"`
	Selected []string `json:"selected"`
	Changed  bool     `json:"changed"`
	Notice   string   `json:"notice,omitempty"`
}

// availableSeat is the upstream row for one bookable seat
type availableSeat struct {
	SeatsID int64  `json:"seats_id"`
	SeatNo  int    `json:"seat_no"`
	RowNo   string `json:"row_no"`
}

func (a availableSeat) validate() error {
	if a.SeatsID <= 0 {
		return fmt.Errorf("seat entry missing seats_id")
	}
	if a.SeatNo <= 0 {
		return fmt.Errorf("seat %d has invalid seat_no %d", a.SeatsID, a.SeatNo)
	}
	if strings.TrimSpace(a.RowNo) == "" {
		return fmt.Errorf("seat %d has empty row_no", a.SeatsID)
	}
	return nil
}

// SeatLabel builds the canonical human label for a row letter and number
func SeatLabel(row string, number int) string {
	return strings.ToUpper(strings.TrimSpace(row)) + strconv.Itoa(number)
}

var seatLabelPattern = regexp.MustCompile(`^([A-Z]+)(\d+)$`)

// Canonicalize normalizes a free-form seat label: trimmed, uppercased,
// letters then digits. Returns an error for anything else ("7E", "E 7", "").
func Canonicalize(label string) (string, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(label))
	matches := seatLabelPattern.FindStringSubmatch(cleaned)
	if matches == nil {
		return "", fmt.Errorf("invalid seat label %q", label)
	}

	// Strip leading zeros from the number part ("E07" -> "E7")
	number, err := strconv.Atoi(matches[2])
	if err != nil || number <= 0 {
		return "", fmt.Errorf("invalid seat label %q", label)
	}

	return matches[1] + strconv.Itoa(number), nil
}
