package seating

// The theater floor plan is fixed: 8 rows labelled A (front) to H (back),
// numbered left to right up to 18. The back row is short, the next one
// slightly wider, and the three front rows skip numbers 8-11 for the
// center aisle. Loaded once; never regenerated.

// Row is one physical seat row: its letter, the widest seat number in the
// room (for rendering alignment), and the seat numbers that actually exist.
type Row struct {
	Label string `json:"row"`
	Max   int    `json:"max"`
	Seats []int  `json:"seats"`
}

var theaterLayout = []Row{
	// Back rows (top)
	{Label: "H", Max: 18, Seats: seatRange(5, 14)},
	{Label: "G", Max: 18, Seats: seatRange(3, 16)},
	{Label: "F", Max: 18, Seats: seatRange(1, 18)},
	{Label: "E", Max: 18, Seats: seatRange(1, 18)},
	{Label: "D", Max: 18, Seats: seatRange(1, 18)},
	// Front rows with middle gap
	{Label: "C", Max: 18, Seats: withAisleGap()},
	{Label: "B", Max: 18, Seats: withAisleGap()},
	{Label: "A", Max: 18, Seats: withAisleGap()},
}

// validSeats indexes every seat label that exists in the layout
var validSeats = buildSeatIndex()

func seatRange(from, to int) []int {
	seats := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		seats = append(seats, n)
	}
	return seats
}

func withAisleGap() []int {
	return append(seatRange(1, 7), seatRange(12, 18)...)
}

func buildSeatIndex() map[string]bool {
	index := make(map[string]bool)
	for _, row := range theaterLayout {
		for _, n := range row.Seats {
			index[SeatLabel(row.Label, n)] = true
		}
	}
	return index
}

// Layout returns the theater rows in display order (back row first)
func Layout() []Row {
	rows := make([]Row, len(theaterLayout))
	for i, row := range theaterLayout {
		seats := make([]int, len(row.Seats))
		copy(seats, row.Seats)
		rows[i] = Row{Label: row.Label, Max: row.Max, Seats: seats}
	}
	return rows
}

// LayoutContains reports whether a canonical label names a real seat
func LayoutContains(label string) bool {
	return validSeats[label]
}
