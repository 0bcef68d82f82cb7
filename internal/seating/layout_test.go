package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutShape(t *testing.T) {
	rows := Layout()
	assert.Len(t, rows, 8)

	byLabel := make(map[string]Row, len(rows))
	for _, row := range rows {
		byLabel[row.Label] = row
	}

	assert.Len(t, byLabel["H"].Seats, 10)
	assert.Len(t, byLabel["G"].Seats, 14)
	assert.Len(t, byLabel["F"].Seats, 18)
	assert.Len(t, byLabel["A"].Seats, 14)
}

func TestLayoutContains(t *testing.T) {
	assert.True(t, LayoutContains("E1"))
	assert.True(t, LayoutContains("H5"))
	assert.True(t, LayoutContains("A7"))
	assert.True(t, LayoutContains("A12"))

	// Aisle gap in the front rows
	assert.False(t, LayoutContains("A8"))
	assert.False(t, LayoutContains("B10"))
	assert.False(t, LayoutContains("C11"))

	// Outside the short back rows
	assert.False(t, LayoutContains("H4"))
	assert.False(t, LayoutContains("H15"))
	assert.False(t, LayoutContains("G2"))

	assert.False(t, LayoutContains("Z1"))
	assert.False(t, LayoutContains("E19"))
}

func TestLayoutReturnsCopy(t *testing.T) {
	rows := Layout()
	rows[0].Seats[0] = 999

	fresh := Layout()
	assert.NotEqual(t, 999, fresh[0].Seats[0])
}
