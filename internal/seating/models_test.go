package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"E7", "E7"},
		{"e7", "E7"},
		{"  e7 ", "E7"},
		{"E07", "E7"},
		{"aa12", "AA12"},
	}

	for _, tt := range tests {
		got, err := Canonicalize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCanonicalizeRejectsMalformedLabels(t *testing.T) {
	for _, in := range []string{"", "7E", "E 7", "E", "7", "E7a", "E0"} {
		_, err := Canonicalize(in)
		assert.Error(t, err, in)
	}
}

func TestSeatLabel(t *testing.T) {
	assert.Equal(t, "E7", SeatLabel("E", 7))
	assert.Equal(t, "G12", SeatLabel(" g ", 12))
}

func TestAvailableSeatValidate(t *testing.T) {
	valid := availableSeat{SeatsID: 42, SeatNo: 7, RowNo: "E"}
	assert.NoError(t, valid.validate())

	assert.Error(t, availableSeat{SeatNo: 7, RowNo: "E"}.validate())
	assert.Error(t, availableSeat{SeatsID: 42, RowNo: "E"}.validate())
	assert.Error(t, availableSeat{SeatsID: 42, SeatNo: 7, RowNo: " "}.validate())
}
