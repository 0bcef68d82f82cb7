package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowToViewSplitsTimestamp(t *testing.T) {
	show := Show{ShowID: 77, MovieID: 5, ShowroomID: 2, DateTime: "2026-06-20T19:00:00", Duration: 116}
	view := show.ToView()

	assert.Equal(t, "2026-06-20", view.Date)
	assert.Equal(t, "7:00 PM", view.Time)
	assert.Equal(t, int64(77), view.ShowID)
	assert.Equal(t, 116, view.Duration)
}

func TestShowToViewPassesThroughUnparseable(t *testing.T) {
	show := Show{ShowID: 77, MovieID: 5, DateTime: "someday"}
	view := show.ToView()

	assert.Equal(t, "someday", view.Date)
	assert.Empty(t, view.Time)
}

func TestMovieValidate(t *testing.T) {
	assert.NoError(t, Movie{MovieID: 5, Name: "Arrival"}.validate())
	assert.Error(t, Movie{Name: "Arrival"}.validate())
	assert.Error(t, Movie{MovieID: 5, Name: "  "}.validate())
}

func TestShowValidate(t *testing.T) {
	assert.NoError(t, Show{ShowID: 77, MovieID: 5, DateTime: "2026-06-20T19:00:00"}.validate())
	assert.Error(t, Show{MovieID: 5, DateTime: "2026-06-20T19:00:00"}.validate())
	assert.Error(t, Show{ShowID: 77, DateTime: "2026-06-20T19:00:00"}.validate())
	assert.Error(t, Show{ShowID: 77, MovieID: 5}.validate())
}
