package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Movie is the upstream row for one film
type Movie struct {
	MovieID     int64   `json:"movie_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Rating      *string `json:"rating,omitempty"`
	Runtime     *int    `json:"runtime,omitempty"`
	ReleaseDate *string `json:"release_date,omitempty"`
	Available   bool    `json:"available"`
	Poster      *string `json:"poster,omitempty"`
	Trailer     *string `json:"trailer,omitempty"`
	MainGenre   *string `json:"main_genre,omitempty"`
}

func (m Movie) validate() error {
	if m.MovieID <= 0 {
		return fmt.Errorf("movie missing movie_id")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("movie %d has empty name", m.MovieID)
	}
	return nil
}

// Show is the upstream row for one scheduled showtime
type Show struct {
	ShowID     int64  `json:"show_id"`
	MovieID    int64  `json:"movieid"`
	ShowroomID int64  `json:"showroom_id"`
	DateTime   string `json:"date_time"`
	Duration   int    `json:"duration"`
}

func (s Show) validate() error {
	if s.ShowID <= 0 {
		return fmt.Errorf("show missing show_id")
	}
	if s.MovieID <= 0 {
		return fmt.Errorf("show %d missing movieid", s.ShowID)
	}
	if strings.TrimSpace(s.DateTime) == "" {
		return fmt.Errorf("show %d has empty date_time", s.ShowID)
	}
	return nil
}

// ShowView is the API shape for one showtime, with the timestamp split the
// way the booking flow consumes it.
type ShowView struct {
	ShowID     int64  `json:"show_id"`
	MovieID    int64  `json:"movie_id"`
	ShowroomID int64  `json:"showroom_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Duration   int    `json:"duration"`
}

// ToView splits the upstream timestamp into booking-flow date and time.
// Unparseable timestamps pass through verbatim in the date field.
func (s Show) ToView() ShowView {
	view := ShowView{
		ShowID:     s.ShowID,
		MovieID:    s.MovieID,
		ShowroomID: s.ShowroomID,
		Duration:   s.Duration,
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s.DateTime); err == nil {
			view.Date = t.Format("2006-01-02")
			view.Time = t.Format("3:04 PM")
			return view
		}
	}

	view.Date = s.DateTime
	return view
}
