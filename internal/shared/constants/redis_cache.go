package constants

import "time"

// Redis keys and TTLs for the booking pipeline.
// Pattern: cinebook:{module}:{operation}:{identifier}

const (
	CACHE_PREFIX = "cinebook"
)

// ================== SESSION STORE ==================

// Checkout session state, one record per storefront session. This replaces
// the browser-local cross-page state of the old storefront with a typed,
// server-held record (see checkout.Session for the read/write contract).
const (
	KEY_SESSION = CACHE_PREFIX + ":session:sid:" // + session-id
)

// ================== CATALOG MODULE ==================

const (
	CACHE_KEY_MOVIES_LIST   = CACHE_PREFIX + ":catalog:movies:list"
	CACHE_KEY_MOVIE_DETAIL  = CACHE_PREFIX + ":catalog:movies:detail:id:" // + movie-id
	CACHE_KEY_SHOWS_BY_FILM = CACHE_PREFIX + ":catalog:shows:movie:"     // + movie-id
)

const (
	TTL_MOVIES_LIST  = 15 * time.Minute
	TTL_MOVIE_DETAIL = 1 * time.Hour
	TTL_SHOWS_LIST   = 5 * time.Minute
)

// ================== PRICING MODULE ==================

const (
	CACHE_KEY_PRICE_SHEET = CACHE_PREFIX + ":pricing:sheet"
)

// ================== SEATING MODULE ==================

// Availability is near-real-time; keep it short-lived
const (
	CACHE_KEY_SEATS_AVAILABLE = CACHE_PREFIX + ":seating:available:show:" // + show-id
)

// ================== HELPER FUNCTIONS ==================

func BuildSessionKey(sessionID string) string {
	return KEY_SESSION + sessionID
}

func BuildMovieDetailKey(movieID string) string {
	return CACHE_KEY_MOVIE_DETAIL + movieID
}

func BuildShowsByMovieKey(movieID string) string {
	return CACHE_KEY_SHOWS_BY_FILM + movieID
}

func BuildAvailableSeatsKey(showID string) string {
	return CACHE_KEY_SEATS_AVAILABLE + showID
}
