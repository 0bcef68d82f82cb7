package catalog

import (
	"errors"
	"net/http"

	"cinebook/internal/shared/upstream"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListMovies handles GET /api/v1/movies
func (c *Controller) ListMovies(ctx *gin.Context) {
	movies, degraded := c.service.ListMovies(ctx.Request.Context())

	message := "Movies retrieved"
	if degraded {
		message = "Movie catalog unavailable, showing an empty list"
	}

	response.Success(ctx, http.StatusOK, message, gin.H{
		"movies":   movies,
		"degraded": degraded,
	})
}

// GetMovie handles GET /api/v1/movies/:movieId
func (c *Controller) GetMovie(ctx *gin.Context) {
	movie, err := c.service.GetMovie(ctx.Request.Context(), ctx.Param("movieId"))
	if err != nil {
		respondUpstreamError(ctx, "Failed to load movie", err)
		return
	}
	response.Success(ctx, http.StatusOK, "Movie retrieved", movie)
}

// ListShows handles GET /api/v1/shows/movie/:movieId
func (c *Controller) ListShows(ctx *gin.Context) {
	shows, degraded := c.service.ListShowsForMovie(ctx.Request.Context(), ctx.Param("movieId"))

	message := "Showtimes retrieved"
	if degraded {
		message = "Showtime service unavailable, showing an empty list"
	}

	response.Success(ctx, http.StatusOK, message, gin.H{
		"shows":    shows,
		"degraded": degraded,
	})
}

// respondUpstreamError maps collaborator failures onto our status codes:
// upstream 404s pass through, anything else reads as a bad gateway.
func respondUpstreamError(ctx *gin.Context, message string, err error) {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		response.Error(ctx, http.StatusNotFound, statusErr.Message, nil)
		return
	}
	response.Error(ctx, http.StatusBadGateway, message, err.Error())
}
