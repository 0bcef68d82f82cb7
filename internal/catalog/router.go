package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures movie and showtime browsing routes
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	movies := rg.Group("/movies")
	{
		movies.GET("", controller.ListMovies)          // GET /api/v1/movies
		movies.GET("/:movieId", controller.GetMovie)   // GET /api/v1/movies/:movieId
	}

	shows := rg.Group("/shows")
	{
		shows.GET("/movie/:movieId", controller.ListShows) // GET /api/v1/shows/movie/:movieId
	}
}
