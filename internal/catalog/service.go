package catalog

import (
	"context"
	"fmt"

	"cinebook/internal/shared/constants"
	"cinebook/internal/shared/upstream"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"
)

// Service interface defines the contract for browsing the film catalog
type Service interface {
	// ListMovies returns the catalog; degraded is true when the upstream was
	// unreachable and an empty list is in effect
	ListMovies(ctx context.Context) ([]Movie, bool)
	GetMovie(ctx context.Context, movieID string) (*Movie, error)
	ListShowsForMovie(ctx context.Context, movieID string) ([]ShowView, bool)
}

type service struct {
	upstream *upstream.Client
	cache    cache.Service
	logger   *logger.Logger
}

// NewService creates the catalog service
func NewService(client *upstream.Client, cacheService cache.Service) Service {
	return &service{
		upstream: client,
		cache:    cacheService,
		logger:   logger.GetDefault(),
	}
}

func (s *service) ListMovies(ctx context.Context) ([]Movie, bool) {
	var movies []Movie
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_MOVIES_LIST, constants.TTL_MOVIES_LIST, func() (interface{}, error) {
		var fetched []Movie
		if err := s.upstream.GetJSON(ctx, "/movies", &fetched); err != nil {
			return nil, err
		}
		for _, movie := range fetched {
			if err := movie.validate(); err != nil {
				return nil, fmt.Errorf("movies list: %w", err)
			}
		}
		return fetched, nil
	}, &movies)
	if err != nil {
		// Browsing never blocks on the collaborator
		s.logger.LogUpstreamDegraded(ctx, "/movies", err)
		return []Movie{}, true
	}
	return movies, false
}

func (s *service) GetMovie(ctx context.Context, movieID string) (*Movie, error) {
	var movie Movie
	key := constants.BuildMovieDetailKey(movieID)
	err := s.cache.GetOrSet(ctx, key, constants.TTL_MOVIE_DETAIL, func() (interface{}, error) {
		var fetched Movie
		if err := s.upstream.GetJSON(ctx, "/movies/"+movieID, &fetched); err != nil {
			return nil, err
		}
		if err := fetched.validate(); err != nil {
			return nil, fmt.Errorf("movie %s: %w", movieID, err)
		}
		return fetched, nil
	}, &movie)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *service) ListShowsForMovie(ctx context.Context, movieID string) ([]ShowView, bool) {
	var shows []Show
	key := constants.BuildShowsByMovieKey(movieID)
	err := s.cache.GetOrSet(ctx, key, constants.TTL_SHOWS_LIST, func() (interface{}, error) {
		var fetched []Show
		if err := s.upstream.GetJSON(ctx, "/shows/movie/"+movieID, &fetched); err != nil {
			return nil, err
		}
		for _, show := range fetched {
			if err := show.validate(); err != nil {
				return nil, fmt.Errorf("shows for movie %s: %w", movieID, err)
			}
		}
		return fetched, nil
	}, &shows)
	if err != nil {
		s.logger.LogUpstreamDegraded(ctx, "/shows/movie/"+movieID, err)
		return []ShowView{}, true
	}

	views := make([]ShowView, 0, len(shows))
	for _, show := range shows {
		views = append(views, show.ToView())
	}
	return views, false
}
