package usecase

import (
	"context"
	"fmt"

	"movie-review/internal/catalog"
	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/apperror"
	"movie-review/pkg/cache"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	// GetMovies returns the catalog filtered and sorted by q.
	GetMovies(ctx context.Context, q *request.MovieListQuery) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
}

type movieService struct {
	repo   *repository.Repository
	cache  Cache
	config *utils.Config
	log    *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	cache Cache,
	config *utils.Config,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:   repo,
		cache:  cache,
		config: config,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, q *request.MovieListQuery) ([]response.MovieResponse, error) {
	movies, err := s.allMovies(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.Apply(movies, catalog.Query{
		Search: q.Search,
		Genres: q.Genres,
		Sort:   catalog.ParseSortKey(q.Sort),
	})

	s.log.Debug("Movies listed",
		zap.Int("total", len(movies)),
		zap.Int("matched", len(filtered)),
		zap.String("search", q.Search),
		zap.Strings("genres", q.Genres),
		zap.String("sort", q.Sort),
	)

	return response.MoviesToResponse(filtered), nil
}

// allMovies reads the unfiltered catalog through the cache.
func (s *movieService) allMovies(ctx context.Context) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	if cache.GetJSON(ctx, s.cache, moviesCacheKey, &movies) {
		return movies, nil
	}

	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	storeJSON(ctx, s.cache, moviesCacheKey, movies, cacheTTL(s.config.Redis.TTLSeconds))
	return movies, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("movie %w", apperror.ErrNotFound)
	}

	key := movieCacheKey(id)
	var detail entity.MovieDetail
	if cache.GetJSON(ctx, s.cache, key, &detail) {
		resp := response.MovieToDetailResponse(&detail)
		return &resp, nil
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %w", apperror.ErrNotFound)
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get reviews for movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	detail = entity.MovieDetail{Movie: *movie, Reviews: reviews}
	storeJSON(ctx, s.cache, key, detail, cacheTTL(s.config.Redis.TTLSeconds))

	resp := response.MovieToDetailResponse(&detail)
	return &resp, nil
}

func (s *movieService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindInUse(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	resp := make([]response.GenreResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, response.GenreToResponse(g))
	}
	return resp, nil
}
