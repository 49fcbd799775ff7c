package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository/repomock"
	"movie-review/internal/dto/request"
	"movie-review/pkg/apperror"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovieFixture(t *testing.T) (MovieService, *repomock.Mocks, *memCache) {
	t.Helper()
	repo, mocks := repomock.New()
	cache := newMemCache()
	config := &utils.Config{Redis: utils.RedisConfig{TTLSeconds: 30}}
	return NewMovieService(repo, cache, config, zap.NewNop()), mocks, cache
}

func catalogFixture() []*entity.Movie {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*entity.Movie{
		{Base: entity.Base{ID: uuid.New(), CreatedAt: t1}, Name: "Dune", Rating: 8, Genres: []string{"sci-fi"}},
		{Base: entity.Base{ID: uuid.New(), CreatedAt: t1.Add(time.Hour)}, Name: "Clue", Rating: 6, Genres: []string{"comedy"}},
	}
}

func TestMovieService_GetMovies_CacheMiss(t *testing.T) {
	svc, mocks, cache := newMovieFixture(t)
	mocks.Movie.On("FindAll", mock.Anything).Return(catalogFixture(), nil).Once()

	got, err := svc.GetMovies(context.Background(), &request.MovieListQuery{Sort: "recent"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Clue", got[0].Name)
	assert.Equal(t, "Dune", got[1].Name)
	assert.True(t, cache.has(moviesCacheKey))
	mocks.AssertExpectations(t)
}

func TestMovieService_GetMovies_CacheHit(t *testing.T) {
	svc, mocks, cache := newMovieFixture(t)
	data, err := json.Marshal(catalogFixture())
	require.NoError(t, err)
	cache.data[moviesCacheKey] = data

	got, err := svc.GetMovies(context.Background(), &request.MovieListQuery{Search: "du"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Name)
	assert.Equal(t, []string{"sci-fi"}, got[0].Genres)
	mocks.Movie.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestMovieService_GetMovies_Filters(t *testing.T) {
	tests := []struct {
		name  string
		query request.MovieListQuery
		want  []string
	}{
		{"empty query defaults to recent", request.MovieListQuery{}, []string{"Clue", "Dune"}},
		{"old", request.MovieListQuery{Sort: "old"}, []string{"Dune", "Clue"}},
		{"genre", request.MovieListQuery{Genres: []string{"comedy"}}, []string{"Clue"}},
		{"genre or", request.MovieListQuery{Genres: []string{"comedy", "sci-fi"}, Sort: "best"}, []string{"Dune", "Clue"}},
		{"worst", request.MovieListQuery{Sort: "worst"}, []string{"Clue", "Dune"}},
		{"no match", request.MovieListQuery{Search: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks, _ := newMovieFixture(t)
			mocks.Movie.On("FindAll", mock.Anything).Return(catalogFixture(), nil)

			got, err := svc.GetMovies(context.Background(), &tt.query)

			require.NoError(t, err)
			gotNames := make([]string, 0, len(got))
			for _, m := range got {
				gotNames = append(gotNames, m.Name)
			}
			assert.Equal(t, tt.want, gotNames)
		})
	}
}

func TestMovieService_GetMovies_RepositoryError(t *testing.T) {
	svc, mocks, cache := newMovieFixture(t)
	mocks.Movie.On("FindAll", mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.GetMovies(context.Background(), &request.MovieListQuery{})

	require.Error(t, err)
	assert.Equal(t, 500, apperror.StatusCode(err))
	assert.False(t, cache.has(moviesCacheKey))
}

func TestMovieService_GetMovieByID(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := newMovieFixture(t)

		_, err := svc.GetMovieByID(context.Background(), "nope")

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("unknown movie", func(t *testing.T) {
		svc, mocks, _ := newMovieFixture(t)
		id := uuid.New()
		mocks.Movie.On("FindByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.GetMovieByID(context.Background(), id.String())

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("with reviews and a deleted author", func(t *testing.T) {
		svc, mocks, cache := newMovieFixture(t)
		movie := catalogFixture()[0]
		author := &entity.ReviewAuthor{ID: uuid.New(), Name: "ana"}
		reviews := []*entity.Review{
			{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, MovieID: movie.ID, Rating: 9, Author: author},
			{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, MovieID: movie.ID, Rating: 7},
		}
		mocks.Movie.On("FindByID", mock.Anything, movie.ID).Return(movie, nil).Once()
		mocks.Review.On("FindByMovieID", mock.Anything, movie.ID).Return(reviews, nil).Once()

		got, err := svc.GetMovieByID(context.Background(), movie.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "Dune", got.Name)
		require.Len(t, got.Reviews, 2)
		require.NotNil(t, got.Reviews[0].Author)
		assert.Equal(t, "ana", got.Reviews[0].Author.Name)
		assert.Nil(t, got.Reviews[1].Author)
		assert.True(t, cache.has(movieCacheKey(movie.ID)))

		// second read is served from the cache
		again, err := svc.GetMovieByID(context.Background(), movie.ID.String())
		require.NoError(t, err)
		assert.Equal(t, got.ID, again.ID)
		assert.Len(t, again.Reviews, 2)
		mocks.AssertExpectations(t)
	})
}

func TestMovieService_GetGenres(t *testing.T) {
	svc, mocks, _ := newMovieFixture(t)
	mocks.Genre.On("FindInUse", mock.Anything).Return([]*entity.Genre{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "comedy"},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "sci-fi"},
	}, nil)

	got, err := svc.GetGenres(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "comedy", got[0].Name)
	assert.Equal(t, "sci-fi", got[1].Name)
}
