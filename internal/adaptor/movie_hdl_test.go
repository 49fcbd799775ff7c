package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/apperror"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) GetMovies(ctx context.Context, q *request.MovieListQuery) ([]response.MovieResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.MovieResponse), args.Error(1)
}

func (m *mockMovieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieDetailResponse), args.Error(1)
}

func (m *mockMovieService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.GenreResponse), args.Error(1)
}

func newMovieRouter(svc *mockMovieService) http.Handler {
	h := NewMovieHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/movies", h.GetMovies)
	r.Get("/api/movies/{id}", h.GetMovieByID)
	r.Get("/api/genres", h.GetGenres)
	return r
}

func TestMovieHandler_GetMovies_ParsesQuery(t *testing.T) {
	svc := &mockMovieService{}
	want := &request.MovieListQuery{Search: "du", Genres: []string{"sci-fi", "comedy"}, Sort: "best"}
	svc.On("GetMovies", mock.Anything, want).Return([]response.MovieResponse{{Name: "Dune"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies?search=du&genres=sci-fi,%20comedy&sort=best", nil)
	newMovieRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Dune", data[0].(map[string]any)["name"])
	svc.AssertExpectations(t)
}

func TestMovieHandler_GetMovies_NoFilters(t *testing.T) {
	svc := &mockMovieService{}
	svc.On("GetMovies", mock.Anything, &request.MovieListQuery{}).Return([]response.MovieResponse{}, nil)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestMovieHandler_GetMovieByID_NotFound(t *testing.T) {
	svc := &mockMovieService{}
	id := uuid.New().String()
	svc.On("GetMovieByID", mock.Anything, id).Return(nil, apperror.ErrNotFound)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/"+id, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMovieHandler_GetGenres(t *testing.T) {
	svc := &mockMovieService{}
	svc.On("GetGenres", mock.Anything).Return([]response.GenreResponse{{ID: "1", Name: "comedy"}}, nil)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/genres", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].([]any)
	assert.Equal(t, "comedy", data[0].(map[string]any)["name"])
}
