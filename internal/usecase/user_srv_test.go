package usecase

import (
	"context"
	"testing"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository/repomock"
	"movie-review/internal/dto/request"
	"movie-review/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_GetUserPage(t *testing.T) {
	repo, mocks := repomock.New()
	svc := NewUserService(repo, zap.NewNop())

	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Name: "ana", Email: "ana@example.com"}
	reviews := []*entity.Review{
		{Rating: 9, Movie: &entity.ReviewMovie{ID: uuid.New(), Name: "Dune"}},
		{Rating: 6, Movie: &entity.ReviewMovie{ID: uuid.New(), Name: "Clue"}},
	}
	mocks.User.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mocks.Review.On("FindByUserID", mock.Anything, user.ID).Return(reviews, nil)

	page, err := svc.GetUserPage(context.Background(), user.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "ana", page.User.Name)
	assert.Equal(t, 2, page.ReviewCount)
	assert.InDelta(t, 7.5, page.AverageRating, 1e-9)
	require.Len(t, page.Reviews, 2)
	assert.Equal(t, "Dune", page.Reviews[0].Movie.Name)
	mocks.AssertExpectations(t)
}

func TestUserService_GetUserPage_NoReviews(t *testing.T) {
	repo, mocks := repomock.New()
	svc := NewUserService(repo, zap.NewNop())

	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Name: "ben"}
	mocks.User.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mocks.Review.On("FindByUserID", mock.Anything, user.ID).Return([]*entity.Review{}, nil)

	page, err := svc.GetUserPage(context.Background(), user.ID.String())

	require.NoError(t, err)
	assert.Zero(t, page.ReviewCount)
	assert.Zero(t, page.AverageRating)
	assert.NotNil(t, page.Reviews)
}

func TestUserService_GetUserPage_NotFound(t *testing.T) {
	repo, mocks := repomock.New()
	svc := NewUserService(repo, zap.NewNop())

	_, err := svc.GetUserPage(context.Background(), "bogus")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	id := uuid.New()
	mocks.User.On("FindByID", mock.Anything, id).Return(nil, nil)
	_, err = svc.GetUserPage(context.Background(), id.String())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserService_GetAllUsers_Pagination(t *testing.T) {
	repo, mocks := repomock.New()
	svc := NewUserService(repo, zap.NewNop())

	users := []*entity.User{{Base: entity.Base{ID: uuid.New()}, Name: "ana"}}
	mocks.User.On("FindAll", mock.Anything, 5, 5).Return(users, nil)
	mocks.User.On("CountAll", mock.Anything).Return(int64(6), nil)

	got, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 5})

	require.NoError(t, err)
	assert.Len(t, got.Data, 1)
	assert.Equal(t, 2, got.Pagination.Page)
	assert.Equal(t, 2, got.Pagination.TotalPages)
	assert.Equal(t, int64(6), got.Pagination.Total)
	mocks.AssertExpectations(t)
}
