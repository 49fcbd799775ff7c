package response

import (
	"encoding/json"
	"testing"

	"movie-review/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewToResponse_DeletedAuthorIsNull(t *testing.T) {
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       uuid.New(),
		MovieID:      uuid.New(),
		Rating:       7,
	}

	data, err := json.Marshal(ReviewToResponse(review))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	v, ok := body["author"]
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.NotContains(t, body, "movie")
}

func TestNewUserReviewsResponse(t *testing.T) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Name: "ana"}
	reviews := []*entity.Review{{Rating: 10}, {Rating: 5}, {Rating: 6}}

	page := NewUserReviewsResponse(user, reviews)

	assert.Equal(t, 3, page.ReviewCount)
	assert.InDelta(t, 7.0, page.AverageRating, 1e-9)
	assert.Len(t, page.Reviews, 3)
	assert.Equal(t, "ana", page.User.Name)
}
