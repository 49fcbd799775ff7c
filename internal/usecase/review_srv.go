package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/apperror"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCommentMaxLength bounds a review comment, counted in characters.
const DefaultCommentMaxLength = 1250

type ReviewService interface {
	// SubmitReview creates the caller's review of a movie, or replaces the
	// existing one. The result type is "addition" or "modification".
	SubmitReview(ctx context.Context, principal utils.Principal, req *request.SubmitReviewRequest) (*response.SubmitReviewResponse, error)
}

type reviewService struct {
	repo             *repository.Repository
	cache            Cache
	commentMaxLength int
	log              *zap.Logger
}

func NewReviewService(
	repo *repository.Repository,
	cache Cache,
	config *utils.Config,
	log *zap.Logger,
) ReviewService {
	maxLen := config.Review.CommentMaxLength
	if maxLen <= 0 {
		maxLen = DefaultCommentMaxLength
	}

	return &reviewService{
		repo:             repo,
		cache:            cache,
		commentMaxLength: maxLen,
		log:              log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(
	ctx context.Context,
	principal utils.Principal,
	req *request.SubmitReviewRequest,
) (*response.SubmitReviewResponse, error) {
	// 1. Who is acting
	if principal.UserID == uuid.Nil {
		return nil, fmt.Errorf("no session: %w", apperror.ErrUnauthorized)
	}
	if principal.IsBanned {
		s.log.Warn("Banned user tried to review", zap.String("user_id", principal.UserID.String()))
		return nil, fmt.Errorf("user is banned: %w", apperror.ErrUnauthorized)
	}
	if !principal.CanReview() {
		s.log.Warn("User without reviewer role tried to review", zap.String("user_id", principal.UserID.String()))
		return nil, fmt.Errorf("reviewer role required: %w", apperror.ErrForbidden)
	}

	// 2. Payload
	errs := utils.ValidateStruct(req)
	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > s.commentMaxLength {
		if errs == nil {
			errs = make(map[string]string)
		}
		errs["comment"] = fmt.Sprintf("Maximum length is %d", s.commentMaxLength)
	}
	if len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, apperror.NewValidation(errs)
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, apperror.NewValidation(map[string]string{"movieID": "Must be a valid UUID"})
	}

	// 3. Movie
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %w", apperror.ErrNotFound)
	}

	// 4. Upsert keyed on (user, movie)
	now := time.Now()
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  principal.UserID,
		MovieID: movieID,
		Rating:  *req.Rating,
		Concept: *req.Concept,
		Cinema:  *req.Cinema,
		Perform: *req.Perform,
		Comment: req.Comment,
	}

	inserted, err := s.repo.Review.Upsert(ctx, review)
	if err != nil {
		s.log.Error("Failed to save review",
			zap.Error(err),
			zap.String("user_id", principal.UserID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("save review: %w", err)
	}

	// 5. Denormalised movie rating
	s.refreshMovieRating(ctx, movieID)

	// 6. Stale read views
	if err := s.cache.Delete(ctx, moviesCacheKey, movieCacheKey(movieID)); err != nil {
		s.log.Warn("Failed to invalidate movie cache", zap.Error(err), zap.String("movie_id", movieID.String()))
	}

	submitType := response.SubmitTypeModification
	if inserted {
		submitType = response.SubmitTypeAddition
	}

	s.log.Info("Review submitted",
		zap.String("type", submitType),
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", principal.UserID.String()),
		zap.String("movie_id", movieID.String()),
	)

	return &response.SubmitReviewResponse{
		Type:   submitType,
		Review: response.ReviewToResponse(review),
	}, nil
}

func (s *reviewService) refreshMovieRating(ctx context.Context, movieID uuid.UUID) {
	if _, err := s.repo.Movie.RefreshRating(ctx, movieID); err != nil {
		s.log.Warn("Failed to refresh movie rating", zap.Error(err), zap.String("movie_id", movieID.String()))
	}
}
