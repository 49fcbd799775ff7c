package repository

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Upsert creates the review for (UserID, MovieID) or updates the existing
	// one in place. On return review.ID and review.CreatedAt hold the stored
	// values; inserted is false when an existing review was modified.
	Upsert(ctx context.Context, review *entity.Review) (inserted bool, err error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Upsert(ctx context.Context, review *entity.Review) (bool, error) {
	// xmax is zero only for a freshly inserted tuple
	query := `
		INSERT INTO reviews (id, user_id, movie_id, rating, concept, cinema, perform,
		                     comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT ON CONSTRAINT reviews_user_movie_key DO UPDATE
		SET rating = EXCLUDED.rating,
		    concept = EXCLUDED.concept,
		    cinema = EXCLUDED.cinema,
		    perform = EXCLUDED.perform,
		    comment = EXCLUDED.comment,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Concept,
		review.Cinema,
		review.Perform,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	).Scan(&review.ID, &review.CreatedAt, &inserted)

	if err != nil {
		r.log.Error("Failed to upsert review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return false, fmt.Errorf("upsert review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	return inserted, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.concept, r.cinema, r.perform,
		       r.comment, r.created_at, r.updated_at,
		       u.id, u.name, u.image
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id AND u.deleted_at IS NULL
		WHERE r.movie_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	reviews := make([]*entity.Review, 0)
	for rows.Next() {
		var (
			review      entity.Review
			authorID    *uuid.UUID
			authorName  *string
			authorImage *string
		)
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Concept,
			&review.Cinema,
			&review.Perform,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
			&authorID,
			&authorName,
			&authorImage,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		if authorID != nil && authorName != nil {
			review.Author = &entity.ReviewAuthor{ID: *authorID, Name: *authorName, Image: authorImage}
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// FindByUserID returns the user's reviews on live movies, best rated first.
func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.concept, r.cinema, r.perform,
		       r.comment, r.created_at, r.updated_at,
		       m.name, m.image
		FROM reviews r
		INNER JOIN movies m ON m.id = r.movie_id AND m.deleted_at IS NULL
		WHERE r.user_id = $1
		ORDER BY r.rating DESC, r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	reviews := make([]*entity.Review, 0)
	for rows.Next() {
		var (
			review entity.Review
			movie  entity.ReviewMovie
		)
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Concept,
			&review.Cinema,
			&review.Perform,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
			&movie.Name,
			&movie.Image,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		movie.ID = review.MovieID
		review.Movie = &movie
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
