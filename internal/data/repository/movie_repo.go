package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/apperror"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	// RefreshRating recomputes the stored rating as the average overall
	// rating of the movie's reviews and returns it.
	RefreshRating(ctx context.Context, movieID uuid.UUID) (float64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// movieSelect yields one row per movie with its genre names and review count.
const movieSelect = `
	SELECT m.id, m.name, m.image, m.rating, m.created_at, m.updated_at,
	       COALESCE(array_agg(g.name ORDER BY g.name) FILTER (WHERE g.name IS NOT NULL), '{}')::text[] AS genres,
	       (SELECT COUNT(*) FROM reviews r WHERE r.movie_id = m.id) AS num_reviews
	FROM movies m
	LEFT JOIN movie_genres mg ON mg.movie_id = m.id
	LEFT JOIN genres g ON g.id = mg.genre_id
	WHERE m.deleted_at IS NULL
`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Name,
		&movie.Image,
		&movie.Rating,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&movie.Genres,
		&movie.NumReviews,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := movieSelect + ` AND m.id = $1 GROUP BY m.id`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie %s: %w", id.String(), err)
	}

	return movie, nil
}

// FindAll returns every live movie ordered by creation time.
func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := movieSelect + ` GROUP BY m.id ORDER BY m.created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) RefreshRating(ctx context.Context, movieID uuid.UUID) (float64, error) {
	// one statement, so a concurrent upsert cannot leave a stale average behind
	query := `
		UPDATE movies
		SET rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE movie_id = $1),
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING rating
	`

	var rating float64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("movie %s %w", movieID.String(), apperror.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to refresh movie rating",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return 0, fmt.Errorf("refresh rating for movie %s: %w", movieID.String(), err)
	}

	return rating, nil
}
