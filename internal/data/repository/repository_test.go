package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDB records the last statement and answers QueryRow with a canned row.
type fakeDB struct {
	sql  string
	args []any
	row  pgx.Row
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, errors.New("query not supported")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	return f.row
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.CommandTag{}, errors.New("exec not supported")
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("begin not supported")
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }

func (f *fakeDB) Close() {}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("scan: column count mismatch")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

func newReview() *entity.Review {
	now := time.Now()
	return &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:       uuid.New(),
		MovieID:      uuid.New(),
		Rating:       8,
		Concept:      9,
		Cinema:       7.5,
		Perform:      8,
	}
}

func TestReviewRepository_Upsert_Insert(t *testing.T) {
	review := newReview()
	db := &fakeDB{row: fakeRow{values: []any{review.ID, review.CreatedAt, true}}}
	repo := NewReviewRepository(db, zap.NewNop())

	inserted, err := repo.Upsert(context.Background(), review)

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Contains(t, db.sql, "ON CONFLICT ON CONSTRAINT reviews_user_movie_key DO UPDATE")
	assert.Contains(t, db.sql, "RETURNING id, created_at, (xmax = 0)")
	require.Len(t, db.args, 10)
	assert.Equal(t, review.UserID, db.args[1])
	assert.Equal(t, review.MovieID, db.args[2])
}

func TestReviewRepository_Upsert_UpdateKeepsStoredIdentity(t *testing.T) {
	storedID := uuid.New()
	storedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	review := newReview()
	db := &fakeDB{row: fakeRow{values: []any{storedID, storedAt, false}}}
	repo := NewReviewRepository(db, zap.NewNop())

	inserted, err := repo.Upsert(context.Background(), review)

	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, storedID, review.ID)
	assert.Equal(t, storedAt, review.CreatedAt)
}

func TestReviewRepository_Upsert_Error(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: errors.New("connection reset")}}
	repo := NewReviewRepository(db, zap.NewNop())

	_, err := repo.Upsert(context.Background(), newReview())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMovieRepository_RefreshRating_SingleStatement(t *testing.T) {
	movieID := uuid.New()
	db := &fakeDB{row: fakeRow{values: []any{7.25}}}
	repo := NewMovieRepository(db, zap.NewNop())

	rating, err := repo.RefreshRating(context.Background(), movieID)

	require.NoError(t, err)
	assert.Equal(t, 7.25, rating)
	assert.Contains(t, db.sql, "SET rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE movie_id = $1)")
	assert.Contains(t, db.sql, "RETURNING rating")
	assert.Equal(t, []any{movieID}, db.args)
}

func TestMovieRepository_RefreshRating_MissingMovie(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
	repo := NewMovieRepository(db, zap.NewNop())

	_, err := repo.RefreshRating(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
