package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSession_Active(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession(uuid.New(), time.Hour, now)

	assert.NotEqual(t, uuid.Nil, s.Token)
	assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)
	assert.True(t, s.Active(now))
	assert.False(t, s.Active(now.Add(time.Hour)))

	revoked := now
	s.RevokedAt = &revoked
	assert.False(t, s.Active(now))
}
