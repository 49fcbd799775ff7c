package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type AuthResponse struct {
	UserID     string    `json:"user_id"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsAdmin    bool      `json:"is_admin"`
	IsReviewer bool      `json:"is_reviewer"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Image      *string   `json:"image,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	IsReviewer bool      `json:"is_reviewer"`
	IsBanned   bool      `json:"is_banned"`
	CreatedAt  time.Time `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Image:      user.Image,
		IsAdmin:    user.IsAdmin,
		IsReviewer: user.IsReviewer,
		IsBanned:   user.IsBanned,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:     user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		IsAdmin:    user.IsAdmin,
		IsReviewer: user.IsReviewer,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
