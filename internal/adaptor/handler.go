package adaptor

import (
	"errors"
	"net/http"

	"movie-review/internal/usecase"
	"movie-review/pkg/apperror"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Movie  *MovieHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, service.User, log),
	}
}

// errorMessages are the client-facing messages per status; wrapped error
// text stays in the logs.
var errorMessages = map[int]string{
	http.StatusUnauthorized: "Unauthorized",
	http.StatusForbidden:    "You are not allowed to perform this action",
	http.StatusNotFound:     "Resource not found",
	http.StatusConflict:     "Resource already exists",
}

// respondError maps a service error to the response envelope. Unknown
// errors are logged and answered with a generic message.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	code := apperror.StatusCode(err)
	if code == http.StatusInternalServerError {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed", zap.Error(err), zap.Int("status", code))
	if errors.Is(err, apperror.ErrValidation) {
		utils.ResponseBadRequest(w, "Validation failed", apperror.FieldErrors(err))
		return
	}
	utils.ResponseError(w, code, errorMessages[code], nil)
}
