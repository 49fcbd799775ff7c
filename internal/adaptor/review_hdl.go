package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	users   usecase.UserService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, users usecase.UserService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		users:   users,
		log:     log.With(zap.String("handler", "review")),
	}
}

// SubmitReview handles POST /api/review (protected)
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.SubmitReview(r.Context(), principal, &req)
	if err != nil {
		respondError(w, h.log, err, "submit review")
		return
	}

	message := "Review added"
	if result.Type == response.SubmitTypeModification {
		message = "Review updated"
	}
	utils.ResponseSuccess(w, message, result)
}

// GetUserReviews handles GET /api/user/reviews (protected)
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviews, err := h.users.GetUserPage(r.Context(), userID.String())
	if err != nil {
		respondError(w, h.log, err, "get user reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}
