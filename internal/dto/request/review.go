package request

// SubmitReviewRequest is the body of a review submission. Scores are
// pointers so that a missing score fails "required" while 0 stays valid.
type SubmitReviewRequest struct {
	MovieID string   `json:"movieID" validate:"required,uuid"`
	Comment *string  `json:"comment,omitempty"`
	Rating  *float64 `json:"rating" validate:"required,gte=0,lte=10"`
	Concept *float64 `json:"concept" validate:"required,gte=0,lte=10"`
	Cinema  *float64 `json:"cinema" validate:"required,gte=0,lte=10"`
	Perform *float64 `json:"perform" validate:"required,gte=0,lte=10"`
}
