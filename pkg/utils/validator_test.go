package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scoreInput struct {
	MovieID string   `json:"movieID" validate:"required,uuid4"`
	Rating  *float64 `json:"rating" validate:"required,gte=0,lte=10"`
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	over := 11.0
	errs := ValidateStruct(scoreInput{MovieID: "nope", Rating: &over})

	assert.Equal(t, "Must be a valid UUID", errs["movieID"])
	assert.Equal(t, "Must be at most 10", errs["rating"])
}

func TestValidateStruct_ZeroScoreIsValid(t *testing.T) {
	zero := 0.0
	errs := ValidateStruct(scoreInput{MovieID: "0b7d7a4e-6a55-4b3e-9a3c-2f1f8f0f7a10", Rating: &zero})

	assert.Empty(t, errs)
}

func TestFormatValidationErrors_SortedByField(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"rating":  "Must be at most 10",
		"movieID": "This field is required",
	})

	assert.Equal(t, "movieID: This field is required; rating: Must be at most 10", got)
}
