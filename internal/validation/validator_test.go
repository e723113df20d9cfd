package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Day     string `form:"day" validate:"required,datetime=2006-01-02"`
	Keyword string `json:"keyword" validate:"required,max=5"`
	Note    string `validate:"omitempty,min=2"`
}

func TestGetValidatorSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidateStructValid(t *testing.T) {
	assert.Nil(t, ValidateStruct(&sampleForm{Day: "2024-02-29", Keyword: "abc"}))
}

func TestValidateStructFieldNames(t *testing.T) {
	err := ValidateStruct(&sampleForm{Day: "29.02.2024", Keyword: "", Note: "x"})
	require.NotNil(t, err)

	fields := err.Fields()
	assert.Equal(t, "day must be a date in YYYY-MM-DD format", fields["day"])
	assert.Equal(t, "keyword is required", fields["keyword"])
	assert.Equal(t, "Note must be at least 2 characters", fields["Note"])
	assert.Len(t, err.Errors(), 3)
	assert.Contains(t, err.Error(), "keyword is required")
}

func TestValidateStructMaxCountsRunes(t *testing.T) {
	assert.Nil(t, ValidateStruct(&sampleForm{Day: "2024-01-01", Keyword: "тест!"}))

	err := ValidateStruct(&sampleForm{Day: "2024-01-01", Keyword: strings.Repeat("я", 6)})
	require.NotNil(t, err)
	assert.Equal(t, "keyword must be at most 5 characters", err.Fields()["keyword"])
}

func TestNewRequestValidationError(t *testing.T) {
	err := NewRequestValidationError("body", "invalid payload")
	assert.Equal(t, map[string]string{"body": "invalid payload"}, err.Fields())
	assert.Equal(t, "invalid payload", err.Error())
}
