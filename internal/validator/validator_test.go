package validator

import (
	"testing"

	"github.com/cockroachdb/errors"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `validate:"required,max=5"`
	Email string `validate:"omitempty,email"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name string
		req  sampleRequest
		hint string
	}{
		{"missing name", sampleRequest{}, "The name field is required."},
		{"name too long", sampleRequest{Name: "abcdefg"}, "The name field must not be greater than 5 characters."},
		{"bad email", sampleRequest{Name: "ok", Email: "nope"}, "The email field must be a valid email address."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
			assert.Equal(t, []string{tt.hint}, errors.GetAllHints(err))
		})
	}

	assert.NoError(t, ValidateRequest(sampleRequest{Name: "ok"}))
}
