package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title" validate:"required,min=3"`
	Kind  string `json:"kind" validate:"omitempty,oneof=VIDEO TEXT"`
}

func TestErrorMapUsesJSONFieldNames(t *testing.T) {
	err := Validate.Struct(sampleRequest{Email: "not-an-email", Title: "okay", Kind: "AUDIO"})
	require.Error(t, err)

	out := ErrorMap(err)
	assert.Equal(t, "Invalid email address!", out["email"])
	assert.Equal(t, "kind must be one of: VIDEO, TEXT!", out["kind"])
	assert.NotContains(t, out, "Email")
}

func TestErrorMapRequiredAndMin(t *testing.T) {
	err := Validate.Struct(sampleRequest{Title: "ab"})
	require.Error(t, err)

	out := ErrorMap(err)
	assert.Equal(t, "email is required!", out["email"])
	assert.Equal(t, "title must be at least 3 characters long!", out["title"])
}

func TestErrorMapNonValidationError(t *testing.T) {
	out := ErrorMap(errors.New("boom"))
	assert.Equal(t, "Invalid request body!", out["body"])
}
