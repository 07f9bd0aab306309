package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	v := New()

	valid := []string{"a@b.com", "first.last@sub.example.org", "x+y@d.io"}
	for _, s := range valid {
		assert.True(t, v.IsEmail(s), s)
	}

	invalid := []string{"", "plain", "a@b", "a b@c.com", "@b.com", "a@.", "a@@b.com"}
	for _, s := range invalid {
		assert.False(t, v.IsEmail(s), s)
	}
}

func TestIsUserType(t *testing.T) {
	v := New()

	assert.True(t, v.IsUserType("brand"))
	assert.True(t, v.IsUserType("influencer"))
	assert.False(t, v.IsUserType("admin"))
	assert.False(t, v.IsUserType(""))
	assert.False(t, v.IsUserType("Brand"))
}

func TestValidate_StructErrors(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,basic-email"`
		Kind  string `form:"user_type" validate:"user-type"`
	}

	v := New()
	err := v.Validate(&payload{Email: "nope", Kind: "admin"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "Must be one of: brand, influencer", vErr.Errors["user_type"])
	assert.True(t, vErr.HasTag("basic-email"))
	assert.True(t, vErr.HasTag("user-type"))
	assert.False(t, vErr.HasTag("required"))

	assert.NoError(t, v.Validate(&payload{Email: "a@b.com", Kind: "brand"}))
}

func TestValidate_MinCountsRunes(t *testing.T) {
	type payload struct {
		Message string `form:"message" validate:"required,min=2"`
	}

	v := New()
	assert.NoError(t, v.Validate(&payload{Message: "привет"}))

	err := v.Validate(&payload{Message: "я"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "min", vErr.Tags["message"])
	assert.Equal(t, "Must be at least 2 items/characters long", vErr.Errors["message"])

	err = v.Validate(&payload{})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "required", vErr.Tags["message"])
	assert.Equal(t, "This field is required", vErr.Errors["message"])
}
