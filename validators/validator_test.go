package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"place_name" validate:"required,max=5"`
	Kind string `json:"place_type" validate:"required,oneof=place food"`
}

func TestDescribe(t *testing.T) {
	v := NewValidator()

	err := v.Validate(sample{Kind: "place"})
	require.Error(t, err)
	assert.Equal(t, "place_name is required", Describe(err))

	err = v.Validate(sample{Name: "toolong", Kind: "place"})
	require.Error(t, err)
	assert.Equal(t, "place_name must be at most 5 characters", Describe(err))

	err = v.Validate(sample{Name: "ok", Kind: "hotel"})
	require.Error(t, err)
	assert.Equal(t, "place_type must be one of: place, food", Describe(err))

	assert.NoError(t, v.Validate(sample{Name: "ok", Kind: "food"}))
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
