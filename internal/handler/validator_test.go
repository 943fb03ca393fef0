package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValidator_CustomTags(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(SpinRequest{UserID: "u", Mode: "5x5"}))
	assert.NoError(t, v.ValidateStruct(SpinRequest{UserID: "u", Mode: "3x3"}))
	assert.Error(t, v.ValidateStruct(SpinRequest{UserID: "u", Mode: "6x6"}))

	assert.NoError(t, v.ValidateStruct(RedeemRequest{Tier: "s"}))
	assert.Error(t, v.ValidateStruct(RedeemRequest{Tier: "D"}))
	assert.Error(t, v.ValidateStruct(RedeemRequest{Tier: "A", Required: -1}))
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	fields := FormatValidationError(errors.New("boom"))
	assert.Equal(t, "Invalid request format", fields["error"])

	err := GetValidator().ValidateStruct(SpinRequest{UserID: "bad\nid", Mode: "3x3", UserSpinCount: -2})
	require.Error(t, err)
	fields = FormatValidationError(err)
	assert.Equal(t, "Contains invalid characters", fields["user_id"])
	assert.Equal(t, "Must be at least 0", fields["user_spin_count"])
}

func TestFormatValidationError_RangeMessages(t *testing.T) {
	err := NewValidator().ValidateStruct(RedeemRequest{Tier: "B", Required: 2000000})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"required": "Must be at most 1000000"}, FormatValidationError(err))

	err = NewValidator().ValidateStruct(RedeemRequest{})
	require.Error(t, err)
	assert.Equal(t, "This field is required", FormatValidationError(err)["tier"])
}
