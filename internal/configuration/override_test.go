package configuration

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTargetOverride_NoArgs(t *testing.T) {
	// WHEN
	result, err := ParseTargetOverride(nil, 60)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 60.0, result)
}

func TestParseTargetOverride_Valid(t *testing.T) {
	// WHEN
	result, err := ParseTargetOverride([]string{"70.5"}, 60)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 70.5, result)
}

func TestParseTargetOverride_UsesLastArgument(t *testing.T) {
	// WHEN
	result, err := ParseTargetOverride([]string{"50", "65"}, 60)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 65.0, result)
}

func TestParseTargetOverride_NotANumber(t *testing.T) {
	// WHEN
	result, err := ParseTargetOverride([]string{"hot"}, 60)

	// THEN
	assert.Equal(t, 60.0, result)
	var configErr *InvalidConfigurationError
	assert.True(t, errors.As(err, &configErr))
	assert.Equal(t, "hot", configErr.Value)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParseTargetOverride_NotFinite(t *testing.T) {
	for _, value := range []string{"NaN", "inf", "-Inf"} {
		t.Run(value, func(t *testing.T) {
			// WHEN
			result, err := ParseTargetOverride([]string{value}, 60)

			// THEN
			assert.Equal(t, 60.0, result)
			assert.ErrorIs(t, err, ErrNotFinite)
			assert.EqualError(t, err, "invalid configuration value '"+value+"': value is not a finite number")
		})
	}
}
