package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		tok := GenerateRandomToken(6)
		require.Len(t, tok, 6)
		for _, r := range tok {
			assert.True(t, strings.ContainsRune(tokenCharset, r))
		}
		seen[tok] = true
	}
	// 20 draws from a 62^6 space colliding down to one value would mean
	// the generator is broken
	assert.Greater(t, len(seen), 1)
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(172, 70)
	require.NoError(t, err)
	assert.InDelta(t, 23.66, bmi, 0.01)

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)
	_, err = CalculateBMI(172, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Overweight", BMICategory(25.0))
	assert.Equal(t, "Obesity class I", BMICategory(30.0))
	assert.Equal(t, "Obesity class III", BMICategory(41.0))
}
