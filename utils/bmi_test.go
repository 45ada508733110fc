package utils_test

import (
	"testing"

	"github.com/daves-impact/MetaCal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := utils.CalculateBMI(170, 70)
	require.NoError(t, err)
	assert.Equal(t, 24.2, bmi)
}

func TestCalculateBMIRejectsNonPositive(t *testing.T) {
	_, err := utils.CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = utils.CalculateBMI(170, -5)
	assert.Error(t, err)
}

func TestCalculateBMIRejectsImplausible(t *testing.T) {
	_, err := utils.CalculateBMI(30, 70)
	assert.Error(t, err)

	_, err = utils.CalculateBMI(170, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{15.9, "Very severely underweight"},
		{16.5, "Severely underweight"},
		{18.0, "Underweight"},
		{22.0, "Normal"},
		{27.5, "Overweight"},
		{32.0, "Obese Class I"},
		{37.0, "Obese Class II"},
		{42.0, "Obese Class III"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, utils.BMICategory(c.bmi), "bmi %.1f", c.bmi)
	}
}
