package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 70kg, 172cm, 36-year-old male: 700 + 1075 - 180 + 5 = 1600 kcal BMR.
var bmr1600 = PhysicalProfile{WeightKg: 70, HeightCm: 172, Age: 36, Sex: SexMale}

func TestComputeBMR(t *testing.T) {
	bmr, err := ComputeBMR(bmr1600)
	require.NoError(t, err)
	assert.InDelta(t, 1600, bmr, 1e-9)

	female := bmr1600
	female.Sex = SexFemale
	bmr, err = ComputeBMR(female)
	require.NoError(t, err)
	assert.InDelta(t, 1434, bmr, 1e-9) // -161 instead of +5
}

func TestComputeBMR_RejectsImplausibleInput(t *testing.T) {
	cases := []PhysicalProfile{
		{WeightKg: 0, HeightCm: 172, Age: 36, Sex: SexMale},
		{WeightKg: 70, HeightCm: -10, Age: 36, Sex: SexMale},
		{WeightKg: 70, HeightCm: 172, Age: 0, Sex: SexMale},
		{WeightKg: 500, HeightCm: 172, Age: 36, Sex: SexMale},
		{WeightKg: 70, HeightCm: 300, Age: 36, Sex: SexMale},
		{WeightKg: 70, HeightCm: 172, Age: 36, Sex: "other"},
	}
	for _, p := range cases {
		_, err := ComputeBMR(p)
		assert.Error(t, err)
	}
}

func TestComputeNutritionGoals_MaintainExample(t *testing.T) {
	// BMR 1600 x 1.55 = 2480 TDEE; maintain keeps calories and splits 25/45/30.
	got, err := ComputeNutritionGoals(bmr1600, ActivityModerate, GoalMaintain)
	require.NoError(t, err)

	assert.InDelta(t, 1600, got.BMR, 1e-9)
	assert.InDelta(t, 2480, got.TDEE, 1e-9)
	assert.InDelta(t, 2480, got.Calories, 1e-9)
	assert.InDelta(t, 155, got.ProteinG, 1e-9)
	assert.InDelta(t, 279, got.CarbsG, 1e-9)
	assert.InDelta(t, 82.7, got.FatG, 0.05)
}

func TestComputeNutritionGoals_MacrosReproduceCalories(t *testing.T) {
	profiles := []PhysicalProfile{
		bmr1600,
		{WeightKg: 58, HeightCm: 163, Age: 29, Sex: SexFemale},
		{WeightKg: 95, HeightCm: 188, Age: 44, Sex: SexMale},
	}
	activities := []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive}
	goals := []GoalType{GoalCut, GoalMaintain, GoalBulk}

	for _, p := range profiles {
		for _, a := range activities {
			for _, g := range goals {
				got, err := ComputeNutritionGoals(p, a, g)
				require.NoError(t, err)

				back := got.ProteinG*4 + got.CarbsG*4 + got.FatG*9
				assert.InDelta(t, got.Calories, back, 1e-6,
					"macros must reproduce the calorie target for %s/%s", a, g)
			}
		}
	}
}

func TestComputeNutritionGoals_GoalDeltas(t *testing.T) {
	maintain, err := ComputeNutritionGoals(bmr1600, ActivityModerate, GoalMaintain)
	require.NoError(t, err)
	cut, err := ComputeNutritionGoals(bmr1600, ActivityModerate, GoalCut)
	require.NoError(t, err)
	bulk, err := ComputeNutritionGoals(bmr1600, ActivityModerate, GoalBulk)
	require.NoError(t, err)

	assert.InDelta(t, maintain.Calories-500, cut.Calories, 1e-9)
	assert.InDelta(t, maintain.Calories+300, bulk.Calories, 1e-9)
}

func TestComputeNutritionGoals_UnknownEnums(t *testing.T) {
	_, err := ComputeNutritionGoals(bmr1600, "couch", GoalMaintain)
	assert.Error(t, err)
	_, err = ComputeNutritionGoals(bmr1600, ActivityModerate, "recomp")
	assert.Error(t, err)
}

func TestValidateManualGoals(t *testing.T) {
	// 150g P + 200g C + 60g F = 1940 kcal, well inside 20% of 2000.
	assert.NoError(t, ValidateManualGoals(2000, 150, 200, 60))

	// 580 kcal of macros against a 2000 kcal goal must be rejected,
	// and the message should spell out the mismatch.
	err := ValidateManualGoals(2000, 50, 50, 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "580")
	assert.Contains(t, err.Error(), "2000")

	assert.Error(t, ValidateManualGoals(0, 150, 200, 60))
	assert.Error(t, ValidateManualGoals(2000, -5, 200, 60))
}
