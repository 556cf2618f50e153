package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForWeight_Boundaries(t *testing.T) {
	cases := []struct {
		kg   float64
		want BreedCategory
	}{
		{0.5, CategoryToy},
		{5, CategoryToy},
		{5.01, CategorySmall},
		{15, CategorySmall},
		{15.5, CategoryMedium},
		{30, CategoryMedium},
		{30.1, CategoryLarge},
		{50, CategoryLarge},
		{50.1, CategoryGiant},
		{95, CategoryGiant},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CategoryForWeight(c.kg), "kg=%v", c.kg)
	}
}

func TestMetabolicMultiplier(t *testing.T) {
	assert.Equal(t, 1.15, MetabolicMultiplier(3))
	assert.Equal(t, 1.05, MetabolicMultiplier(10))
	assert.Equal(t, 1.00, MetabolicMultiplier(20))
	assert.Equal(t, 0.95, MetabolicMultiplier(40))
	assert.Equal(t, 0.90, MetabolicMultiplier(65))
}

func TestMaturityAgeWeeks(t *testing.T) {
	assert.Equal(t, 32, MaturityAgeWeeks(CategoryToy))
	assert.Equal(t, 44, MaturityAgeWeeks(CategorySmall))
	assert.Equal(t, 52, MaturityAgeWeeks(CategoryMedium))
	assert.Equal(t, 72, MaturityAgeWeeks(CategoryLarge))
	assert.Equal(t, 96, MaturityAgeWeeks(CategoryGiant))
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].MetabolicMultiplier = 99

	assert.Equal(t, 1.15, Profile(CategoryToy).MetabolicMultiplier)
	assert.False(t, BreedCategory("huge").Valid())
	assert.Equal(t, CategoryMedium, Profile("huge").Category)
}
