package growth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVeterinaryEstimate(t *testing.T) {
	cases := []struct {
		name           string
		current, adult float64
		ageWeeks       float64
		want           bool
	}{
		{"plausible puppy", 5, 18, 12, true},
		{"below current", 5, 4.5, 12, false},
		{"over 4x current", 2, 8.5, 8, false},
		{"exactly 4x", 2, 8, 8, true},
		{"over absolute ceiling", 25, 85, 16, false},
		{"32 weeks tight", 20, 31, 33, false},
		{"32 weeks ok", 20, 29, 33, true},
		{"40 weeks tight", 20, 26, 41, false},
		{"40 weeks ok", 20, 24, 41, true},
		{"zero current", 0, 5, 10, false},
		{"negative age", 3, 6, -1, false},
		{"nan", math.NaN(), 6, 10, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ValidateVeterinaryEstimate(c.current, c.adult, c.ageWeeks))
		})
	}
}
