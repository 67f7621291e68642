package docscout_test

import (
	"testing"

	"github.com/fwojciec/docscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeFromGradYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		gradYear    int
		currentYear int
		want        *int
	}{
		{"recent graduate", 2010, 2024, ptr(40)},
		{"fresh graduate", 2024, 2024, ptr(26)},
		{"implausibly old year", 1900, 2024, nil},
		{"before minimum", 1949, 2024, nil},
		{"future year", 2030, 2024, nil},
		{"derived age past maximum", 1955, 2024, nil},
		{"oldest plausible", 1970, 2024, ptr(80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := docscout.AgeFromGradYear(tt.gradYear, tt.currentYear)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestClampAge(t *testing.T) {
	t.Parallel()

	assert.Nil(t, docscout.ClampAge(24))
	assert.Nil(t, docscout.ClampAge(81))

	for _, age := range []int{25, 45, 80} {
		got := docscout.ClampAge(age)
		require.NotNil(t, got)
		assert.Equal(t, age, *got)
	}
}

func ptr(v int) *int { return &v }
