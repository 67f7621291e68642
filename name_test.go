package docscout_test

import (
	"testing"

	"github.com/fwojciec/docscout"
	"github.com/stretchr/testify/assert"
)

func TestStripTitles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"prefix", "Dr. Jane Doe", "Jane Doe"},
		{"prefix without period", "Dr Jane Doe", "Jane Doe"},
		{"doctor word", "Doctor Jane Doe", "Jane Doe"},
		{"suffix", "Jane Doe, DDS", "Jane Doe"},
		{"stacked suffixes", "Jane Doe, DDS, MS", "Jane Doe"},
		{"dotted suffix", "Jane Doe, D.D.S.", "Jane Doe"},
		{"both ends", "Dr. Jane Doe, DMD", "Jane Doe"},
		{"plain name untouched", "Jane Doe", "Jane Doe"},
		{"extra whitespace", "  Dr.   Jane   Doe  ", "Jane Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docscout.StripTitles(tt.in))
		})
	}
}

func TestIsValidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"plain name", "Jane Doe", true},
		{"middle initial", "John A. Smith", true},
		{"three tokens", "Mary Beth Johnson", true},
		{"all caps surname", "YOUNG", true},
		{"service heading", "Preventive Dentistry", false},
		{"treatment", "Root Canal Therapy", false},
		{"whitening", "Teeth Whitening", false},
		{"nav entry", "Contact Us", false},
		{"about us phrase", "About Us", false},
		{"our team phrase", "Our Team", false},
		{"meet the phrase", "Meet The", false},
		{"too short", "Jo", false},
		{"lowercase first", "jane doe", false},
		{"lone lowercase token", "jane", false},
		{"lone short caps", "ABC", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, docscout.IsValidName(tt.in), "name %q", tt.in)
		})
	}
}

func TestIsValidName_Deterministic(t *testing.T) {
	t.Parallel()

	for range 10 {
		assert.True(t, docscout.IsValidName("Jane Doe"))
		assert.False(t, docscout.IsValidName("Dental Implants"))
	}
}

func TestSameName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"identical", "Jane Doe", "Jane Doe", true},
		{"case and titles", "Dr. John A. Smith", "john smith", true},
		{"middle initial variant", "John A. Smith", "John Smith", true},
		{"initial plus last", "J. Smith", "John Smith", true},
		{"shared two tokens", "Mary Beth Johnson", "Mary Johnson", true},
		{"different people", "Jane Doe", "John Smith", false},
		{"same last different initial", "Alice Brown", "Robert Brown", false},
		{"empty", "", "Jane Doe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.same, docscout.SameName(tt.a, tt.b))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "john a smith", docscout.NormalizeName("Dr. John A. Smith, DDS"))
	assert.Equal(t, "jane doe", docscout.NormalizeName("  Jane   Doe  "))
}

func TestLastName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "smith", docscout.LastName("Dr. John A. Smith, DDS"))
	assert.Equal(t, "", docscout.LastName(""))
}
