package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/docscout/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("extracts the main content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Our Team</title></head><body>
			<nav><a href="/">Home</a><a href="/services">Services</a></nav>
			<main><article>
				<h1>Meet Our Doctors</h1>
				<p>Dr. Jane Doe has been caring for families in Springfield for
				over fifteen years. She graduated from State Dental School in 2010
				and joined the practice shortly after. Outside the office she
				volunteers at the community clinic and coaches youth soccer.</p>
			</article></main>
			<footer>Copyright 2024 Smiles of Anytown</footer>
		</body></html>`

		n := trafilatura.NewNormalizer()
		text, err := n.Normalize(html)
		require.NoError(t, err)
		assert.Contains(t, text, "Dr. Jane Doe has been caring for families")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		n := trafilatura.NewNormalizer()
		text, err := n.Normalize("   ")
		require.NoError(t, err)
		assert.Equal(t, "", text)
	})
}
