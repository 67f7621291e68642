package docscout

// Normalizer converts raw HTML into clean, de-noised plain text suitable
// for prompting or regex scanning.
type Normalizer interface {
	// Normalize removes script/style/nav/footer and comment nodes and
	// returns visible text with collapsed whitespace. Unparseable input
	// yields empty text, not an error, so callers treat "no text"
	// uniformly.
	Normalize(html string) (string, error)
}
