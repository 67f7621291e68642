// Package extract implements the two person-extraction strategies: an
// LLM-backed extractor and a regex/heuristic fallback that needs no
// external service. Both satisfy docscout.PersonExtractor; the scrape
// orchestrator tries the LLM first and falls back on error or empty
// output.
package extract

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/docscout"
)

// DefaultMaxTextChars bounds the page text included in a prompt. Beyond
// this, keyword-biased truncation kicks in so doctor-related content is
// not lost to the cut.
const DefaultMaxTextChars = 12000

// truncKeywords mark words that must survive truncation.
var truncKeywords = []string{
	"doctor", "dentist", "dds", "dmd", "meet", "team",
	"staff", "orthodontist", "dr.", "dr ",
}

// otherWordBudget is how many non-keyword words are kept after the
// keyword-bearing ones.
const otherWordBudget = 2000

// DefaultRetryDelays returns the backoff delays between completion
// attempts: 1s, 2s, 4s (3 retries after the initial attempt fails).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure LLM implements docscout.PersonExtractor at compile time.
var _ docscout.PersonExtractor = (*LLM)(nil)

// LLM extracts person records by prompting a text-completion model.
type LLM struct {
	completer    docscout.Completer
	maxTextChars int
	retryDelays  []time.Duration
	now          func() time.Time
}

// LLMOption configures an LLM extractor.
type LLMOption func(*LLM)

// WithMaxTextChars overrides the prompt text bound.
func WithMaxTextChars(n int) LLMOption {
	return func(e *LLM) { e.maxTextChars = n }
}

// WithRetryDelays overrides the completion retry delays. Useful for tests.
func WithRetryDelays(delays []time.Duration) LLMOption {
	return func(e *LLM) { e.retryDelays = delays }
}

// WithClock overrides the clock used for the current-year age rule.
func WithClock(now func() time.Time) LLMOption {
	return func(e *LLM) { e.now = now }
}

// NewLLM creates an LLM extractor over the given completer.
func NewLLM(completer docscout.Completer, opts ...LLMOption) *LLM {
	e := &LLM{
		completer:    completer,
		maxTextChars: DefaultMaxTextChars,
		retryDelays:  DefaultRetryDelays(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract prompts the model with the page text and parses the response
// into person records. Transport failures after all retries return
// EUNAVAILABLE and unparseable output returns EINVALID; both signal the
// caller to fall back to heuristic extraction.
func (e *LLM) Extract(ctx context.Context, page *docscout.Page) ([]docscout.Person, error) {
	year := e.now().Year()
	prompt := BuildPrompt(Truncate(page.Text, e.maxTextChars), year)

	response, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecords(response)
	if err != nil {
		return nil, err
	}

	return e.validate(records, page.URL), nil
}

// complete calls the completer with bounded retries and jittered backoff.
func (e *LLM) complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(e.retryDelays); attempt++ {
		response, err := e.completer.Complete(ctx, prompt)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if attempt >= len(e.retryDelays) {
			break
		}

		delay := e.retryDelays[attempt]
		if delay > 0 {
			// Jitter spreads retries so rate-limited endpoints are not
			// hammered in lockstep.
			delay += time.Duration(rand.Int63n(int64(delay)))
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", docscout.Errorf(docscout.EUNAVAILABLE, "completion failed after %d attempts: %v", len(e.retryDelays)+1, lastErr)
}

// validate converts wire records to domain records, dropping entries
// without a plausible name, cleaning bios, clamping ages, and resolving
// relative photo URLs against the page URL.
func (e *LLM) validate(records []record, pageURL string) []docscout.Person {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	people := make([]docscout.Person, 0, len(records))
	for i := range records {
		r := &records[i]
		name := docscout.StripTitles(r.name())
		if name == "" || !docscout.IsValidName(name) {
			continue
		}

		var age *int
		if r.Age.OK {
			// A stated age wins over the derived one; out-of-range
			// values are treated as not found.
			age = docscout.ClampAge(r.Age.Value)
		}

		// Same cap as the heuristic path: a hometown is a short place
		// name, not a sentence about one.
		hometown := strings.TrimSpace(r.Hometown)
		if len(strings.Fields(hometown)) > docscout.MaxHometownWords {
			hometown = ""
		}

		photo := strings.TrimSpace(r.PhotoURL)
		if photo != "" && !strings.HasPrefix(photo, "http") && base != nil {
			if ref, err := url.Parse(photo); err == nil {
				photo = base.ResolveReference(ref).String()
			} else {
				photo = ""
			}
		}

		people = append(people, docscout.Person{
			Name:      name,
			Bio:       docscout.CleanBio(strings.TrimSpace(r.bio())),
			Age:       age,
			Hometown:  hometown,
			Education: truncateField(strings.TrimSpace(r.Education), docscout.MaxEducationLen),
			PhotoURL:  photo,
		})
	}
	return people
}

func truncateField(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// Truncate bounds text to max characters. Oversized text goes through
// keyword-biased selection: words carrying doctor-indicative keywords are
// retained first, then a bounded number of the remaining words, then a
// hard cut.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}

	words := strings.Fields(text)
	important := make([]string, 0, len(words)/4)
	other := make([]string, 0, len(words))
	for _, word := range words {
		lower := strings.ToLower(word)
		keyword := false
		for _, kw := range truncKeywords {
			if strings.Contains(lower, kw) {
				keyword = true
				break
			}
		}
		if keyword {
			important = append(important, word)
		} else {
			other = append(other, word)
		}
	}

	if len(important) == 0 {
		return text[:max]
	}

	if len(other) > otherWordBudget {
		other = other[:otherWordBudget]
	}
	combined := strings.Join(important, " ") + " " + strings.Join(other, " ")
	if len(combined) > max {
		combined = combined[:max]
	}
	return combined
}

// BuildPrompt renders the fixed extraction prompt for a page's text.
func BuildPrompt(text string, currentYear int) string {
	var sb strings.Builder
	sb.WriteString("Extract ALL doctor information from this dental practice website. Return ONLY a valid JSON array, no other text.\n\n")
	sb.WriteString("CRITICAL: You MUST find ALL doctors mentioned, even if they only have a name and no other details.\n\n")
	sb.WriteString("REQUIREMENTS:\n")
	sb.WriteString("- Find ALL doctors mentioned (orthodontists, pediatric dentists, general dentists, periodontists, hygienists with names, etc.)\n")
	sb.WriteString("- Extract full names (remove \"Dr.\", \"Doctor\", \"DDS\", \"DMD\", \"MS\", \"R.D.H.\" but keep the actual name)\n")
	sb.WriteString("- Extract bio text if available (can be empty if not found)\n")
	fmt.Fprintf(&sb, "- Calculate age from graduation year (assume graduation at age 26, current year is %d)\n", currentYear)
	sb.WriteString("- Extract hometown if mentioned\n")
	sb.WriteString("- Extract education/dental school information\n")
	sb.WriteString("- Extract photo URLs if available\n\n")
	sb.WriteString("OUTPUT FORMAT - Return ONLY this JSON structure (no markdown, no explanations):\n")
	sb.WriteString(`[{"name": "Full Name Here", "bio": "Biography text or empty string", "age": 45 or null, "hometown": "City, State" or "", "education": "School name, year" or "", "photo_url": "https://..." or ""}]`)
	sb.WriteString("\n\nIMPORTANT:\n")
	sb.WriteString("- Use double quotes for JSON\n")
	sb.WriteString("- Include ALL doctors found, even if some fields are empty (name is required)\n")
	sb.WriteString("- If no doctors found, return empty array: []\n\n")
	sb.WriteString("Website content:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nJSON array:")
	return sb.String()
}
