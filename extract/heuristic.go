package extract

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/goquery"
)

// Name detection patterns, tried in order.
var (
	drNameRe = regexp.MustCompile(`Dr\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z.]+)+)`)

	degreeNameRe = regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s*,?\s+(?:DDS|DMD|MS|D\.D\.S\.|D\.M\.D\.)\b`)

	sectionHeadRe = regexp.MustCompile(`(?i)(?:Meet\s+the\s+Doctors?|Our\s+Doctors?|Our\s+Team|Meet\s+Our\s+Team|Pediatric\s+Dentists?|Orthodontists?|General\s+Dentists?)[:\s]*\n`)

	// Horizontal whitespace only: a candidate name never spans lines, and
	// letting it would glue adjacent headings together.
	plainNameRe = regexp.MustCompile(`([A-Z][a-z]+[ \t]+[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)?)`)
)

// sectionSpan is how far past a team-section heading names are trusted.
const sectionSpan = 1500

// Derived-field patterns, ported across the retired script variants into
// one table each.
var gradYearRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:graduated|graduation|class of)\s+(?:from\s+|in\s+)?(\d{4})`),
	regexp.MustCompile(`(?i)(\d{4})\s*(?:graduate|graduation)`),
	regexp.MustCompile(`(?i)(?:D\.?D\.?S\.?|D\.?M\.?D\.?),?\s*(?:from\s+)?(\d{4})`),
	regexp.MustCompile(`(?i)(\d{4})\s*(?:D\.?D\.?S\.?|D\.?M\.?D\.?)`),
	regexp.MustCompile(`(?i)earned\s+(?:his|her|their)?\s*(?:D\.?D\.?S\.?|D\.?M\.?D\.?)\s+(?:in|from)?\s*(\d{4})`),
}

var hometownRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:hometown of|born in|raised in|native of|grew up in|originally from|hails from|comes from)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})`),
}

var hometownStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "our": true, "team": true, "his": true, "her": true,
}

var educationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:graduated from|attended)\s+([^.]+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)(?:earned|received|obtained)\s+(?:his|her|their)?\s*(?:D\.?D\.?S\.?|D\.?M\.?D\.?)\s+(?:from|at)?\s*([^.]+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)(?:D\.?D\.?S\.?|D\.?M\.?D\.?)\s+(?:from|at)\s+([^.]+?)(?:\.|$)`),
}

var eduLeadRe = regexp.MustCompile(`(?i)^(?:from|at|in)\s+`)

// Ensure Heuristic implements docscout.PersonExtractor at compile time.
var _ docscout.PersonExtractor = (*Heuristic)(nil)

// Heuristic extracts person records with regex patterns only. It is the
// always-available fallback when the LLM is unreachable or returns
// garbage, and needs no external service.
type Heuristic struct {
	now func() time.Time
}

// HeuristicOption configures a Heuristic extractor.
type HeuristicOption func(*Heuristic)

// WithHeuristicClock overrides the clock used for the age rule.
func WithHeuristicClock(now func() time.Time) HeuristicOption {
	return func(h *Heuristic) { h.now = now }
}

// NewHeuristic creates a Heuristic extractor.
func NewHeuristic(opts ...HeuristicOption) *Heuristic {
	h := &Heuristic{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type nameHit struct {
	name string
	pos  int
}

// Extract scans the page text for doctor names, slices a bio span per
// name (up to the next detected name), and derives age, hometown,
// education, and photo from the span. It never fails: no matches simply
// yield an empty list.
func (h *Heuristic) Extract(_ context.Context, page *docscout.Page) ([]docscout.Person, error) {
	hits := findNames(page.Text)
	if len(hits) == 0 {
		return nil, nil
	}

	year := h.now().Year()
	people := make([]docscout.Person, 0, len(hits))
	for i, hit := range hits {
		end := len(page.Text)
		if i+1 < len(hits) && hits[i+1].pos < end {
			end = hits[i+1].pos
		}
		if end > hit.pos+docscout.MaxBioLen {
			end = hit.pos + docscout.MaxBioLen
		}
		bio := docscout.CleanBio(page.Text[hit.pos:end])

		people = append(people, docscout.Person{
			Name:      hit.name,
			Bio:       bio,
			Age:       AgeFromBio(bio, year),
			Hometown:  Hometown(bio),
			Education: Education(bio),
			PhotoURL:  goquery.FindPhoto(page.HTML, hit.name, page.URL),
		})
	}

	return people, nil
}

// findNames runs the name patterns over the text and returns validated,
// deduplicated names at their earliest occurrence, in text order.
func findNames(text string) []nameHit {
	seen := make(map[string]int) // normalized name -> index into hits
	var hits []nameHit

	add := func(raw string, pos int) {
		name := docscout.StripTitles(raw)
		if name == "" || !docscout.IsValidName(name) {
			return
		}
		key := docscout.NormalizeName(name)
		if idx, dup := seen[key]; dup {
			if pos < hits[idx].pos {
				hits[idx].pos = pos
			}
			return
		}
		seen[key] = len(hits)
		hits = append(hits, nameHit{name: name, pos: pos})
	}

	for _, m := range drNameRe.FindAllStringSubmatchIndex(text, -1) {
		add(text[m[2]:m[3]], m[0])
	}
	for _, m := range degreeNameRe.FindAllStringSubmatchIndex(text, -1) {
		add(text[m[2]:m[3]], m[0])
	}
	for _, m := range sectionHeadRe.FindAllStringIndex(text, -1) {
		end := m[1] + sectionSpan
		if end > len(text) {
			end = len(text)
		}
		section := text[m[1]:end]
		for _, nm := range plainNameRe.FindAllStringSubmatchIndex(section, -1) {
			add(section[nm[2]:nm[3]], m[1]+nm[0])
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	return hits
}

// AgeFromBio derives an age from a graduation year mentioned in the bio.
// Implausible years and out-of-range ages yield nil.
func AgeFromBio(bio string, currentYear int) *int {
	for _, re := range gradYearRes {
		m := re.FindStringSubmatch(bio)
		if m == nil {
			continue
		}
		year := 0
		for _, c := range m[1] {
			year = year*10 + int(c-'0')
		}
		if age := docscout.AgeFromGradYear(year, currentYear); age != nil {
			return age
		}
	}
	return nil
}

// Hometown extracts a short place name from phrases like "born in X" or
// "native of X". Stop-word leads and over-long "places" are rejected.
func Hometown(bio string) string {
	for _, re := range hometownRes {
		m := re.FindStringSubmatch(bio)
		if m == nil {
			continue
		}
		place := strings.TrimSpace(m[1])
		words := strings.Fields(place)
		if len(words) == 0 || len(words) > docscout.MaxHometownWords {
			continue
		}
		if hometownStopwords[strings.ToLower(words[0])] {
			continue
		}
		return place
	}
	return ""
}

// Education extracts a school mention up to the next sentence terminator,
// capped at MaxEducationLen characters.
func Education(bio string) string {
	for _, re := range educationRes {
		m := re.FindStringSubmatch(bio)
		if m == nil {
			continue
		}
		edu := strings.TrimSpace(eduLeadRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
		if edu == "" {
			continue
		}
		if len(edu) > docscout.MaxEducationLen {
			edu = edu[:docscout.MaxEducationLen]
		}
		return edu
	}
	return ""
}
