package docscout

import (
	"regexp"
	"strings"
)

// boilerplateRes remove known site-furniture categories from bio text, in
// order: contact/address/phone/hours blocks, footer credits, form
// confirmations, breadcrumb repetition. Patterns are anchored to the junk
// they target so legitimate bio sentences survive.
var boilerplateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)CONTACT US.*?BLOG.*?All Rights Reserved.*`),
	regexp.MustCompile(`(?is)Search \.\.\. Search.*`),
	regexp.MustCompile(`(?is)Pay Online.*?Patient Portal.*`),
	regexp.MustCompile(`(?is)Thank you!.*?submission.*?received.*`),
	regexp.MustCompile(`(?is)Oops!.*?Something went wrong.*`),
	regexp.MustCompile(`(?is)Monday.*?Sunday.*?Closed.*`),
	regexp.MustCompile(`(?i)Phone:.*?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}[^\n]*`),
	regexp.MustCompile(`(?i)Address:[^\n]*?,\s*\w+\s+\d{5}[^\n]*`),
	regexp.MustCompile(`(?i)Email:\s*\S+@\S+[^\n]*`),
	regexp.MustCompile(`(?is)All Rights Reserved.*?Maintained by.*`),
	regexp.MustCompile(`(?i)©\s*\d{4}[^\n]*All rights reserved[^\n]*`),
	regexp.MustCompile(`(?i)Website by[^\n]*`),
	regexp.MustCompile(`(?i)Maintained by[^\n]*`),
	regexp.MustCompile(`(?is)Home\s+About\s+Services\s+Contact[^\n]*`),
	regexp.MustCompile(`(?is)Back\s+Back\s+Back[^\n]*`),
	regexp.MustCompile(`(?i)Provider Search.*?Find the Provider[^\n]*`),
	regexp.MustCompile(`(?i)Schedule[^\n]*?Appointment[^\n]*?Request[^\n]*`),
	regexp.MustCompile(`(?i)My Account[^\n]*?Pay My Bill[^\n]*`),
	regexp.MustCompile(`(?i)schedule now[^\n]*`),
	regexp.MustCompile(`(?i)\d{3}[-.\s]\d{3}[-.\s]\d{4}[^\n]*`),
	regexp.MustCompile(`(?i)\d{1,5}\s+[A-Z][a-z]+\s+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Lane|Ln|Way|Circle|Ct)\.?[^\n]*`),
	regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:AM|PM)[^\n]*?\d{1,2}:\d{2}\s*(?:AM|PM)[^\n]*`),
}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]\s+`)
	digitLineRe     = regexp.MustCompile(`^[\d\s\-()]+$`)
	hoursLineRe     = regexp.MustCompile(`(?i)\bAM\b.*\bPM\b`)
)

// navTokens mark short lines as navigation furniture.
var navTokens = []string{
	"home", "about", "services", "contact", "blog",
	"back", "next", "previous", "menu", "navigation",
}

// sentenceDedupeThreshold: only bios longer than this get the repeated
// sentence pass; short bios rarely repeat and the pass reorders terminators.
const sentenceDedupeThreshold = 500

// CleanBio strips navigational and boilerplate text from a raw bio.
// It is idempotent: CleanBio(CleanBio(x)) == CleanBio(x).
func CleanBio(bio string) string {
	if bio == "" {
		return ""
	}

	// One pass can expose new junk: collapsing whitespace joins the
	// halves of a pattern that was split across lines. Clean until the
	// text stops changing; the output is then a fixed point of the pass.
	cleaned := bio
	for i := 0; i < 8; i++ {
		next := cleanBioOnce(cleaned)
		if next == cleaned {
			break
		}
		cleaned = next
	}

	return cleaned
}

func cleanBioOnce(s string) string {
	for _, re := range boilerplateRes {
		s = re.ReplaceAllString(s, "")
	}

	s = dropNavLines(s)

	// Sentence dedup must see the collapsed form so that a later pass
	// segments the text exactly the same way.
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))

	if len(s) > sentenceDedupeThreshold {
		s = dedupeSentences(s)
	}

	if len(s) > MaxBioLen {
		s = s[:MaxBioLen] + "..."
	}

	return s
}

// dropNavLines removes short lines that are pure navigation tokens, phone
// digits, or opening-hours ranges.
func dropNavLines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) < 3 {
			continue
		}
		if len(trimmed) < 30 {
			lower := strings.ToLower(trimmed)
			nav := false
			for _, tok := range navTokens {
				if strings.Contains(lower, tok) {
					nav = true
					break
				}
			}
			if nav || digitLineRe.MatchString(trimmed) || hoursLineRe.MatchString(trimmed) {
				continue
			}
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// dedupeSentences drops near-identical sentences, comparing the first 50
// characters case-insensitively.
func dedupeSentences(s string) string {
	sentences := sentenceSplitRe.Split(s, -1)
	seen := make(map[string]bool, len(sentences))
	unique := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if len(key) > 50 {
			key = key[:50]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, trimmed)
	}
	return strings.Join(unique, ". ")
}
