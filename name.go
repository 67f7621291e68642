package docscout

import (
	"regexp"
	"strings"
)

var (
	titlePrefixRe = regexp.MustCompile(`(?i)^\s*(?:dr\.?|doctor)\s+`)
	titleSuffixRe = regexp.MustCompile(`(?i)[\s,]+(?:D\.?D\.?S\.?|D\.?M\.?D\.?|M\.?S\.?|R\.?D\.?H\.?|Ph\.?D\.?)\.?\s*$`)
	spaceRe       = regexp.MustCompile(`\s+`)
)

// denyTokens are service/marketing words that disqualify a candidate name.
// Team pages list treatments in the same heading style as doctors, so any
// of these appearing as a word in a "name" marks it as a service listing.
var denyTokens = map[string]bool{
	"services": true, "preventive": true, "dentistry": true, "dental": true,
	"fillings": true, "crowns": true, "cosmetic": true, "restorative": true,
	"prosthetic": true, "orthodontics": true, "sedation": true,
	"emergency": true, "contact": true, "dentist": true, "checkups": true,
	"cleanings": true, "bruxism": true, "tmj": true, "snoring": true,
	"sleep": true, "apnea": true, "therapy": true, "canal": true,
	"wisdom": true, "teeth": true, "extraction": true, "whitening": true,
	"bonding": true, "contouring": true, "gum": true, "veneers": true,
	"bridges": true, "dentures": true, "implants": true, "invisalign": true,
	"aligners": true, "braces": true, "staff": true, "team": true,
	"welcome": true, "directions": true, "phone": true, "address": true,
	"rights": true, "reserved": true, "menu": true, "navigation": true,
	"home": true, "appointment": true, "insurance": true, "our": true,
	"meet": true, "doctors": true, "dentists": true,
}

// denyPhrases disqualify a candidate name when it matches whole.
var denyPhrases = map[string]bool{
	"about us":       true,
	"our team":       true,
	"meet the":       true,
	"page not found": true,
}

// StripTitles removes honorifics and degree suffixes from a display name:
// "Dr. Jane Doe, DDS" becomes "Jane Doe". Repeated suffixes are all removed.
func StripTitles(name string) string {
	s := strings.TrimSpace(name)
	s = titlePrefixRe.ReplaceAllString(s, "")
	for {
		next := titleSuffixRe.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// NormalizeName lowercases a title-stripped name and removes periods, for
// case-insensitive comparison. "John A. Smith" -> "john a smith".
func NormalizeName(name string) string {
	s := strings.ToLower(StripTitles(name))
	s = strings.ReplaceAll(s, ".", "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// IsValidName reports whether a candidate string is plausibly a person name
// rather than a service heading. It is a pure function: the same input
// always yields the same answer.
func IsValidName(name string) bool {
	s := strings.TrimSpace(name)
	if len(s) < 3 {
		return false
	}

	lower := strings.ToLower(spaceRe.ReplaceAllString(s, " "))
	if denyPhrases[lower] {
		return false
	}
	for _, tok := range strings.Fields(lower) {
		if denyTokens[strings.Trim(tok, ".,")] {
			return false
		}
	}

	parts := strings.Fields(s)
	if len(parts) == 0 {
		return false
	}

	upper := s == strings.ToUpper(s)

	// A lone token is only acceptable as an all-caps surname ("YOUNG").
	if len(parts) == 1 {
		return upper && len(s) > 3
	}

	if !upper {
		first := []rune(parts[0])
		if first[0] < 'A' || first[0] > 'Z' {
			return false
		}
		for _, part := range parts {
			if len(strings.Trim(part, ".")) < 2 && !strings.HasSuffix(part, ".") {
				return false
			}
		}
	}

	return true
}

// SameName reports whether two names refer to the same person: equal after
// normalization, sharing at least two whitespace-separated tokens, or
// sharing a last-name token with the same first initial.
func SameName(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	ta, tb := strings.Fields(na), strings.Fields(nb)

	shared := 0
	seen := make(map[string]bool, len(ta))
	for _, t := range ta {
		seen[t] = true
	}
	for _, t := range tb {
		if seen[t] {
			shared++
		}
	}
	if shared >= 2 {
		return true
	}

	if len(ta) >= 2 && len(tb) >= 2 {
		if ta[len(ta)-1] == tb[len(tb)-1] && ta[0][0] == tb[0][0] {
			return true
		}
	}

	return false
}

// LastName returns the final token of a title-stripped name, lowercased.
func LastName(name string) string {
	tokens := strings.Fields(NormalizeName(name))
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}
