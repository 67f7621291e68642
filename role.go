package docscout

import "strings"

// RoleConfig holds the weighted-scoring constants for owner identification.
// The defaults are preserved from the production heuristics; treat them as
// tunable, not law.
type RoleConfig struct {
	// NameWeight multiplies the number of times a person's full name
	// appears in the site text.
	NameWeight int

	// OrderWeight multiplies (N - listing index): earlier listings score
	// higher.
	OrderWeight int

	// AgeBonus is added when the person's age falls in
	// [AgeWindowMin, AgeWindowMax], the typical practice-owner range.
	AgeBonus     int
	AgeWindowMin int
	AgeWindowMax int
}

// DefaultRoleConfig returns the production scoring constants.
func DefaultRoleConfig() RoleConfig {
	return RoleConfig{
		NameWeight:   2,
		OrderWeight:  3,
		AgeBonus:     10,
		AgeWindowMin: 35,
		AgeWindowMax: 55,
	}
}

// AssignRoles labels each record Owner or Associate using a three-tier
// policy, first applicable tier wins:
//
//  1. Single-doctor rule: exactly one record is the Owner.
//  2. Name-match rule: the practice name contains a record's last name.
//  3. Weighted scoring over name prominence, listing order, and age.
//
// For any non-empty input exactly one record ends up Owner. The slice is
// modified in place and returned for convenience.
func AssignRoles(people []Person, practiceName, siteText string, cfg RoleConfig) []Person {
	if len(people) == 0 {
		return people
	}

	if len(people) == 1 {
		people[0].Role = RoleOwner
		return people
	}

	practice := strings.ToLower(practiceName)
	if practice != "" {
		for i := range people {
			last := LastName(people[i].Name)
			if last != "" && strings.Contains(practice, last) {
				setOwner(people, i)
				return people
			}
		}
	}

	text := strings.ToLower(siteText)
	best, bestScore := 0, -1
	for i := range people {
		score := cfg.score(&people[i], i, len(people), text)
		// Strictly-greater keeps the earliest listing on ties.
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	setOwner(people, best)
	return people
}

func (cfg RoleConfig) score(p *Person, index, total int, siteText string) int {
	score := cfg.NameWeight * strings.Count(siteText, NormalizeName(p.Name))
	score += cfg.OrderWeight * (total - index)
	if p.Age != nil && *p.Age >= cfg.AgeWindowMin && *p.Age <= cfg.AgeWindowMax {
		score += cfg.AgeBonus
	}
	return score
}

func setOwner(people []Person, owner int) {
	for i := range people {
		if i == owner {
			people[i].Role = RoleOwner
		} else {
			people[i].Role = RoleAssociate
		}
	}
}
