package docscout

// Age plausibility bounds. Derived or stated ages outside this range are
// discarded and treated as unknown.
const (
	MinAge = 25
	MaxAge = 80
)

// Graduation years outside [MinGradYear, current year] are noise.
const MinGradYear = 1950

// gradAgeBase: dental school graduation is assumed to happen at age 26, so
// age = 26 + years since graduation.
const gradAgeBase = 26

// AgeFromGradYear derives an age from a graduation year. It returns nil
// when the year is implausible or the derived age falls outside
// [MinAge, MaxAge] (e.g. a 1900 graduation would put the age past 120).
func AgeFromGradYear(gradYear, currentYear int) *int {
	if gradYear < MinGradYear || gradYear > currentYear {
		return nil
	}
	age := gradAgeBase + (currentYear - gradYear)
	return ClampAge(age)
}

// ClampAge returns &age when it lies within the plausible range, nil
// otherwise.
func ClampAge(age int) *int {
	if age < MinAge || age > MaxAge {
		return nil
	}
	return &age
}
