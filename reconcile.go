package docscout

// Merge reconciles person records from a newly visited page into the
// records accumulated so far. Records matching under the name-equivalence
// relation are merged field-wise; the rest are appended. First-appearance
// order is preserved because role scoring weighs listing order.
func Merge(existing, incoming []Person) []Person {
	merged := make([]Person, len(existing))
	copy(merged, existing)

	for _, in := range incoming {
		matched := false
		for i := range merged {
			if merged[i].SamePerson(&in) {
				mergeInto(&merged[i], &in)
				matched = true
				break
			}
		}
		if !matched {
			merged = append(merged, in)
		}
	}

	return merged
}

// mergeInto folds an incoming record into an existing one. A field is only
// replaced when the existing value is absent or the incoming value is
// strictly more complete; a present value is never overwritten by an
// absent one.
func mergeInto(dst, src *Person) {
	// Keep the longer display name: "Jane Doe" beats "Doe".
	if len(StripTitles(src.Name)) > len(StripTitles(dst.Name)) {
		dst.Name = StripTitles(src.Name)
	}
	if len(src.Bio) > len(dst.Bio) {
		dst.Bio = src.Bio
	}
	if dst.Age == nil && src.Age != nil {
		dst.Age = src.Age
	}
	if dst.Hometown == "" {
		dst.Hometown = src.Hometown
	}
	if dst.Education == "" {
		dst.Education = src.Education
	}
	if dst.PhotoURL == "" {
		dst.PhotoURL = src.PhotoURL
	}
}
