package telnum

import "github.com/agnivade/levenshtein"

// SuggestExampleNumber looks across a region's per-category example
// numbers for the one whose digit string is closest (by edit distance) to
// the national significant number a caller failed to validate. It's a
// diagnostic aid for error messages ("did you mean a number shaped like
// +1 202 555 0143?"), not part of the validation contract itself: no
// example is returned unless md carries at least one.
func SuggestExampleNumber(nsn string, md *PhoneMetadata) (example string, category NumberType, ok bool) {
	if md == nil {
		return "", Unknown, false
	}
	candidates := []struct {
		typ  NumberType
		desc *PhoneNumberDesc
	}{
		{FixedLine, md.FixedLine},
		{Mobile, md.Mobile},
		{TollFree, md.TollFree},
		{PremiumRate, md.PremiumRate},
		{SharedCost, md.SharedCost},
		{Voip, md.Voip},
		{PersonalNumber, md.PersonalNumber},
		{Pager, md.Pager},
		{Uan, md.Uan},
	}

	best := -1
	for _, c := range candidates {
		if c.desc == nil || c.desc.ExampleNumber == "" {
			continue
		}
		dist := levenshtein.ComputeDistance(nsn, c.desc.ExampleNumber)
		if best == -1 || dist < best {
			best = dist
			example, category, ok = c.desc.ExampleNumber, c.typ, true
		}
	}
	return example, category, ok
}
