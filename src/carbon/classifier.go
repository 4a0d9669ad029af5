package carbon

import "strings"

// Uncategorized is the category key for transactions the provider did not
// label.
const Uncategorized = "UNCATEGORIZED"

// Classify normalizes a provider category label to the key used for factor
// lookup and aggregation: trimmed, upper-cased, spaces and dashes collapsed
// to underscores. An empty label classifies as Uncategorized.
func Classify(rawCategory string) string {
	key := strings.TrimSpace(rawCategory)
	if key == "" {
		return Uncategorized
	}
	key = strings.ToUpper(key)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// ExclusionSet holds category keys excluded from carbon accounting. Excluded
// transactions still count toward income/spending aggregates; they represent
// money movement (transfers, income, loan payments), not consumption.
type ExclusionSet map[string]struct{}

// DefaultExclusions excludes pure-transfer and income categories.
func DefaultExclusions() ExclusionSet {
	return ExclusionSet{
		"INCOME":        {},
		"LOAN_PAYMENTS": {},
		"TRANSFER_IN":   {},
		"TRANSFER_OUT":  {},
	}
}

// ParseExclusions builds a set from a comma-separated list of category
// labels. An empty input yields an empty set (carbon-tax everything).
func ParseExclusions(list string) ExclusionSet {
	set := ExclusionSet{}
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[Classify(part)] = struct{}{}
	}
	return set
}

// Excluded reports whether the normalized category key is outside carbon
// accounting.
func (s ExclusionSet) Excluded(key string) bool {
	_, ok := s[key]
	return ok
}
