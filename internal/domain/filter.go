package domain

import "strings"

// FilterSet maps a filterable field key to the non-empty set of accepted
// stringified values. An empty FilterSet matches every record.
type FilterSet map[string][]string

// SanitizeFilters builds a FilterSet from an untrusted filter payload:
// values are trimmed, blank values dropped, and keys with no remaining
// values removed entirely. Keys themselves are not restricted; a key that
// names no record field constrains on the empty string and so matches
// nothing.
func SanitizeFilters(raw map[string][]string) FilterSet {
	if len(raw) == 0 {
		return FilterSet{}
	}

	filters := FilterSet{}
	for key, values := range raw {
		cleaned := make([]string, 0, len(values))
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v != "" {
				cleaned = append(cleaned, v)
			}
		}
		if len(cleaned) > 0 {
			filters[key] = cleaned
		}
	}
	return filters
}

// Matches reports whether the record satisfies every constraint in f.
// A record matches iff, for each field present, the record's stringified
// value is one of the accepted values.
func (f FilterSet) Matches(r SurveyResponse) bool {
	for key, values := range f {
		if len(values) == 0 {
			continue
		}
		got := r.FieldValue(key)
		found := false
		for _, v := range values {
			if v == got {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the subset of records matching f. The input slice is never
// mutated; with no active filters it is returned as-is.
func Apply(records []SurveyResponse, f FilterSet) []SurveyResponse {
	if len(f) == 0 {
		return records
	}
	out := make([]SurveyResponse, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Without returns a copy of f with one field's constraint removed, the
// "leave-one-out" context used for facet counting.
func (f FilterSet) Without(key string) FilterSet {
	out := make(FilterSet, len(f))
	for k, v := range f {
		if k != key {
			out[k] = v
		}
	}
	return out
}
