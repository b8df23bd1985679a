package stats

import (
	"github.com/alumni-sante/sondage-backend/internal/domain"
)

// Facets computes, for each filterable field, how many records hold each of
// its values under the "leave-one-out" context: all active filters except
// the field's own. That is what lets the dropdowns show live counts for
// options the user has not applied yet — including the one currently
// selected.
//
// Options are emitted in first-seen record order; per-field display sorting
// is the client's concern. Records count against the full unfiltered set,
// not the filtered one.
func Facets(all []domain.SurveyResponse, active domain.FilterSet) map[string][]FilterOption {
	out := make(map[string][]FilterOption, len(domain.FilterKeys))

	for _, key := range domain.FilterKeys {
		context := active.Without(key)
		subset := domain.Apply(all, context)

		counts := map[string]int{}
		var order []string
		for _, r := range subset {
			value := r.FieldValue(key)
			if value == "" {
				continue
			}
			if _, seen := counts[value]; !seen {
				order = append(order, value)
			}
			counts[value]++
		}

		options := make([]FilterOption, 0, len(order))
		for _, value := range order {
			options = append(options, FilterOption{Value: value, Count: counts[value]})
		}
		out[key] = options
	}

	return out
}
