package normalize

import "strings"

// NotProvided is the label for absent answers, distinct from the per-table
// fallback returned when an answer matched no rule.
const NotProvided = "Non renseigné"

// Rule binds a canonical label to the keywords that select it. Keywords
// match by case-insensitive substring containment against the whole answer;
// Suffixes match at the end of the answer only (used where a short keyword
// like "bi" would otherwise fire inside unrelated words).
type Rule struct {
	Label    string
	Keywords []string
	Suffixes []string
}

// Classify maps free text onto a closed label set. Rules are scanned in
// order and the first hit wins, so more specific rules must precede broader
// catch-alls (keyword sets overlap). Empty input returns NotProvided; input
// matching no rule returns fallback.
func Classify(text string, rules []Rule, fallback string) string {
	if text == "" {
		return NotProvided
	}
	s := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(s, kw) {
				return rule.Label
			}
		}
		for _, suf := range rule.Suffixes {
			if strings.HasSuffix(s, suf) {
				return rule.Label
			}
		}
	}
	return fallback
}
