package normalize

// Experience cohort labels, in display order.
var ExperienceGroups = []string{"0-1 an", "2-3 ans", "4-5 ans", "6-9 ans", "10+ ans"}

// ExperienceGroup buckets years of experience into the dashboard's fixed
// cohorts. ParseExperience already maps unanswered/unparseable input to 0,
// so every record lands in a cohort; NotProvided is reserved for callers
// that never had a numeric value at all.
func ExperienceGroup(years int) string {
	switch {
	case years <= 1:
		return "0-1 an"
	case years <= 3:
		return "2-3 ans"
	case years <= 5:
		return "4-5 ans"
	case years <= 9:
		return "6-9 ans"
	default:
		return "10+ ans"
	}
}
