// Package stats computes the dashboard's aggregate statistics over filtered
// survey records: overall salary summaries, the bracket histogram, the
// per-experience-year trend, benefit prevalence, sector and regional
// breakdowns, anecdotes, and the leave-one-out facet counts that drive the
// filter dropdowns.
//
// Everything here is a pure function of its inputs. Statistics are
// recomputed from scratch on every query and never persisted; the only hard
// rule is the anonymity floor on regional rollups.
package stats

// SalaryBrackets is the fixed ordered bracket list of the salary histogram.
// Records are bucketed by normalized exact label match, so a variant
// spelling that survives normalization simply counts nowhere.
var SalaryBrackets = []string{
	"Moins de 30k€",
	"30-35k€",
	"35-40k€",
	"40-45k€",
	"45-50k€",
	"50-60k€",
	"60-70k€",
	"70-80k€",
	"80-90k€",
	"90-100k€",
	"Plus de 100k€",
}

// benefitGroups are the keyword groups scanned against the free-text
// benefits answer, lowercased substring match.
var benefitGroups = []struct {
	Label string
	Terms []string
}{
	{Label: "Télétravail", Terms: []string{"télétravail", "teletravail", "remote"}},
	{Label: "Tickets Resto", Terms: []string{"ticket", "restaurant", "tr", "panier"}},
	{Label: "Voiture", Terms: []string{"voiture", "véhicule"}},
	{Label: "RTT / Congés", Terms: []string{"rtt", "congés", "vacances"}},
	{Label: "Intéressement", Terms: []string{"intéressement", "participation", "interessement"}},
	{Label: "Mutuelle gratuite", Terms: []string{"mutuelle gratuite", "mutuelle pris en charge à 100%", "mutuelle prise en charge à 100%"}},
}

// anonymityFloor is the minimum number of salary entries a region needs
// before its rollup is disclosed. Never bypassed, regardless of caller.
const anonymityFloor = 3

// Overview is the headline stats block. Count is the full filtered record
// count, while the means/medians only cover records with a parseable salary.
type Overview struct {
	Mean        int `json:"mean"`
	Median      int `json:"median"`
	MeanTotal   int `json:"meanTotal"`
	MedianTotal int `json:"medianTotal"`
	Count       int `json:"count"`
}

// SalaryDistribution is the histogram over SalaryBrackets; Labels and
// Counts are parallel slices.
type SalaryDistribution struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// XPYear is one point of the per-experience-year salary trend. Nil numeric
// fields mark years with no qualifying records; the chart gaps rather than
// interpolates.
type XPYear struct {
	Year        int  `json:"year"`
	MeanBase    *int `json:"meanBase"`
	MedianBase  *int `json:"medianBase"`
	MeanTotal   *int `json:"meanTotal"`
	MedianTotal *int `json:"medianTotal"`
}

// BenefitStat is the share of filtered respondents matching one benefit
// keyword group.
type BenefitStat struct {
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
}

// SectorStat is the respondent count for one sector label.
type SectorStat struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RegionStat is the salary rollup for one normalized region, only ever
// published with Count >= anonymityFloor.
type RegionStat struct {
	Avg         int `json:"avg"`
	Median      int `json:"median"`
	AvgTotal    int `json:"avgTotal"`
	MedianTotal int `json:"medianTotal"`
	Count       int `json:"count"`
}

// Anecdote is one free-text comment with just enough context to read it.
type Anecdote struct {
	Conseil    string `json:"conseil"`
	Poste      string `json:"poste"`
	Secteur    string `json:"secteur"`
	Experience int    `json:"experience"`
}

// FilterOption is one dropdown option with its leave-one-out count.
type FilterOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Results is the full payload served to the dashboard for one query.
type Results struct {
	Stats              Overview                  `json:"stats"`
	SalaryDistribution SalaryDistribution        `json:"salaryDistribution"`
	XPByYear           []XPYear                  `json:"xpByYear"`
	Benefits           []BenefitStat             `json:"benefits"`
	Sectors            []SectorStat              `json:"sectors"`
	MapRegions         map[string]RegionStat     `json:"mapRegions"`
	Anecdotes          []Anecdote                `json:"anecdotes"`
	Filters            map[string][]FilterOption `json:"filters"`
}
