package stats

import (
	"sort"
	"strings"

	"github.com/alumni-sante/sondage-backend/internal/domain"
	"github.com/alumni-sante/sondage-backend/internal/normalize"
)

// Aggregate computes every statistic block over the already-filtered
// records. The Filters block is not part of it — facet counting needs the
// unfiltered set and the active filter context, see Facets.
func Aggregate(filtered []domain.SurveyResponse) Results {
	return Results{
		Stats:              overview(filtered),
		SalaryDistribution: distribution(filtered),
		XPByYear:           xpTrend(filtered),
		Benefits:           benefits(filtered),
		Sectors:            sectors(filtered),
		MapRegions:         mapRegions(filtered),
		Anecdotes:          anecdotes(filtered),
	}
}

// overview computes the headline mean/median over base salary and over
// base+bonus. Records with an unparseable salary are excluded from both
// series but still counted in Count.
func overview(filtered []domain.SurveyResponse) Overview {
	var base, total []int
	for _, r := range filtered {
		b := normalize.ParseSalaryRange(r.SalaireBrut)
		if b <= 0 {
			continue
		}
		base = append(base, b)
		total = append(total, b+normalize.ParsePrime(r.Primes))
	}

	baseStats := Summarize(base)
	totalStats := Summarize(total)

	return Overview{
		Mean:        baseStats.Mean,
		Median:      baseStats.Median,
		MeanTotal:   totalStats.Mean,
		MedianTotal: totalStats.Median,
		Count:       len(filtered),
	}
}

func distribution(filtered []domain.SurveyResponse) SalaryDistribution {
	counts := make([]int, len(SalaryBrackets))
	for i, bracket := range SalaryBrackets {
		want := normalize.SalaryLabel(bracket)
		for _, r := range filtered {
			if normalize.SalaryLabel(r.SalaireBrut) == want {
				counts[i]++
			}
		}
	}
	return SalaryDistribution{Labels: SalaryBrackets, Counts: counts}
}

// xpTrend emits one point per experience year from 0 to the observed
// maximum. Years with no parseable-salary records get nil fields.
func xpTrend(filtered []domain.SurveyResponse) []XPYear {
	type series struct {
		base  []int
		total []int
	}

	byYear := map[int]*series{}
	maxXP := 0
	for _, r := range filtered {
		xp := r.Experience
		if xp > maxXP {
			maxXP = xp
		}
		s := byYear[xp]
		if s == nil {
			s = &series{}
			byYear[xp] = s
		}
		b := normalize.ParseSalaryRange(r.SalaireBrut)
		if b > 0 {
			s.base = append(s.base, b)
			s.total = append(s.total, b+normalize.ParsePrime(r.Primes))
		}
	}

	out := make([]XPYear, 0, maxXP+1)
	for year := 0; year <= maxXP; year++ {
		point := XPYear{Year: year}
		if s := byYear[year]; s != nil {
			point.MeanBase, point.MedianBase = SummarizeOrNil(s.base)
			point.MeanTotal, point.MedianTotal = SummarizeOrNil(s.total)
		}
		out = append(out, point)
	}
	return out
}

func benefits(filtered []domain.SurveyResponse) []BenefitStat {
	out := []BenefitStat{}
	if len(filtered) == 0 {
		return out
	}

	for _, group := range benefitGroups {
		matches := 0
		for _, r := range filtered {
			if r.Avantages == "" {
				continue
			}
			text := strings.ToLower(r.Avantages)
			for _, term := range group.Terms {
				if strings.Contains(text, term) {
					matches++
					break
				}
			}
		}
		out = append(out, BenefitStat{
			Label:      group.Label,
			Percentage: roundDiv(matches*100, len(filtered)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Percentage > out[j].Percentage })
	return out
}

func sectors(filtered []domain.SurveyResponse) []SectorStat {
	counts := map[string]int{}
	var order []string // first-seen order keeps ties deterministic
	for _, r := range filtered {
		label := r.Secteur
		if label == "" {
			label = normalize.NotProvided
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	out := make([]SectorStat, 0, len(order))
	for _, label := range order {
		out = append(out, SectorStat{Label: label, Count: counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// mapRegions groups parseable salaries by normalized region name and
// suppresses every group below the anonymity floor. The floor is the one
// hard rule of this package: a region with too few respondents must not be
// disclosed no matter who asks.
func mapRegions(filtered []domain.SurveyResponse) map[string]RegionStat {
	type series struct {
		salaries []int
		totals   []int
	}

	groups := map[string]*series{}
	for _, r := range filtered {
		if r.Departement == "" {
			continue
		}
		key := normalize.RegionKey(r.Departement)
		s := groups[key]
		if s == nil {
			s = &series{}
			groups[key] = s
		}
		salary := normalize.ParseSalaryRange(r.SalaireBrut)
		if salary > 0 {
			s.salaries = append(s.salaries, salary)
			s.totals = append(s.totals, salary+normalize.ParsePrime(r.Primes))
		}
	}

	out := map[string]RegionStat{}
	for key, s := range groups {
		if len(s.salaries) < anonymityFloor {
			continue
		}
		base := Summarize(s.salaries)
		total := Summarize(s.totals)
		out[key] = RegionStat{
			Avg:         base.Mean,
			Median:      base.Median,
			AvgTotal:    total.Mean,
			MedianTotal: total.Median,
			Count:       len(s.salaries),
		}
	}
	return out
}

func anecdotes(filtered []domain.SurveyResponse) []Anecdote {
	out := []Anecdote{}
	for _, r := range filtered {
		conseil := strings.TrimSpace(r.Conseil)
		if conseil == "" {
			continue
		}
		out = append(out, Anecdote{
			Conseil:    conseil,
			Poste:      r.Poste,
			Secteur:    r.Secteur,
			Experience: r.Experience,
		})
	}
	return out
}
