package scoring

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"enableboard/internal/model"
)

// RankedPerson is one member of a ranked population.
type RankedPerson struct {
	Person    model.Person
	Scores    ScoreSet
	Composite int
}

// CohortRanking is the population-level view: everyone sorted ascending by
// composite plus the derived top/bottom percentile groups.
type CohortRanking struct {
	Sorted     []RankedPerson
	Top        []RankedPerson
	Bottom     []RankedPerson
	CohortSize int

	Levers          map[string]model.LeverStat
	CompositeAll    int
	CompositeTop    int
	CompositeBottom int
}

// cohortFraction sizes the top/bottom groups. The group is never empty even
// when the population is too small for a true 20% cut.
const cohortFraction = 0.2

// RankCohort sorts a population by composite and derives the top/bottom
// groups and per-lever averages. The sort is stable: ties keep input order.
// For n=1 the top and bottom groups are the same single person and every gap
// is 0.
func RankCohort(people []model.Person, lookup func(personID string) ScoreSet) CohortRanking {
	ranked := make([]RankedPerson, 0, len(people))
	for _, p := range people {
		s := lookup(p.PersonID)
		ranked = append(ranked, RankedPerson{Person: p, Scores: s, Composite: Composite(s)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Composite < ranked[j].Composite })

	n := len(ranked)
	k := int(math.Max(1, math.Floor(float64(n)*cohortFraction)))
	if k > n {
		k = n
	}

	var top, bottom []RankedPerson
	if n > 0 {
		bottom = ranked[:k]
		top = ranked[n-k:]
	}

	levers := make(map[string]model.LeverStat, len(model.Levers))
	for _, lever := range model.Levers {
		avgTop := roundedMean(leverValues(top, lever))
		avgBottom := roundedMean(leverValues(bottom, lever))
		gap := avgTop - avgBottom
		if gap < 0 {
			// Bottom outperforming top on one lever reports 0, not negative.
			gap = 0
		}
		levers[lever] = model.LeverStat{
			AvgAll:         roundedMean(leverValues(ranked, lever)),
			AvgTop:         avgTop,
			AvgBottom:      avgBottom,
			GapTopVsBottom: gap,
		}
	}

	return CohortRanking{
		Sorted:          ranked,
		Top:             top,
		Bottom:          bottom,
		CohortSize:      k,
		Levers:          levers,
		CompositeAll:    roundedMean(compositeValues(ranked)),
		CompositeTop:    roundedMean(compositeValues(top)),
		CompositeBottom: roundedMean(compositeValues(bottom)),
	}
}

// TopIDs returns the person ids of the top group.
func (r CohortRanking) TopIDs() map[string]bool {
	return idSet(r.Top)
}

// BottomIDs returns the person ids of the bottom group.
func (r CohortRanking) BottomIDs() map[string]bool {
	return idSet(r.Bottom)
}

func idSet(group []RankedPerson) map[string]bool {
	ids := make(map[string]bool, len(group))
	for _, rp := range group {
		ids[rp.Person.PersonID] = true
	}
	return ids
}

func leverValues(group []RankedPerson, lever string) []float64 {
	vals := make([]float64, 0, len(group))
	for _, rp := range group {
		vals = append(vals, float64(rp.Scores[lever]))
	}
	return vals
}

func compositeValues(group []RankedPerson) []float64 {
	vals := make([]float64, 0, len(group))
	for _, rp := range group {
		vals = append(vals, float64(rp.Composite))
	}
	return vals
}

// roundedMean is the rounding rule used for every reported average: round of
// the arithmetic mean, with empty input yielding 0 instead of dividing by
// zero.
func roundedMean(vals []float64) int {
	if len(vals) == 0 {
		return 0
	}
	m, err := stats.Mean(vals)
	if err != nil {
		return 0
	}
	return int(math.Round(m))
}
