package scoring

import (
	"math"
	"sort"
	"time"

	"enableboard/internal/model"
)

const liftListSize = 5

// ComputeContentLift ranks non-fluff assets by how strongly their consumption
// separates the top cohort from the bottom cohort. Lift for an asset is
// (top completions + top minutes/10) - (bottom completions + bottom
// minutes/10). Winners are the top five descending, laggards the top five
// ascending. An optional trailing window excludes older events, matching the
// coverage window semantics.
func ComputeContentLift(ranking CohortRanking, catalog []model.CatalogAsset, events []model.ActivityEvent, windowDays int, now time.Time) model.ContentLift {
	topIDs := ranking.TopIDs()
	bottomIDs := ranking.BottomIDs()

	impactful := make(map[string]bool, len(catalog))
	for _, a := range catalog {
		if !a.IsFluff {
			impactful[a.AssetID] = true
		}
	}

	type bucket struct {
		completions int
		minutes     float64
	}
	type assetAgg struct {
		title  string
		lever  string
		top    bucket
		bottom bucket
	}

	inWindow := windowFilter(windowDays, now)

	byAsset := make(map[string]*assetAgg)
	order := make([]string, 0) // first-seen order keeps ties deterministic
	for _, e := range events {
		if !impactful[e.AssetID] || !inWindow(e.Date.Time) {
			continue
		}
		var b *bucket
		agg, ok := byAsset[e.AssetID]
		if !ok {
			agg = &assetAgg{title: e.Title, lever: e.Lever}
			byAsset[e.AssetID] = agg
			order = append(order, e.AssetID)
		}
		switch {
		case topIDs[e.PersonID]:
			b = &agg.top
		case bottomIDs[e.PersonID]:
			b = &agg.bottom
		default:
			continue // mid-pack consumption does not move lift
		}
		if e.Completed {
			b.completions++
		}
		b.minutes += e.Minutes
	}

	lifts := make([]model.AssetLift, 0, len(order))
	for _, assetID := range order {
		agg := byAsset[assetID]
		topLift := float64(agg.top.completions) + agg.top.minutes/10
		bottomLift := float64(agg.bottom.completions) + agg.bottom.minutes/10
		lifts = append(lifts, model.AssetLift{
			AssetID: assetID,
			Title:   agg.title,
			Lever:   agg.lever,
			Lift:    math.Round((topLift-bottomLift)*100) / 100,
		})
	}

	winners := make([]model.AssetLift, len(lifts))
	copy(winners, lifts)
	sort.SliceStable(winners, func(i, j int) bool { return winners[i].Lift > winners[j].Lift })

	laggards := make([]model.AssetLift, len(lifts))
	copy(laggards, lifts)
	sort.SliceStable(laggards, func(i, j int) bool { return laggards[i].Lift < laggards[j].Lift })

	return model.ContentLift{
		Winners:     headLifts(winners),
		Laggards:    headLifts(laggards),
		CohortSizes: model.CohortSizes{Top: ranking.CohortSize, Bottom: ranking.CohortSize},
	}
}

func headLifts(lifts []model.AssetLift) []model.AssetLift {
	if len(lifts) > liftListSize {
		return lifts[:liftListSize]
	}
	return lifts
}
