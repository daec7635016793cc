package scoring

import (
	"math"
	"time"

	"enableboard/internal/model"
)

// CreditModel selects how activity earns coverage credit for an asset. The
// two models encode different product semantics (binary completion vs
// partial-credit engagement); a deployment picks one and keeps it, they are
// never blended.
type CreditModel string

const (
	// CreditCompletion grants an asset's full impact score on the first
	// completed event in-window; exposure without completion earns nothing.
	CreditCompletion CreditModel = "completion"

	// CreditDuration grants impact proportionally to minutes spent on the
	// asset, capped at full credit.
	CreditDuration CreditModel = "duration"
)

// DefaultFullCreditMinutes is the duration-credit watch time that earns an
// asset's full impact score.
const DefaultFullCreditMinutes = 30.0

// CoverageOptions configure the coverage computation.
type CoverageOptions struct {
	Model CreditModel // zero value defaults to CreditCompletion

	// WindowDays restricts events to a trailing window; 0 means all history.
	WindowDays int

	// Now anchors the window cut so tests are deterministic; zero value uses
	// the wall clock.
	Now time.Time

	// FullCreditMinutes applies to CreditDuration only; 0 uses the default.
	FullCreditMinutes float64

	// MinVisiblePct is a presentation floor: any nonzero credited sum maps to
	// at least this percentage so real activity never renders as a flat zero
	// ring. Applied after the raw division, before the clamp. 0 disables it.
	MinVisiblePct int
}

// Coverage computes the impact-weighted content coverage per lever, averaged
// across the given people. Fluff assets are excluded from numerator and
// denominator; a lever whose denominator is 0 yields 0 for everyone without
// dividing. Every lever key is always present in the result.
func Coverage(personIDs []string, catalog []model.CatalogAsset, events []model.ActivityEvent, opts CoverageOptions) map[string]int {
	out := make(map[string]int, len(model.Levers))
	for _, lever := range model.Levers {
		out[lever] = 0
	}
	if len(personIDs) == 0 || len(catalog) == 0 {
		return out
	}

	type weighted struct {
		assetID string
		impact  float64
	}
	denom := make(map[string]float64, len(model.Levers))
	assetsByLever := make(map[string][]weighted, len(model.Levers))
	for _, a := range catalog {
		if !model.IsLever(a.Lever) || a.IsFluff {
			continue
		}
		denom[a.Lever] += a.ImpactScore
		assetsByLever[a.Lever] = append(assetsByLever[a.Lever], weighted{assetID: a.AssetID, impact: a.ImpactScore})
	}

	inWindow := windowFilter(opts.WindowDays, opts.Now)

	// Credit earned per asset for each selected person. Completion credit is
	// binary; duration credit accumulates minutes first and converts below.
	credit := make(map[string]map[string]float64, len(personIDs))
	for _, pid := range personIDs {
		credit[pid] = make(map[string]float64)
	}

	modelChoice := opts.Model
	if modelChoice == "" {
		modelChoice = CreditCompletion
	}
	fullCredit := opts.FullCreditMinutes
	if fullCredit <= 0 {
		fullCredit = DefaultFullCreditMinutes
	}

	for _, e := range events {
		byAsset, tracked := credit[e.PersonID]
		if !tracked || !inWindow(e.Date.Time) {
			continue
		}
		switch modelChoice {
		case CreditDuration:
			byAsset[e.AssetID] += e.Minutes
		default:
			if e.Completed {
				byAsset[e.AssetID] = 1
			}
		}
	}

	sums := make(map[string]float64, len(model.Levers))
	for _, pid := range personIDs {
		for _, lever := range model.Levers {
			d := denom[lever]
			if d == 0 {
				continue
			}
			var credited float64
			for _, a := range assetsByLever[lever] {
				c := credit[pid][a.assetID]
				if c == 0 {
					continue
				}
				if modelChoice == CreditDuration {
					credited += math.Min(1, c/fullCredit) * a.impact
				} else {
					credited += a.impact
				}
			}
			pct := int(math.Round(credited / d * 100))
			if credited > 0 && pct < opts.MinVisiblePct {
				pct = opts.MinVisiblePct
			}
			if pct < 0 {
				pct = 0
			} else if pct > 100 {
				pct = 100
			}
			sums[lever] += float64(pct)
		}
	}

	for _, lever := range model.Levers {
		out[lever] = int(math.Round(sums[lever] / float64(len(personIDs))))
	}
	return out
}

// windowFilter returns an event-date predicate for an optional trailing
// window. Events without a parseable date pass the filter; only a date known
// to fall before the cutoff is excluded.
func windowFilter(windowDays int, now time.Time) func(time.Time) bool {
	if windowDays <= 0 {
		return func(time.Time) bool { return true }
	}
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := now.AddDate(0, 0, -windowDays)
	return func(t time.Time) bool {
		return t.IsZero() || !t.Before(cutoff)
	}
}
