package model

import (
	"strings"
	"time"
)

// LegacyLearningAggregate is the legacy LRS rollup used for the Capability
// Uptake lever when present. Presence is optional and independent of the CRM
// row.
type LegacyLearningAggregate struct {
	PersonID           string  `json:"person_id"`
	Completions        float64 `json:"completions"`
	Minutes            float64 `json:"minutes"`
	RecencyDays        float64 `json:"recency_days"`
	AssessmentScoreAvg float64 `json:"assessment_score_avg"`
	Certifications     float64 `json:"certifications"`
}

// LearningAggregateFile mirrors the optional lrs.json snapshot.
type LearningAggregateFile struct {
	Consumption []LegacyLearningAggregate `json:"consumption"`
}

// CatalogAsset is one enablement content item. Fluff assets are excluded from
// every coverage numerator and denominator.
type CatalogAsset struct {
	AssetID     string  `json:"asset_id"`
	Title       string  `json:"title"`
	Lever       string  `json:"lever"`
	ImpactScore float64 `json:"impact_score"`
	IsFluff     bool    `json:"is_fluff"`
}

// EventDate tolerates both RFC 3339 timestamps and bare dates in the event
// log. Unparseable dates decode to the zero time rather than failing the
// whole snapshot.
type EventDate struct {
	time.Time
}

func (d *EventDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	d.Time = time.Time{}
	return nil
}

// ActivityEvent is one row of the append-only LRS activity log. Title and
// lever are denormalized for display.
type ActivityEvent struct {
	PersonID  string    `json:"person_id"`
	AssetID   string    `json:"asset_id"`
	Date      EventDate `json:"date"`
	Completed bool      `json:"completed"`
	Minutes   float64   `json:"minutes"`
	Title     string    `json:"title"`
	Lever     string    `json:"lever"`
}
