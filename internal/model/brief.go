package model

// BriefFilters echoes the resolved scope back to the narrator and the caller.
type BriefFilters struct {
	Geo          string `json:"geo"`
	Manager      string `json:"manager"`
	PersonID     string `json:"personId"`
	WindowDays   int    `json:"window_days,omitempty"`
	VisibleCount int    `json:"visible_count"`
}

// BriefComposites summarizes composite scores for the whole selection and the
// top/bottom percentile cohorts.
type BriefComposites struct {
	All        int `json:"all"`
	Top        int `json:"top"`
	Bottom     int `json:"bottom"`
	CohortSize int `json:"cohort_size"`
}

// LeverStat holds per-lever averages across all/top/bottom plus the
// top-vs-bottom gap. The gap is floored at 0; downstream prose depends on it
// never going negative.
type LeverStat struct {
	AvgAll         int `json:"avg_all"`
	AvgTop         int `json:"avg_top"`
	AvgBottom      int `json:"avg_bottom"`
	GapTopVsBottom int `json:"gap_top_vs_bottom"`
}

// RepLine is one bounded individual record the narrator may cite by name.
type RepLine struct {
	PersonID  string `json:"person_id"`
	Name      string `json:"name"`
	Manager   string `json:"manager"`
	Geo       string `json:"geo"`
	Role      string `json:"role"`
	Composite int    `json:"composite"`
}

// AssetLift scores how strongly one content asset separates top performers
// from bottom performers.
type AssetLift struct {
	AssetID string  `json:"asset_id"`
	Title   string  `json:"title"`
	Lever   string  `json:"lever"`
	Lift    float64 `json:"lift"`
}

// CohortSizes reports the top/bottom group sizes used for the lift ranking.
type CohortSizes struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// ContentLift ranks the assets that most and least differentiate top from
// bottom performers.
type ContentLift struct {
	Winners     []AssetLift `json:"winners"`
	Laggards    []AssetLift `json:"laggards"`
	CohortSizes CohortSizes `json:"cohortSizes"`
}

// Brief is the compact numeric document handed to the narrative collaborator.
// Keys match the historical dashboard payload so narration prompts stay
// stable.
type Brief struct {
	Filters              BriefFilters         `json:"filters"`
	Composites           BriefComposites      `json:"composites"`
	Levers               map[string]LeverStat `json:"levers"`
	Enablement           map[string]int       `json:"enablement_impact_covg"`
	ContentEffectiveness ContentLift          `json:"content_effectiveness"`
	Reps                 []RepLine            `json:"reps"`
	Note                 string               `json:"note,omitempty"`
}
