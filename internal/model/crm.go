package model

// Meddpicc holds the eight MEDDPICC adoption percentages, each 0-1.
type Meddpicc struct {
	MetricsPct          float64 `json:"metrics_pct"`
	EconBuyerPct        float64 `json:"econ_buyer_pct"`
	DecisionCriteriaPct float64 `json:"decision_criteria_pct"`
	DecisionProcessPct  float64 `json:"decision_process_pct"`
	PaperProcessPct     float64 `json:"paper_process_pct"`
	IdentifyPainPct     float64 `json:"identify_pain_pct"`
	ChampionPct         float64 `json:"champion_pct"`
	CompetitionPct      float64 `json:"competition_pct"`
}

// ValueCo holds value co-creation metrics for the period.
type ValueCo struct {
	BusinessCaseRate      float64 `json:"business_case_rate"`
	QuantifiedImpactRate  float64 `json:"quantified_impact_rate"`
	ExecMeetings90d       float64 `json:"exec_meetings_90d"`
	MutualSuccessPlanRate float64 `json:"mutual_success_plan_rate"`
}

// Hygiene holds the five CRM field-hygiene percentages, each 0-1.
type Hygiene struct {
	NextStepFilledPct   float64 `json:"next_step_filled_pct"`
	NextMeetingSetPct   float64 `json:"next_meeting_set_pct"`
	StageDatePresentPct float64 `json:"stage_date_present_pct"`
	ForecastCatSetPct   float64 `json:"forecast_cat_set_pct"`
	CloseDateValidPct   float64 `json:"close_date_valid_pct"`
}

// CrmAggregate is one period-aggregated CRM row per person. The row itself is
// optional per person; sub-records absent in the source JSON decode to zero
// values, which the calculator treats as zero contributions.
type CrmAggregate struct {
	PersonID         string   `json:"person_id"`
	PipelineCoverage float64  `json:"pipeline_coverage"`
	StalledRatio     float64  `json:"stalled_ratio"`
	NewOppsLast30    float64  `json:"new_opps_last_30"`
	WinRate          float64  `json:"win_rate"`
	AvgCycleDays     float64  `json:"avg_cycle_days"`
	Meddpicc         Meddpicc `json:"meddpicc"`
	ValueCo          ValueCo  `json:"value_co"`
	Hygiene          Hygiene  `json:"hygiene"`
}
