// Package scoring holds the deterministic arithmetic that turns raw
// per-person records into lever scores, cohorts, enablement coverage, and
// content lift. Everything here is a pure function of its inputs.
package scoring

import (
	"math"

	"enableboard/internal/model"
)

// ScoreSet maps each of the five levers to an integer score in [0,100].
type ScoreSet map[string]int

// Calculator computes lever scores under a fixed weighting.
type Calculator struct {
	weights ScoreWeights
}

// NewCalculator creates a calculator with the given weights.
func NewCalculator(w ScoreWeights) *Calculator {
	return &Calculator{weights: w}
}

// ComputeScores derives the five lever scores from a person's CRM row and
// legacy learning row. Either row may be nil; missing inputs contribute 0,
// they never error.
func (c *Calculator) ComputeScores(crm *model.CrmAggregate, legacy *model.LegacyLearningAggregate) ScoreSet {
	s := ScoreSet{
		model.LeverPipelineDiscipline: 0,
		model.LeverDealExecution:      0,
		model.LeverValueCoCreation:    0,
		model.LeverCapabilityUptake:   0,
		model.LeverDataHygiene:        0,
	}

	if crm != nil {
		w := c.weights

		coverage := clampTerm(crm.PipelineCoverage / pipelineCoverageTarget * 100)
		stalled := clampTerm((1 - crm.StalledRatio) * 100)
		newOpps := clampTerm(crm.NewOppsLast30 / newOppsTarget * 100)
		s[model.LeverPipelineDiscipline] = clamp(w.Pipeline.Coverage*coverage + w.Pipeline.Stalled*stalled + w.Pipeline.NewOpps*newOpps)

		win := clampTerm(crm.WinRate * 100)
		cycle := clampTerm(100 - (crm.AvgCycleDays-cycleBreakEvenDays)*cyclePenaltyPerDay)
		m := crm.Meddpicc
		meddpicc := clampTerm((m.MetricsPct + m.EconBuyerPct + m.DecisionCriteriaPct + m.DecisionProcessPct +
			m.PaperProcessPct + m.IdentifyPainPct + m.ChampionPct + m.CompetitionPct) / 8 * 100)
		s[model.LeverDealExecution] = clamp(w.Execution.Win*win + w.Execution.Cycle*cycle + w.Execution.Meddpicc*meddpicc)

		v := crm.ValueCo
		bc := clampTerm(v.BusinessCaseRate * 100)
		qi := clampTerm(v.QuantifiedImpactRate * 100)
		execMtg := clampTerm(v.ExecMeetings90d / execMeetingsTarget * 100)
		msp := clampTerm(v.MutualSuccessPlanRate * 100)
		s[model.LeverValueCoCreation] = clamp(w.ValueCo.BusinessCase*bc + w.ValueCo.QuantifiedImpact*qi + w.ValueCo.ExecMeetings*execMtg + w.ValueCo.MutualPlan*msp)

		h := crm.Hygiene
		s[model.LeverDataHygiene] = clamp((h.NextStepFilledPct + h.NextMeetingSetPct + h.StageDatePresentPct +
			h.ForecastCatSetPct + h.CloseDateValidPct) / 5 * 100)
	}

	// Legacy Capability Uptake path. When the row is absent the lever stays 0
	// and the coverage overlay supplies the rendered value instead.
	if legacy != nil {
		w := c.weights.Uptake
		comp := clampTerm(legacy.Completions / completionsTarget * 100)
		minutes := clampTerm(legacy.Minutes / minutesTarget * 100)
		recency := clampTerm(100 - legacy.RecencyDays*recencyPenaltyPerDay)
		assess := clampTerm(legacy.AssessmentScoreAvg)
		certs := clampTerm(legacy.Certifications * certPoints)
		s[model.LeverCapabilityUptake] = clamp(w.Completions*comp + w.Minutes*minutes + w.Recency*recency + w.Assessment*assess + w.Certs*certs)
	}

	return s
}

// Composite is the rounded mean of the five lever scores.
func Composite(s ScoreSet) int {
	sum := 0
	for _, lever := range model.Levers {
		sum += s[lever]
	}
	return int(math.Round(float64(sum) / float64(len(model.Levers))))
}

// clampTerm bounds a sub-term to [0,100] before weighting.
func clampTerm(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// clamp rounds a weighted sum to an integer in [0,100].
func clamp(v float64) int {
	return int(math.Max(0, math.Min(100, math.Round(v))))
}
