package scoring

import (
	"testing"

	"enableboard/internal/model"
)

func TestComputeScoresNilInputs(t *testing.T) {
	calc := NewCalculator(DefaultScoreWeights())
	s := calc.ComputeScores(nil, nil)

	for _, lever := range model.Levers {
		if s[lever] != 0 {
			t.Errorf("lever %s = %d, want 0 for missing inputs", lever, s[lever])
		}
	}
	if got := Composite(s); got != 0 {
		t.Errorf("Composite = %d, want 0", got)
	}
}

func TestComputeScoresKnownInputs(t *testing.T) {
	calc := NewCalculator(DefaultScoreWeights())

	crm := &model.CrmAggregate{
		PersonID:         "p001",
		PipelineCoverage: 3.5,
		StalledRatio:     0,
		NewOppsLast30:    6,
		WinRate:          0.5,
		AvgCycleDays:     30,
		Meddpicc: model.Meddpicc{
			MetricsPct: 0.5, EconBuyerPct: 0.5, DecisionCriteriaPct: 0.5, DecisionProcessPct: 0.5,
			PaperProcessPct: 0.5, IdentifyPainPct: 0.5, ChampionPct: 0.5, CompetitionPct: 0.5,
		},
		ValueCo: model.ValueCo{
			BusinessCaseRate:      1,
			QuantifiedImpactRate:  0.5,
			ExecMeetings90d:       4,
			MutualSuccessPlanRate: 1,
		},
		Hygiene: model.Hygiene{
			NextStepFilledPct: 0.8, NextMeetingSetPct: 0.8, StageDatePresentPct: 0.8,
			ForecastCatSetPct: 0.8, CloseDateValidPct: 0.8,
		},
	}
	legacy := &model.LegacyLearningAggregate{
		PersonID:           "p001",
		Completions:        8,
		Minutes:            600,
		RecencyDays:        10,
		AssessmentScoreAvg: 70,
		Certifications:     2,
	}

	s := calc.ComputeScores(crm, legacy)

	want := map[string]int{
		model.LeverPipelineDiscipline: 100,
		model.LeverDealExecution:      65,
		model.LeverValueCoCreation:    75,
		model.LeverCapabilityUptake:   85,
		model.LeverDataHygiene:        80,
	}
	for lever, w := range want {
		if s[lever] != w {
			t.Errorf("lever %s = %d, want %d", lever, s[lever], w)
		}
	}
	if got := Composite(s); got != 81 {
		t.Errorf("Composite = %d, want 81", got)
	}
}

func TestComputeScoresClampsSubTerms(t *testing.T) {
	calc := NewCalculator(DefaultScoreWeights())

	// Every sub-term far beyond its target must clamp to 100 before weighting,
	// so the lever tops out at 100 instead of overflowing.
	crm := &model.CrmAggregate{
		PipelineCoverage: 50,
		StalledRatio:     -3,
		NewOppsLast30:    100,
	}
	s := calc.ComputeScores(crm, nil)
	if s[model.LeverPipelineDiscipline] != 100 {
		t.Errorf("Pipeline Discipline = %d, want 100", s[model.LeverPipelineDiscipline])
	}

	// A glacial cycle pushes the cycle term negative; it must floor at 0, not
	// drag the weighted sum below what the other terms earn.
	crm = &model.CrmAggregate{
		WinRate:      1,
		AvgCycleDays: 200,
	}
	s = calc.ComputeScores(crm, nil)
	// 0.4*100 (win) + 0.3*0 (cycle) + 0.3*0 (meddpicc) = 40
	if s[model.LeverDealExecution] != 40 {
		t.Errorf("Deal Execution = %d, want 40", s[model.LeverDealExecution])
	}
}

func TestComputeScoresIdempotent(t *testing.T) {
	calc := NewCalculator(DefaultScoreWeights())
	crm := &model.CrmAggregate{PipelineCoverage: 2.1, WinRate: 0.33, AvgCycleDays: 47}
	legacy := &model.LegacyLearningAggregate{Completions: 3, Minutes: 240, RecencyDays: 21, AssessmentScoreAvg: 61, Certifications: 1}

	first := calc.ComputeScores(crm, legacy)
	second := calc.ComputeScores(crm, legacy)
	for _, lever := range model.Levers {
		if first[lever] != second[lever] {
			t.Errorf("lever %s changed between runs: %d then %d", lever, first[lever], second[lever])
		}
	}
}

func TestComposite(t *testing.T) {
	s := ScoreSet{
		model.LeverPipelineDiscipline: 80,
		model.LeverDealExecution:      60,
		model.LeverValueCoCreation:    40,
		model.LeverCapabilityUptake:   100,
		model.LeverDataHygiene:        20,
	}
	if got := Composite(s); got != 60 {
		t.Errorf("Composite = %d, want 60", got)
	}
}
