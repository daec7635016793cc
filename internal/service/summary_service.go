package service

import (
	"context"
	"encoding/json"
	"fmt"

	"enableboard/internal/config"
	"enableboard/internal/dataset"
	"enableboard/internal/model"
	"enableboard/internal/scope"
	"enableboard/internal/scoring"
)

const summarySystemPrompt = `You are a VP of Enablement addressing executives.
Write a crisp 2–3 sentence summary:
1) Say what the selection is (person or cohort) and the story (strengths/gaps).
2) Compare performance vs enablement only if it supports the story (alignment or misalignment).
3) End with 1 clear recommended action for impact (coach/invest/remove/redirect), not a list.
Do NOT invent. Do not restate too many numbers; pick only those that support the narrative.`

// Signal thresholds for performance vs enablement alignment.
const (
	perfLowThreshold   = 65
	perfHighThreshold  = 75
	enablementCoverage = 30
)

// LeverSignal classifies one lever's performance average against its
// enablement coverage.
func LeverSignal(perf, enab int) string {
	switch {
	case perf < perfLowThreshold && enab < enablementCoverage:
		return "under-enabled"
	case perf < perfLowThreshold:
		return "training-ineffective-or-misaligned"
	case perf >= perfHighThreshold && enab >= enablementCoverage:
		return "working"
	default:
		return "neutral"
	}
}

// SummaryRequest is the body for POST /v1/summary
type SummaryRequest struct {
	Geo      string `json:"geo"`
	Manager  string `json:"manager"`
	PersonID string `json:"personId"`
}

// leverSummaryLine is one row of the summary brief.
type leverSummaryLine struct {
	Lever                string `json:"lever"`
	PerformanceAvg       int    `json:"performance_avg"`
	EnablementImpactCovg int    `json:"enablement_impact_covg"`
	Signal               string `json:"signal"`
}

// summaryBrief is the selection-level document sent to the narrator.
type summaryBrief struct {
	Selection struct {
		Label  string `json:"label"`
		Counts struct {
			People int `json:"people"`
			TopK   int `json:"top_k"`
		} `json:"counts"`
	} `json:"selection"`
	Composite struct {
		All    int `json:"all"`
		Top    int `json:"top"`
		Bottom int `json:"bottom"`
	} `json:"composite"`
	Levers []leverSummaryLine `json:"levers"`
}

// SummaryService produces the short executive summary shown above the radar
// chart: per-lever performance vs enablement with an alignment signal.
type SummaryService struct {
	loader   *dataset.Loader
	calc     *scoring.Calculator
	narrator Narrator
	cfg      *config.Config
}

// NewSummaryService creates a summary service
func NewSummaryService(loader *dataset.Loader, calc *scoring.Calculator, narrator Narrator, cfg *config.Config) *SummaryService {
	return &SummaryService{
		loader:   loader,
		calc:     calc,
		narrator: narrator,
		cfg:      cfg,
	}
}

// Summarize returns the 2–3 sentence executive summary for a selection.
func (s *SummaryService) Summarize(ctx context.Context, req SummaryRequest) (string, error) {
	snap, err := s.loader.LoadSnapshot(ctx)
	if err != nil {
		return "", err
	}

	sc := scope.Resolved{Geo: req.Geo, Manager: req.Manager, PersonID: req.PersonID}.Normalized()
	people := sc.Apply(snap.People)
	if len(people) == 0 {
		return "No people match the current selection.", nil
	}

	crmBy := snap.CRMByPerson()
	lrsBy := snap.LearningByPerson()
	ranking := scoring.RankCohort(people, func(personID string) scoring.ScoreSet {
		return s.calc.ComputeScores(crmBy[personID], lrsBy[personID])
	})

	personIDs := make([]string, 0, len(people))
	for _, p := range people {
		personIDs = append(personIDs, p.PersonID)
	}
	coverage := scoring.Coverage(personIDs, snap.Catalog, snap.Events, scoring.CoverageOptions{
		Model:         scoring.CreditModel(s.cfg.CoverageModel),
		WindowDays:    s.cfg.SummaryWindowDays,
		MinVisiblePct: s.cfg.MinVisiblePct,
	})

	var brief summaryBrief
	brief.Selection.Label = sc.Label(people)
	brief.Selection.Counts.People = len(people)
	brief.Selection.Counts.TopK = ranking.CohortSize
	brief.Composite.All = ranking.CompositeAll
	brief.Composite.Top = ranking.CompositeTop
	brief.Composite.Bottom = ranking.CompositeBottom
	for _, lever := range model.Levers {
		perf := ranking.Levers[lever].AvgAll
		enab := coverage[lever]
		brief.Levers = append(brief.Levers, leverSummaryLine{
			Lever:                lever,
			PerformanceAvg:       perf,
			EnablementImpactCovg: enab,
			Signal:               LeverSignal(perf, enab),
		})
	}

	data, err := json.MarshalIndent(brief, "", "  ")
	if err != nil {
		return "", err
	}
	userPrompt := fmt.Sprintf("DATA BRIEF (selection-level):\n%s\n\nWrite the summary now. Avoid buzzwords. Action must be specific.", data)

	summary, err := s.narrator.Narrate(ctx, summarySystemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("summary narration: %w", err)
	}
	return summary, nil
}
