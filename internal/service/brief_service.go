package service

import (
	"time"

	"enableboard/internal/dataset"
	"enableboard/internal/model"
	"enableboard/internal/scope"
	"enableboard/internal/scoring"
)

const maxBriefReps = 10

// BriefService assembles the compact numeric brief the narrative collaborator
// receives: composite statistics, per-lever stats, enablement coverage, and
// content lift for one resolved scope.
type BriefService struct {
	calc          *scoring.Calculator
	creditModel   scoring.CreditModel
	minVisiblePct int
}

// NewBriefService creates a brief service
func NewBriefService(calc *scoring.Calculator, creditModel scoring.CreditModel, minVisiblePct int) *BriefService {
	return &BriefService{
		calc:          calc,
		creditModel:   creditModel,
		minVisiblePct: minVisiblePct,
	}
}

// Build computes the brief for a resolved scope over a snapshot. An empty
// resolved population is a valid outcome, not an error: the brief
// short-circuits to a minimal document.
func (s *BriefService) Build(snap *dataset.Snapshot, sc scope.Resolved) *model.Brief {
	sc = sc.Normalized()
	people := sc.Apply(snap.People)

	filters := model.BriefFilters{
		Geo:          sc.Geo,
		Manager:      sc.Manager,
		PersonID:     sc.PersonID,
		WindowDays:   sc.WindowDays,
		VisibleCount: len(people),
	}

	if len(people) == 0 {
		return &model.Brief{
			Filters:    filters,
			Levers:     map[string]model.LeverStat{},
			Enablement: map[string]int{},
			Reps:       []model.RepLine{},
			Note:       "no people match the current selection",
		}
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
		Model:         s.creditModel,
		WindowDays:    sc.WindowDays,
		MinVisiblePct: s.minVisiblePct,
	})

	lift := scoring.ComputeContentLift(ranking, snap.Catalog, snap.Events, sc.WindowDays, time.Time{})

	reps := make([]model.RepLine, 0, maxBriefReps)
	for _, rp := range ranking.Sorted {
		if len(reps) == maxBriefReps {
			break
		}
		reps = append(reps, model.RepLine{
			PersonID:  rp.Person.PersonID,
			Name:      rp.Person.Name,
			Manager:   rp.Person.ManagerName,
			Geo:       rp.Person.Geo,
			Role:      rp.Person.RoleType,
			Composite: rp.Composite,
		})
	}

	return &model.Brief{
		Filters: filters,
		Composites: model.BriefComposites{
			All:        ranking.CompositeAll,
			Top:        ranking.CompositeTop,
			Bottom:     ranking.CompositeBottom,
			CohortSize: ranking.CohortSize,
		},
		Levers:               ranking.Levers,
		Enablement:           coverage,
		ContentEffectiveness: lift,
		Reps:                 reps,
	}
}
