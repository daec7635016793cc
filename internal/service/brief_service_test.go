package service

import (
	"testing"

	"enableboard/internal/model"
	"enableboard/internal/scope"
	"enableboard/internal/scoring"
)

func newTestBriefService() *BriefService {
	return NewBriefService(scoring.NewCalculator(scoring.DefaultScoreWeights()), scoring.CreditCompletion, 0)
}

func TestBriefBuildEmptyPopulation(t *testing.T) {
	svc := newTestBriefService()
	snap := testSnapshot(5)

	brief := svc.Build(snap, scope.Resolved{Geo: "APAC"})

	if brief.Note != "no people match the current selection" {
		t.Errorf("Note = %q, want the empty-selection note", brief.Note)
	}
	if brief.Filters.VisibleCount != 0 {
		t.Errorf("VisibleCount = %d, want 0", brief.Filters.VisibleCount)
	}
	if brief.Filters.Geo != "APAC" || brief.Filters.Manager != scope.All {
		t.Errorf("filters = %+v, want normalized echo of the request", brief.Filters)
	}
	if len(brief.Reps) != 0 {
		t.Errorf("Reps = %d entries, want none", len(brief.Reps))
	}
}

func TestBriefBuildOrgWide(t *testing.T) {
	svc := newTestBriefService()
	snap := testSnapshot(12)

	brief := svc.Build(snap, scope.Default())

	if brief.Note != "" {
		t.Errorf("unexpected note %q", brief.Note)
	}
	if brief.Filters.VisibleCount != 12 {
		t.Errorf("VisibleCount = %d, want 12", brief.Filters.VisibleCount)
	}
	if brief.Composites.CohortSize != 2 {
		t.Errorf("CohortSize = %d, want 2", brief.Composites.CohortSize)
	}
	if brief.Composites.Top <= brief.Composites.Bottom {
		t.Errorf("top composite %d should exceed bottom %d", brief.Composites.Top, brief.Composites.Bottom)
	}

	if len(brief.Reps) != maxBriefReps {
		t.Fatalf("Reps = %d entries, want capped at %d", len(brief.Reps), maxBriefReps)
	}
	for i := 1; i < len(brief.Reps); i++ {
		if brief.Reps[i].Composite < brief.Reps[i-1].Composite {
			t.Errorf("reps not ascending at index %d", i)
		}
	}

	for _, lever := range model.Levers {
		if _, ok := brief.Levers[lever]; !ok {
			t.Errorf("lever %s missing from brief", lever)
		}
		if _, ok := brief.Enablement[lever]; !ok {
			t.Errorf("lever %s missing from enablement coverage", lever)
		}
	}
}

func TestBriefBuildSinglePerson(t *testing.T) {
	svc := newTestBriefService()
	snap := testSnapshot(5)

	brief := svc.Build(snap, scope.Resolved{PersonID: "p003"})

	if brief.Filters.VisibleCount != 1 {
		t.Fatalf("VisibleCount = %d, want 1", brief.Filters.VisibleCount)
	}
	if brief.Composites.Top != brief.Composites.Bottom {
		t.Errorf("single person: top %d != bottom %d", brief.Composites.Top, brief.Composites.Bottom)
	}
	for _, lever := range model.Levers {
		if gap := brief.Levers[lever].GapTopVsBottom; gap != 0 {
			t.Errorf("lever %s gap = %d, want 0 for a single person", lever, gap)
		}
	}
}
