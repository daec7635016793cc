package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"enableboard/internal/dataset"
	"enableboard/internal/model"
)

// fakeNarrator records prompts and returns a scripted answer or error.
type fakeNarrator struct {
	answer     string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeNarrator) Narrate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeNarrator) ModelName() string { return "fake-model" }

func testPeople(n int) []model.Person {
	geos := []string{"NA", "EMEA", "LATAM"}
	managers := []string{"D. Rossi", "K. Tanaka"}
	people := make([]model.Person, 0, n)
	for i := 0; i < n; i++ {
		people = append(people, model.Person{
			PersonID:    fmt.Sprintf("p%03d", i+1),
			Name:        fmt.Sprintf("Rep Number%d", i+1),
			Geo:         geos[i%len(geos)],
			ManagerName: managers[i%len(managers)],
			RoleType:    "AE",
		})
	}
	return people
}

// testSnapshot builds an in-memory snapshot where composites ramp with person
// index: only the hygiene lever is populated, so person i scores 10*i on Data
// Hygiene and 2*i composite.
func testSnapshot(n int) *dataset.Snapshot {
	people := testPeople(n)
	crm := make([]model.CrmAggregate, 0, n)
	for i, p := range people {
		pct := 0.1 * float64(i)
		crm = append(crm, model.CrmAggregate{
			PersonID: p.PersonID,
			Hygiene: model.Hygiene{
				NextStepFilledPct:   pct,
				NextMeetingSetPct:   pct,
				StageDatePresentPct: pct,
				ForecastCatSetPct:   pct,
				CloseDateValidPct:   pct,
			},
		})
	}
	catalog := []model.CatalogAsset{
		{AssetID: "a1", Title: "Territory Planning", Lever: model.LeverPipelineDiscipline, ImpactScore: 30},
		{AssetID: "a2", Title: "MEDDPICC Masterclass", Lever: model.LeverDealExecution, ImpactScore: 40},
		{AssetID: "hype", Title: "Kickoff Hype Reel", Lever: model.LeverDealExecution, ImpactScore: 50, IsFluff: true},
	}
	events := []model.ActivityEvent{
		{PersonID: "p001", AssetID: "a1", Date: model.EventDate{Time: time.Now().AddDate(0, 0, -7)}, Completed: true, Minutes: 20, Title: "Territory Planning", Lever: model.LeverPipelineDiscipline},
	}
	if n >= 2 {
		events = append(events, model.ActivityEvent{
			PersonID: fmt.Sprintf("p%03d", n), AssetID: "a2",
			Date: model.EventDate{Time: time.Now().AddDate(0, 0, -3)}, Completed: true, Minutes: 35,
			Title: "MEDDPICC Masterclass", Lever: model.LeverDealExecution,
		})
	}
	return &dataset.Snapshot{People: people, CRM: crm, Catalog: catalog, Events: events}
}

// writeSnapshotDir materializes a snapshot as JSON files for loader-backed
// tests. The optional lrs.json is deliberately omitted.
func writeSnapshotDir(t *testing.T, snap *dataset.Snapshot) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]interface{}{
		"hris.json":                snap.People,
		"crm_agg.json":             snap.CRM,
		"lrs_catalog.json":         snap.Catalog,
		"lrs_activity_events.json": snap.Events,
	}
	for name, v := range files {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
