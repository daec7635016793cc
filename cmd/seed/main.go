// Command seed writes a deterministic demo snapshot set into the data
// directory so the dashboard runs without a real HRIS/CRM/LRS export.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"enableboard/internal/model"
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data dir: %v", err)
	}

	rng := rand.New(rand.NewSource(20260101))

	geos := []string{"NA", "EMEA", "LATAM", "APAC"}
	managers := []string{"D. Rossi", "K. Tanaka", "A. Mbeki"}
	roles := []string{"AE", "SE", "AM"}

	names := []string{
		"Mia Chen", "Liam Osei", "Sofia Alvarez", "Noah Petrov",
		"Ava Lindqvist", "Ethan Park", "Isabela Costa", "Lucas Meyer",
		"Priya Nair", "Tomas Herrera", "Hana Suzuki", "Owen Gallagher",
	}

	people := make([]model.Person, 0, len(names))
	crm := make([]model.CrmAggregate, 0, len(names))
	learning := model.LearningAggregateFile{}
	for i, name := range names {
		pid := fmt.Sprintf("p%03d", i+1)
		people = append(people, model.Person{
			PersonID:    pid,
			Name:        name,
			Geo:         geos[i%len(geos)],
			ManagerName: managers[i%len(managers)],
			RoleType:    roles[i%len(roles)],
		})

		// Strength ramps with index so the cohort split is visible in demos.
		strength := 0.25 + 0.06*float64(i)
		crm = append(crm, model.CrmAggregate{
			PersonID:         pid,
			PipelineCoverage: 1.0 + strength*3.0,
			StalledRatio:     clampRatio(0.6 - strength*0.5),
			NewOppsLast30:    float64(1 + i/2),
			WinRate:          clampRatio(0.1 + strength*0.5),
			AvgCycleDays:     float64(70 - i*3),
			Meddpicc:         meddpiccAt(strength, rng),
			ValueCo: model.ValueCo{
				BusinessCaseRate:      clampRatio(strength),
				QuantifiedImpactRate:  clampRatio(strength - 0.1),
				ExecMeetings90d:       float64(i % 9),
				MutualSuccessPlanRate: clampRatio(strength - 0.05),
			},
			Hygiene: model.Hygiene{
				NextStepFilledPct:   clampRatio(strength + 0.2),
				NextMeetingSetPct:   clampRatio(strength + 0.1),
				StageDatePresentPct: clampRatio(strength + 0.25),
				ForecastCatSetPct:   clampRatio(strength),
				CloseDateValidPct:   clampRatio(strength + 0.15),
			},
		})

		// Roughly half the population has a legacy learning rollup.
		if i%2 == 0 {
			learning.Consumption = append(learning.Consumption, model.LegacyLearningAggregate{
				PersonID:           pid,
				Completions:        float64(1 + i%8),
				Minutes:            float64(60 + i*55),
				RecencyDays:        float64(3 + (11-i)*4),
				AssessmentScoreAvg: 45 + float64(i)*4.5,
				Certifications:     float64(i % 4),
			})
		}
	}

	catalog := demoCatalog()
	events := demoEvents(people, catalog, rng)

	write(dataDir, "hris.json", people)
	write(dataDir, "crm_agg.json", crm)
	write(dataDir, "lrs.json", learning)
	write(dataDir, "lrs_catalog.json", catalog)
	write(dataDir, "lrs_activity_events.json", events)

	fmt.Printf("Wrote demo snapshots for %d people, %d assets, %d events to %s\n",
		len(people), len(catalog), len(events), dataDir)
}

func demoCatalog() []model.CatalogAsset {
	return []model.CatalogAsset{
		{AssetID: "a001", Title: "Territory Planning Deep Dive", Lever: model.LeverPipelineDiscipline, ImpactScore: 30},
		{AssetID: "a002", Title: "Prospecting Cadences That Convert", Lever: model.LeverPipelineDiscipline, ImpactScore: 20},
		{AssetID: "a003", Title: "Pipeline Hygiene Checklist", Lever: model.LeverPipelineDiscipline, ImpactScore: 10, IsFluff: true},
		{AssetID: "a004", Title: "MEDDPICC Masterclass", Lever: model.LeverDealExecution, ImpactScore: 35},
		{AssetID: "a005", Title: "Negotiation Under Procurement Pressure", Lever: model.LeverDealExecution, ImpactScore: 25},
		{AssetID: "a006", Title: "Win Story Highlight Reel", Lever: model.LeverDealExecution, ImpactScore: 5, IsFluff: true},
		{AssetID: "a007", Title: "Building a Quantified Business Case", Lever: model.LeverValueCoCreation, ImpactScore: 30},
		{AssetID: "a008", Title: "Exec Sponsorship Playbook", Lever: model.LeverValueCoCreation, ImpactScore: 20},
		{AssetID: "a009", Title: "Onboarding Certification Path", Lever: model.LeverCapabilityUptake, ImpactScore: 30},
		{AssetID: "a010", Title: "Product Release Update", Lever: model.LeverCapabilityUptake, ImpactScore: 10},
		{AssetID: "a011", Title: "CRM Field Standards", Lever: model.LeverDataHygiene, ImpactScore: 25},
		{AssetID: "a012", Title: "Forecast Category Drill", Lever: model.LeverDataHygiene, ImpactScore: 15},
	}
}

func demoEvents(people []model.Person, catalog []model.CatalogAsset, rng *rand.Rand) []model.ActivityEvent {
	now := time.Now()
	events := make([]model.ActivityEvent, 0, 256)
	for i, p := range people {
		// Stronger reps (higher index) consume more of the catalog.
		appetite := 2 + i/2
		for j := 0; j < appetite && j < len(catalog); j++ {
			asset := catalog[(i+j)%len(catalog)]
			daysAgo := 1 + rng.Intn(150)
			events = append(events, model.ActivityEvent{
				PersonID:  p.PersonID,
				AssetID:   asset.AssetID,
				Date:      model.EventDate{Time: now.AddDate(0, 0, -daysAgo)},
				Completed: rng.Float64() < 0.3+0.05*float64(i),
				Minutes:   float64(5 + rng.Intn(40)),
				Title:     asset.Title,
				Lever:     asset.Lever,
			})
		}
	}
	return events
}

func meddpiccAt(strength float64, rng *rand.Rand) model.Meddpicc {
	pct := func() float64 { return clampRatio(strength + (rng.Float64()-0.5)*0.2) }
	return model.Meddpicc{
		MetricsPct:          pct(),
		EconBuyerPct:        pct(),
		DecisionCriteriaPct: pct(),
		DecisionProcessPct:  pct(),
		PaperProcessPct:     pct(),
		IdentifyPainPct:     pct(),
		ChampionPct:         pct(),
		CompetitionPct:      pct(),
	}
}

func clampRatio(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func write(dataDir, name string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, name), data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", name, err)
	}
}
