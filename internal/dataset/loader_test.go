package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const (
	hrisJSON = `[
		{"person_id":"p001","name":"Mia Chen","geo":"NA","manager_name":"D. Rossi","role_type":"AE"},
		{"person_id":"p002","name":"Liam Osei","geo":"EMEA","manager_name":"K. Tanaka","role_type":"SE"}
	]`
	crmJSON     = `[{"person_id":"p001","pipeline_coverage":2.8,"win_rate":0.4}]`
	lrsJSON     = `{"consumption":[{"person_id":"p001","completions":4,"minutes":320}]}`
	catalogJSON = `[{"asset_id":"a1","title":"Territory Planning","lever":"Pipeline Discipline","impact_score":30,"is_fluff":false}]`
	eventsJSON  = `[
		{"person_id":"p001","asset_id":"a1","date":"2026-05-01","completed":true,"minutes":22,"title":"Territory Planning","lever":"Pipeline Discipline"},
		{"person_id":"p001","asset_id":"a1","date":"2026-05-02T10:30:00Z","completed":false,"minutes":5,"title":"Territory Planning","lever":"Pipeline Discipline"},
		{"person_id":"p002","asset_id":"a1","date":"garbage","completed":true,"minutes":8,"title":"Territory Planning","lever":"Pipeline Discipline"}
	]`
)

func writeFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func allFixtures() map[string]string {
	return map[string]string{
		"hris.json":                hrisJSON,
		"crm_agg.json":             crmJSON,
		"lrs.json":                 lrsJSON,
		"lrs_catalog.json":         catalogJSON,
		"lrs_activity_events.json": eventsJSON,
	}
}

func TestLoadSnapshotFromDisk(t *testing.T) {
	dir := writeFixtures(t, allFixtures())
	loader := NewLoader(dir, "")

	snap, err := loader.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.People) != 2 || snap.People[0].Name != "Mia Chen" {
		t.Errorf("People = %+v", snap.People)
	}
	if len(snap.CRM) != 1 || snap.CRM[0].PipelineCoverage != 2.8 {
		t.Errorf("CRM = %+v", snap.CRM)
	}
	if len(snap.Learning.Consumption) != 1 {
		t.Errorf("Learning = %+v", snap.Learning)
	}
	if len(snap.Events) != 3 {
		t.Fatalf("Events = %d, want 3", len(snap.Events))
	}
	// Bare dates and RFC 3339 both parse; garbage decodes to the zero time.
	if snap.Events[0].Date.IsZero() || snap.Events[1].Date.IsZero() {
		t.Errorf("parseable dates decoded as zero: %+v", snap.Events[:2])
	}
	if !snap.Events[2].Date.IsZero() {
		t.Errorf("garbage date should decode to zero time, got %v", snap.Events[2].Date)
	}

	crmBy := snap.CRMByPerson()
	if crmBy["p001"] == nil || crmBy["p002"] != nil {
		t.Errorf("CRMByPerson = %+v", crmBy)
	}
}

func TestLoadSnapshotMissingLrsIsOptional(t *testing.T) {
	files := allFixtures()
	delete(files, "lrs.json")
	loader := NewLoader(writeFixtures(t, files), "")

	snap, err := loader.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Learning.Consumption) != 0 {
		t.Errorf("Learning = %+v, want empty", snap.Learning)
	}
}

func TestLoadSnapshotMissingRequiredFile(t *testing.T) {
	files := allFixtures()
	delete(files, "hris.json")
	loader := NewLoader(writeFixtures(t, files), "")

	_, err := loader.LoadSnapshot(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestLoadSnapshotMalformedFile(t *testing.T) {
	files := allFixtures()
	files["crm_agg.json"] = `{not json`
	loader := NewLoader(writeFixtures(t, files), "")

	_, err := loader.LoadSnapshot(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestLoadSnapshotHTTPFallback(t *testing.T) {
	files := allFixtures()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[filepath.Base(r.URL.Path)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	// Empty local dir: everything comes from the fallback host.
	loader := NewLoader(t.TempDir(), srv.URL)
	snap, err := loader.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.People) != 2 || len(snap.Catalog) != 1 {
		t.Errorf("snapshot = %d people, %d assets", len(snap.People), len(snap.Catalog))
	}
}

func TestLoadSnapshotDiskWinsOverFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("fallback hit for %s despite local files", r.URL.Path)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	loader := NewLoader(writeFixtures(t, allFixtures()), srv.URL)
	if _, err := loader.LoadSnapshot(context.Background()); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
}
