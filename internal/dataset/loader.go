// Package dataset loads the static JSON snapshots the dashboard runs on.
// Every request gets a fresh load; nothing here mutates or caches across
// requests.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"enableboard/internal/model"
)

// Snapshot file names under the data directory (and the same paths on the
// HTTP fallback host).
const (
	hrisFile    = "hris.json"
	crmFile     = "crm_agg.json"
	lrsFile     = "lrs.json" // optional legacy aggregate
	catalogFile = "lrs_catalog.json"
	eventsFile  = "lrs_activity_events.json"
)

// ErrUnavailable marks a required dataset that could not be read or parsed.
// The request cannot proceed without a population to score.
var ErrUnavailable = errors.New("dataset unavailable")

// Snapshot is one request's read-only view of all datasets.
type Snapshot struct {
	People   []model.Person
	CRM      []model.CrmAggregate
	Learning model.LearningAggregateFile
	Catalog  []model.CatalogAsset
	Events   []model.ActivityEvent
}

// CRMByPerson indexes the CRM rows by person id.
func (s *Snapshot) CRMByPerson() map[string]*model.CrmAggregate {
	out := make(map[string]*model.CrmAggregate, len(s.CRM))
	for i := range s.CRM {
		out[s.CRM[i].PersonID] = &s.CRM[i]
	}
	return out
}

// LearningByPerson indexes the optional legacy learning rows by person id.
func (s *Snapshot) LearningByPerson() map[string]*model.LegacyLearningAggregate {
	out := make(map[string]*model.LegacyLearningAggregate, len(s.Learning.Consumption))
	for i := range s.Learning.Consumption {
		out[s.Learning.Consumption[i].PersonID] = &s.Learning.Consumption[i]
	}
	return out
}

// Loader reads snapshot files from a local directory first and falls back to
// fetching the same paths from a static base URL.
type Loader struct {
	dataDir string
	baseURL string
	client  *http.Client
}

// NewLoader creates a loader. baseURL may be empty to disable the HTTP
// fallback.
func NewLoader(dataDir, baseURL string) *Loader {
	return &Loader{
		dataDir: dataDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// LoadSnapshot loads all five sources. The sources are independent, so they
// load in parallel. The legacy learning aggregate is optional and degrades to
// empty; the other four are required.
func (l *Loader) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.loadJSON(gctx, hrisFile, &snap.People) })
	g.Go(func() error { return l.loadJSON(gctx, crmFile, &snap.CRM) })
	g.Go(func() error { return l.loadJSON(gctx, catalogFile, &snap.Catalog) })
	g.Go(func() error { return l.loadJSON(gctx, eventsFile, &snap.Events) })
	g.Go(func() error {
		if err := l.loadJSON(gctx, lrsFile, &snap.Learning); err != nil {
			snap.Learning = model.LearningAggregateFile{}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// loadJSON tries the data directory, then the HTTP fallback.
func (l *Loader) loadJSON(ctx context.Context, name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(l.dataDir, name))
	if err != nil {
		data, err = l.fetch(ctx, name)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context, name string) ([]byte, error) {
	if l.baseURL == "" {
		return nil, errors.New("no fallback base URL configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/"+name, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", name, resp.StatusCode)
	}

	const maxSnapshotBytes = 32 << 20
	return io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
}
