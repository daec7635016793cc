package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"enableboard/internal/cache"
	"enableboard/internal/dataset"
	"enableboard/internal/model"
	"enableboard/internal/scope"
)

const askSystemPrompt = `You are the VP of Enablement in a board meeting.
Speak in concise, executive language. Structure answers as:
• Headline (1 line)
• 2–5 bullet proof points with numbers
• “So what” (impact/risk/decision)
If helpful, give a short “Do next” list (max 3 items).
Use ONLY the data I give you. Do not invent.`

const defaultAskQuestion = "Summarize enablement, productivity, and performance for this view."

// AskRequest is the body for POST /v1/ask. All fields are optional; a
// malformed or empty body resolves to org-wide, all history.
type AskRequest struct {
	Question   string               `json:"question"`
	Geo        string               `json:"geo"`
	Manager    string               `json:"manager"`
	PersonID   string               `json:"personId"`
	WindowDays int                  `json:"windowDays"`
	ThreadCtx  *model.ThreadContext `json:"threadCtx"`
}

// AskCounts reports the population sizes behind the answer.
type AskCounts struct {
	People int `json:"people"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// AskDebug echoes the numbers used, for caller-side display.
type AskDebug struct {
	Counts  AskCounts      `json:"counts"`
	Filters scope.Resolved `json:"filters"`
}

// AskResponse is the body returned by POST /v1/ask.
type AskResponse struct {
	OK        bool                 `json:"ok"`
	Model     string               `json:"model"`
	Answer    string               `json:"answer"`
	Filters   scope.Resolved       `json:"filters"`
	ThreadCtx *model.ThreadContext `json:"threadCtx"`
	Debug     AskDebug             `json:"debug"`
}

// NarrationError carries the computed brief alongside a collaborator failure
// so the numbers stay inspectable even when prose generation fails.
type NarrationError struct {
	Err   error
	Brief *model.Brief
}

func (e *NarrationError) Error() string { return e.Err.Error() }
func (e *NarrationError) Unwrap() error { return e.Err }

// AskService runs the full pipeline for one boardroom question: load
// snapshots, resolve scope, build the brief, narrate, and update the
// conversation thread.
type AskService struct {
	loader   *dataset.Loader
	briefs   *BriefService
	narrator Narrator
	threads  cache.ThreadCache
}

// NewAskService creates an ask service
func NewAskService(loader *dataset.Loader, briefs *BriefService, narrator Narrator, threads cache.ThreadCache) *AskService {
	return &AskService{
		loader:   loader,
		briefs:   briefs,
		narrator: narrator,
		threads:  threads,
	}
}

// Ask answers one question over the current snapshots.
func (s *AskService) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	snap, err := s.loader.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	prev := s.priorThread(ctx, req.ThreadCtx)
	resolved := s.resolveScope(req, snap, prev)

	brief := s.briefs.Build(snap, resolved)

	userPrompt := fmt.Sprintf("Question: %s\n\nDATA BRIEF:\n%s", questionOrDefault(req.Question), marshalBrief(brief))
	answer, err := s.narrator.Narrate(ctx, askSystemPrompt, userPrompt)
	if err != nil {
		return nil, &NarrationError{Err: err, Brief: brief}
	}

	thread := s.advanceThread(ctx, prev, resolved)

	return &AskResponse{
		OK:        true,
		Model:     s.narrator.ModelName(),
		Answer:    answer,
		Filters:   resolved,
		ThreadCtx: thread,
		Debug: AskDebug{
			Counts: AskCounts{
				People: brief.Filters.VisibleCount,
				Top:    brief.Composites.CohortSize,
				Bottom: brief.Composites.CohortSize,
			},
			Filters: resolved,
		},
	}, nil
}

// resolveScope prefers explicit filters; otherwise it reads the question,
// falling back to the prior thread for pronouns and carried cohorts.
func (s *AskService) resolveScope(req AskRequest, snap *dataset.Snapshot, prev *model.ThreadContext) scope.Resolved {
	explicit := scope.Resolved{
		Geo:        req.Geo,
		Manager:    req.Manager,
		PersonID:   req.PersonID,
		WindowDays: req.WindowDays,
	}.Normalized()

	if explicit.Geo != scope.All || explicit.Manager != scope.All || explicit.PersonID != scope.All {
		return explicit
	}

	resolved := scope.Resolve(req.Question, snap.People, prev)
	if req.WindowDays > 0 {
		resolved.WindowDays = req.WindowDays
	}
	return resolved
}

func (s *AskService) priorThread(ctx context.Context, tc *model.ThreadContext) *model.ThreadContext {
	if tc == nil || tc.ThreadID == "" {
		return nil
	}
	stored, err := s.threads.GetThread(ctx, tc.ThreadID)
	if err != nil {
		log.Printf("thread cache read failed: %v", err)
		return tc
	}
	if stored == nil {
		return tc
	}
	return stored
}

// advanceThread persists the turn's resolution so the next question can say
// "she" or "them" and land on the same selection. Persistence failures are
// logged, not fatal; continuity is best effort.
func (s *AskService) advanceThread(ctx context.Context, prev *model.ThreadContext, resolved scope.Resolved) *model.ThreadContext {
	thread := &model.ThreadContext{}
	if prev != nil {
		*thread = *prev
	}
	if thread.ThreadID == "" {
		thread.ThreadID = uuid.New().String()
	}

	if resolved.PersonID != scope.All {
		thread.FocusPersonID = resolved.PersonID
	}
	if resolved.Geo != scope.All {
		thread.Geo = resolved.Geo
	} else {
		thread.Geo = ""
	}
	if resolved.Manager != scope.All {
		thread.Manager = resolved.Manager
	} else {
		thread.Manager = ""
	}
	thread.WindowDays = resolved.WindowDays

	if err := s.threads.SetThread(ctx, thread); err != nil {
		log.Printf("thread cache write failed: %v", err)
	}
	return thread
}

func questionOrDefault(q string) string {
	if strings.TrimSpace(q) == "" {
		return defaultAskQuestion
	}
	return q
}

func marshalBrief(b *model.Brief) string {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
