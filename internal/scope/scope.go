// Package scope holds the resolved selection a request operates on and the
// glue that turns free-text questions into one. The scoring pipeline only
// ever sees the resolved value.
package scope

import (
	"fmt"

	"enableboard/internal/model"
)

// All is the sentinel meaning "no filter on this dimension".
const All = "All"

// Resolved is the immutable scope a request operates on: org-wide, a cohort
// filtered by geo and/or manager, or a single person, with an optional
// trailing window in days (0 = all history).
type Resolved struct {
	Geo        string `json:"geo"`
	Manager    string `json:"manager"`
	PersonID   string `json:"personId"`
	WindowDays int    `json:"windowDays,omitempty"`
}

// Default is the organization-wide, all-history scope.
func Default() Resolved {
	return Resolved{Geo: All, Manager: All, PersonID: All}
}

// Normalized replaces empty filter fields with the All sentinel.
func (s Resolved) Normalized() Resolved {
	if s.Geo == "" {
		s.Geo = All
	}
	if s.Manager == "" {
		s.Manager = All
	}
	if s.PersonID == "" {
		s.PersonID = All
	}
	return s
}

// Apply filters an HRIS population down to the scope. Order is preserved.
func (s Resolved) Apply(people []model.Person) []model.Person {
	s = s.Normalized()
	out := make([]model.Person, 0, len(people))
	for _, p := range people {
		if s.Geo != All && p.Geo != s.Geo {
			continue
		}
		if s.Manager != All && p.ManagerName != s.Manager {
			continue
		}
		if s.PersonID != All && p.PersonID != s.PersonID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Label describes the selection for prose ("Mia Chen, AE under D. Rossi" or
// "LATAM · D. Rossi" or "this cohort").
func (s Resolved) Label(matched []model.Person) string {
	s = s.Normalized()
	if s.PersonID != All && len(matched) == 1 {
		p := matched[0]
		return fmt.Sprintf("%s, %s under %s", p.Name, p.RoleType, p.ManagerName)
	}
	switch {
	case s.Geo != All && s.Manager != All:
		return s.Geo + " · " + s.Manager
	case s.Geo != All:
		return s.Geo
	case s.Manager != All:
		return s.Manager
	}
	return "this cohort"
}
