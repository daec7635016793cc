package scope

import (
	"regexp"
	"strconv"
	"strings"

	"enableboard/internal/model"
)

var (
	windowRe  = regexp.MustCompile(`(?i)\b(?:last|past|trailing)\s+(\d{1,4})\s+days?\b`)
	pronounRe = regexp.MustCompile(`(?i)\b(he|she|they|him|her|them|his|hers|their)\b`)
)

// Resolve turns a free-text question plus optional prior-turn context into a
// Resolved scope. Explicit mentions win over carried context; a bare pronoun
// re-targets the thread's focus person. This is shallow pattern matching by
// design — anything it cannot read defaults to org-wide, all history.
func Resolve(question string, people []model.Person, prev *model.ThreadContext) Resolved {
	s := Default()
	q := strings.ToLower(question)

	if m := windowRe.FindStringSubmatch(question); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil && days > 0 {
			s.WindowDays = days
		}
	}

	// Geo and manager mentions are matched against the values present in the
	// dataset, so spelling drives everything. Geo codes are short ("NA") and
	// must match whole words only, or "enablement" would scope to NA.
	tokens := tokenize(q)
	seenGeos := make(map[string]bool)
	for _, p := range people {
		if p.Geo != "" && !seenGeos[p.Geo] && tokens[strings.ToLower(p.Geo)] {
			s.Geo = p.Geo
		}
		seenGeos[p.Geo] = true
		if s.Manager == All && p.ManagerName != "" && strings.Contains(q, strings.ToLower(p.ManagerName)) {
			s.Manager = p.ManagerName
		}
	}

	for _, p := range people {
		if p.Name != "" && strings.Contains(q, strings.ToLower(p.Name)) {
			s.PersonID = p.PersonID
			break
		}
	}

	if prev != nil {
		if s.PersonID == All && prev.FocusPersonID != "" && pronounRe.MatchString(question) {
			s.PersonID = prev.FocusPersonID
		}
		// Carry the prior cohort forward when the new turn names nothing.
		if s.Geo == All && s.Manager == All && s.PersonID == All {
			if prev.Geo != "" {
				s.Geo = prev.Geo
			}
			if prev.Manager != "" {
				s.Manager = prev.Manager
			}
		}
		if s.WindowDays == 0 && prev.WindowDays > 0 {
			s.WindowDays = prev.WindowDays
		}
	}

	return s
}

func tokenize(q string) map[string]bool {
	words := strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
