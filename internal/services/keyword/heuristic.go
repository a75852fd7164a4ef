package keyword

import (
    "strings"

    "moderator/internal/domain"
)

const (
    // Confidence reported for any match. Not tunable per call.
    Confidence = 0.9

    // MinDistinctMatches is the number of distinct keywords needed before a
    // text counts as promotional spam.
    MinDistinctMatches = 2
)

// Heuristic scans text against a fixed keyword list. It is safe for
// concurrent use; the list is never modified after New.
type Heuristic struct {
    terms []string
}

// New lower-cases and de-duplicates terms, keeping the first occurrence of
// each so scan order follows the input order.
func New(terms []string) *Heuristic {
    seen := make(map[string]struct{}, len(terms))
    out := make([]string, 0, len(terms))
    for _, t := range terms {
        t = strings.ToLower(strings.TrimSpace(t))
        if t == "" {
            continue
        }
        if _, ok := seen[t]; ok {
            continue
        }
        seen[t] = struct{}{}
        out = append(out, t)
    }
    return &Heuristic{terms: out}
}

// NewDefault builds a heuristic over DefaultTerms.
func NewDefault() *Heuristic { return New(defaultTerms) }

// Terms returns a copy of the normalized keyword list.
func (h *Heuristic) Terms() []string {
    out := make([]string, len(h.terms))
    copy(out, h.terms)
    return out
}

// Evaluate reports every keyword found anywhere in text, case-insensitively.
// Matching is substring based, not word bounded.
func (h *Heuristic) Evaluate(text string) domain.KeywordFinding {
    lower := strings.ToLower(text)
    var found []string
    for _, t := range h.terms {
        if strings.Contains(lower, t) {
            found = append(found, t)
        }
    }
    if len(found) < MinDistinctMatches {
        return domain.KeywordFinding{MatchedTerms: []string{}}
    }
    return domain.KeywordFinding{
        Matched:      true,
        MatchedTerms: found,
        Confidence:   Confidence,
    }
}

// Reason formats the rejection reason for a keyword match.
func Reason(f domain.KeywordFinding) string {
    return "Detected promotional spam keywords: " + strings.Join(f.MatchedTerms, ", ")
}
