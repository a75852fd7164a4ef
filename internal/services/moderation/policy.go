package moderation

import (
    "fmt"

    "moderator/internal/domain"
    "moderator/internal/services/keyword"
)

// Policy maps a combined confidence to an outcome using two fixed bands:
// above RejectAbove rejects, from QuarantineFrom up to and including
// RejectAbove quarantines, anything lower is allowed.
type Policy struct {
    RejectAbove    float64 `yaml:"reject_above"`
    QuarantineFrom float64 `yaml:"quarantine_from"`
}

func DefaultPolicy() Policy {
    return Policy{RejectAbove: 0.8, QuarantineFrom: 0.6}
}

func (p Policy) Decide(confidence float64) domain.Outcome {
    switch {
    case confidence > p.RejectAbove:
        return domain.OutcomeReject
    case confidence >= p.QuarantineFrom:
        return domain.OutcomeQuarantine
    default:
        return domain.OutcomeAllow
    }
}

// Validate checks the bands are ordered, that a zero confidence is always
// allowed and that a keyword match always lands in the reject band. Call once
// at startup.
func (p Policy) Validate() error {
    if p.QuarantineFrom <= 0 || p.RejectAbove >= 1 {
        return fmt.Errorf("%w: bands must lie within (0,1): quarantine_from=%v reject_above=%v", domain.ErrInvalidPolicy, p.QuarantineFrom, p.RejectAbove)
    }
    if p.QuarantineFrom >= p.RejectAbove {
        return fmt.Errorf("%w: quarantine_from (%v) must be below reject_above (%v)", domain.ErrInvalidPolicy, p.QuarantineFrom, p.RejectAbove)
    }
    if keyword.Confidence <= p.RejectAbove {
        return fmt.Errorf("%w: keyword confidence %v would not reach the reject band above %v", domain.ErrInvalidPolicy, keyword.Confidence, p.RejectAbove)
    }
    return nil
}
