package moderation

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"

    "moderator/internal/domain"
)

func TestPolicyBoundaries(t *testing.T) {
    p := DefaultPolicy()
    cases := []struct {
        confidence float64
        want       domain.Outcome
    }{
        {0, domain.OutcomeAllow},
        {0.1, domain.OutcomeAllow},
        {0.59999, domain.OutcomeAllow},
        {0.6, domain.OutcomeQuarantine},
        {0.7, domain.OutcomeQuarantine},
        {0.8, domain.OutcomeQuarantine},
        {0.80001, domain.OutcomeReject},
        {0.9, domain.OutcomeReject},
        {1, domain.OutcomeReject},
    }
    for _, c := range cases {
        assert.Equal(t, c.want, p.Decide(c.confidence), "confidence %v", c.confidence)
    }
}

func TestPolicyValidate(t *testing.T) {
    assert := assert.New(t)
    assert.NoError(DefaultPolicy().Validate())

    inverted := Policy{RejectAbove: 0.6, QuarantineFrom: 0.8}
    assert.True(errors.Is(inverted.Validate(), domain.ErrInvalidPolicy))

    equal := Policy{RejectAbove: 0.7, QuarantineFrom: 0.7}
    assert.True(errors.Is(equal.Validate(), domain.ErrInvalidPolicy))

    negative := Policy{RejectAbove: 0.8, QuarantineFrom: -0.1}
    assert.True(errors.Is(negative.Validate(), domain.ErrInvalidPolicy))

    // a zero floor would quarantine text nobody scored
    zero := Policy{RejectAbove: 0.85, QuarantineFrom: 0}
    assert.True(errors.Is(zero.Validate(), domain.ErrInvalidPolicy))

    // keywords at 0.9 would only quarantine
    tooHigh := Policy{RejectAbove: 0.95, QuarantineFrom: 0.6}
    assert.True(errors.Is(tooHigh.Validate(), domain.ErrInvalidPolicy))
}
