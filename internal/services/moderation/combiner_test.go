package moderation

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"

    "moderator/internal/domain"
    "moderator/internal/services/keyword"
)

func signal(spam, tox float64, label string) domain.ClassificationSignal {
    return domain.ClassificationSignal{SpamConfidence: spam, ToxicityConfidence: tox, Label: label, Source: domain.SourceClassifier}
}

func newCombiner(sig domain.ClassificationSignal) *Combiner {
    return NewCombiner(&StaticClassifier{Signal: sig}, keyword.NewDefault(), DefaultPolicy())
}

func TestCombineNoSignals(t *testing.T) {
    v := newCombiner(signal(0, 0, "Detected as spam by AI")).Combine(context.Background(), "I love hiking in the mountains")
    assert.Equal(t, 0.0, v.CombinedConfidence)
    assert.Equal(t, domain.OutcomeAllow, v.Outcome)
    assert.Equal(t, domain.ReasonClassifier, v.ReasonSource)
}

func TestCombineKeywordsForceReject(t *testing.T) {
    assert := assert.New(t)
    for _, sig := range []domain.ClassificationSignal{
        signal(0, 0, "Detected as spam by AI"),
        signal(0.3, 0.1, "Detected as spam by AI"),
        signal(0.95, 0.2, "Detected as spam by AI"),
        Unavailable(),
    } {
        v := newCombiner(sig).Combine(context.Background(), "Claim your free prize now, win cash today!")
        assert.GreaterOrEqual(v.CombinedConfidence, keyword.Confidence)
        assert.Equal(domain.OutcomeReject, v.Outcome)
        assert.Equal(domain.ReasonKeyword, v.ReasonSource)
        assert.Contains(v.Reason, "Detected promotional spam keywords: free")
    }
}

func TestCombineKeywordNeverLowers(t *testing.T) {
    v := newCombiner(signal(0.97, 0, "Detected as spam by AI")).Combine(context.Background(), "free and urgent")
    assert.Equal(t, 0.97, v.CombinedConfidence)
}

func TestCombineClassifierOnly(t *testing.T) {
    assert := assert.New(t)

    v := newCombiner(signal(0.1, 0.05, "Detected as spam by AI")).Combine(context.Background(), "I love hiking in the mountains")
    assert.Equal(0.1, v.CombinedConfidence)
    assert.Equal(domain.OutcomeAllow, v.Outcome)

    v = newCombiner(signal(0.2, 0.7, "Detected as spam by AI")).Combine(context.Background(), "you are the worst")
    assert.Equal(0.7, v.CombinedConfidence)
    assert.Equal(domain.OutcomeQuarantine, v.Outcome)
    assert.Equal("Detected as spam by AI", v.Reason)

    v = newCombiner(signal(0.85, 0, "Detected as spam/toxic content by AI")).Combine(context.Background(), "hello there")
    assert.Equal(domain.OutcomeReject, v.Outcome)
    assert.Equal("Detected as spam/toxic content by AI", v.Reason)
    assert.Equal(domain.ReasonClassifier, v.ReasonSource)
}

func TestCombineUnavailableAllows(t *testing.T) {
    v := newCombiner(Unavailable()).Combine(context.Background(), "I love hiking in the mountains")
    assert.Equal(t, 0.0, v.CombinedConfidence)
    assert.Equal(t, domain.OutcomeAllow, v.Outcome)
    assert.Equal(t, ReasonUnavailable, v.Reason)
}

func TestCombineUnavailableAllowsUnderAnyPolicy(t *testing.T) {
    // Decide(0) would quarantine here; an outage must still allow
    loose := Policy{RejectAbove: 0.85, QuarantineFrom: 0}
    c := NewCombiner(&StaticClassifier{Signal: Unavailable()}, keyword.NewDefault(), loose)
    v := c.Combine(context.Background(), "I love hiking in the mountains")
    assert.Equal(t, domain.OutcomeAllow, v.Outcome)
    assert.Equal(t, ReasonUnavailable, v.Reason)
}

func TestCombineDeterministic(t *testing.T) {
    c := newCombiner(signal(0.65, 0.1, "Detected as spam by AI"))
    a := c.Combine(context.Background(), "some borderline text")
    b := c.Combine(context.Background(), "some borderline text")
    assert.Equal(t, a, b)
}
