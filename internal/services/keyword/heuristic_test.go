package keyword

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestEvaluateRequiresTwoDistinctTerms(t *testing.T) {
    assert := assert.New(t)
    h := New([]string{"free", "urgent", "prize"})

    f := h.Evaluate("this is free")
    assert.False(f.Matched)
    assert.Empty(f.MatchedTerms)
    assert.Equal(0.0, f.Confidence)

    // repeating one keyword does not count twice
    f = h.Evaluate("free free FREE")
    assert.False(f.Matched)

    f = h.Evaluate("URGENT: everything is Free")
    assert.True(f.Matched)
    assert.Equal([]string{"free", "urgent"}, f.MatchedTerms)
    assert.Equal(Confidence, f.Confidence)
}

func TestEvaluateSubstringOverMatch(t *testing.T) {
    h := New([]string{"win", "app"})
    f := h.Evaluate("Windows happens")
    assert.True(t, f.Matched)
    assert.Equal(t, []string{"win", "app"}, f.MatchedTerms)
}

func TestNewNormalizesAndDedupes(t *testing.T) {
    h := New([]string{"Free", "free", " URGENT ", "", "urgent", "Prize"})
    assert.Equal(t, []string{"free", "urgent", "prize"}, h.Terms())
}

func TestDefaultListScenario(t *testing.T) {
    assert := assert.New(t)
    h := NewDefault()

    f := h.Evaluate("Claim your free prize now, win cash today!")
    assert.True(f.Matched)
    for _, want := range []string{"free", "claim", "prize", "win", "cash", "now", "today"} {
        assert.Contains(f.MatchedTerms, want)
    }
    // list order, not text order
    assert.Equal("free", f.MatchedTerms[0])
    assert.Equal("Detected promotional spam keywords: "+joined(f.MatchedTerms), Reason(f))

    f = h.Evaluate("I love hiking in the mountains")
    assert.False(f.Matched)
}

func TestDefaultTermsIsACopy(t *testing.T) {
    terms := DefaultTerms()
    terms[0] = "changed"
    assert.Equal(t, "free", DefaultTerms()[0])
}

func joined(terms []string) string {
    out := ""
    for i, t := range terms {
        if i > 0 {
            out += ", "
        }
        out += t
    }
    return out
}
