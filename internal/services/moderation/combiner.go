package moderation

import (
    "context"

    "golang.org/x/sync/errgroup"

    "moderator/internal/domain"
    "moderator/internal/ports"
    "moderator/internal/services/keyword"
)

const ReasonUnavailable = "External classification unavailable"

// Combiner merges the classifier and keyword signals into one verdict.
type Combiner struct {
    classifier ports.Classifier
    keywords   *keyword.Heuristic
    policy     Policy
}

func NewCombiner(classifier ports.Classifier, keywords *keyword.Heuristic, policy Policy) *Combiner {
    return &Combiner{classifier: classifier, keywords: keywords, policy: policy}
}

// Combine scores text. Keyword evidence can only raise the classifier's
// confidence. A classifier outage with no keyword match always allows.
func (c *Combiner) Combine(ctx context.Context, text string) domain.Verdict {
    var (
        signal  domain.ClassificationSignal
        finding domain.KeywordFinding
    )
    g, gctx := errgroup.WithContext(ctx)
    g.Go(func() error {
        signal = c.classifier.Classify(gctx, text)
        return nil
    })
    g.Go(func() error {
        finding = c.keywords.Evaluate(text)
        return nil
    })
    _ = g.Wait()

    if signal.Source == domain.SourceUnavailable && !finding.Matched {
        return domain.Verdict{
            CombinedConfidence: 0,
            Outcome:            domain.OutcomeAllow,
            Reason:             ReasonUnavailable,
            ReasonSource:       domain.ReasonClassifier,
            Signal:             signal,
            Keywords:           finding,
        }
    }

    confidence := max(signal.SpamConfidence, signal.ToxicityConfidence)
    if finding.Matched {
        confidence = max(confidence, finding.Confidence)
    }
    v := domain.Verdict{
        CombinedConfidence: confidence,
        Outcome:            c.policy.Decide(confidence),
        Reason:             signal.Label,
        ReasonSource:       domain.ReasonClassifier,
        Signal:             signal,
        Keywords:           finding,
    }
    // the keyword reason only replaces the label once the outcome is known
    if finding.Matched && v.Outcome == domain.OutcomeReject {
        v.Reason = keyword.Reason(finding)
        v.ReasonSource = domain.ReasonKeyword
    }
    if v.Reason == "" {
        v.Reason = ReasonUnavailable
    }
    return v
}
