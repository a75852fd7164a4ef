package moderation

import (
    "context"
    "errors"
    "fmt"
    "log/slog"

    "moderator/internal/domain"
    "moderator/internal/ports"
)

// Service is the submission entry point: validate, score, then apply.
type Service struct {
    combiner    *Combiner
    coordinator *Coordinator
    deps        Deps
    log         *slog.Logger
}

func NewService(combiner *Combiner, deps Deps) *Service {
    coord := NewCoordinator(deps)
    return &Service{
        combiner:    combiner,
        coordinator: coord,
        deps:        coord.deps,
        log:         coord.deps.Logger.With("component", "moderation"),
    }
}

var _ ports.Moderator = (*Service)(nil)

// Evaluate scores text without side effects.
func (s *Service) Evaluate(ctx context.Context, text string) domain.Verdict {
    return s.combiner.Combine(ctx, text)
}

// EvaluateAndApply validates sub, scores text and performs the lifecycle
// transition. Callers pass the full text to scan; an empty text falls back to
// the submission's own title, body and link.
func (s *Service) EvaluateAndApply(ctx context.Context, text string, sub domain.Submission) (domain.LifecycleResult, error) {
    if err := sub.Normalize(); err != nil {
        return domain.LifecycleResult{}, err
    }
    if text == "" {
        text = sub.ScanText()
    }
    v := s.combiner.Combine(ctx, text)
    verdictCount.WithLabelValues(string(v.Outcome), string(v.ReasonSource)).Inc()
    verdictConfidence.Observe(v.CombinedConfidence)
    s.log.Debug("verdict", "author", sub.AuthorID, "kind", sub.Kind, "outcome", v.Outcome,
        "confidence", v.CombinedConfidence, "reason_source", v.ReasonSource,
        "spam", v.Signal.SpamConfidence, "toxicity", v.Signal.ToxicityConfidence,
        "classifier", v.Signal.Source, "keywords", v.Keywords.MatchedTerms)

    res, err := s.coordinator.Apply(ctx, v, sub)
    if err != nil {
        s.log.Error("lifecycle transition failed", "author", sub.AuthorID, "outcome", v.Outcome, "err", err)
        return res, err
    }
    if res.Status == domain.StatusRejected {
        s.log.Info("submission rejected", "author", sub.AuthorID, "spam_record", res.SpamRecordID, "reason", res.Reason)
    }
    return res, nil
}

// ConfirmQuarantined publishes a held submission after the submitter opted
// to proceed. The content goes live flagged for admin review.
func (s *Service) ConfirmQuarantined(ctx context.Context, token string) (domain.LifecycleResult, error) {
    p, err := s.deps.Pending.Take(ctx, token)
    if err != nil {
        return domain.LifecycleResult{}, pendingErr(err)
    }
    c := domain.Content{
        Submission:       p.Submission,
        SpamStatus:       domain.MightBeSpam,
        SpamConfidence:   p.Verdict.CombinedConfidence,
        SpamReason:       p.Verdict.Reason,
        FlaggedForReview: true,
        CreatedAt:        s.deps.Now().UTC(),
    }
    id, err := s.deps.Stores.Content.CreateContent(ctx, c)
    if err != nil {
        // hand the token back so the submitter can retry
        if perr := s.deps.Pending.Put(ctx, p); perr != nil {
            s.log.Error("restore pending submission", "token", token, "err", perr)
        }
        return domain.LifecycleResult{}, fmt.Errorf("publish confirmed content: %w", err)
    }
    c.ID = id
    confirmCount.WithLabelValues("confirmed").Inc()
    if s.deps.Notifier != nil {
        if err := s.deps.Notifier.NotifyReview(ctx, c); err != nil {
            s.log.Warn("review notification failed", "content", id, "err", err)
        }
    }
    return domain.LifecycleResult{
        Status:           domain.StatusPublished,
        ContentID:        id,
        Reason:           p.Verdict.Reason,
        Confidence:       p.Verdict.CombinedConfidence,
        FlaggedForReview: true,
    }, nil
}

// DeclineQuarantined drops a held submission; it is never persisted.
func (s *Service) DeclineQuarantined(ctx context.Context, token string) (domain.LifecycleResult, error) {
    p, err := s.deps.Pending.Take(ctx, token)
    if err != nil {
        return domain.LifecycleResult{}, pendingErr(err)
    }
    confirmCount.WithLabelValues("declined").Inc()
    return domain.LifecycleResult{
        Status:     domain.StatusDeclined,
        Reason:     p.Verdict.Reason,
        Confidence: p.Verdict.CombinedConfidence,
    }, nil
}

func pendingErr(err error) error {
    if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrPendingNotFound) {
        return domain.ErrPendingNotFound
    }
    return fmt.Errorf("load pending submission: %w", err)
}
