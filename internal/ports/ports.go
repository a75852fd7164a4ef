package ports

import (
    "context"

    "moderator/internal/domain"
)

// Classifier scores text with the external content classifier. It never
// fails; an unreachable service yields a signal with SourceUnavailable.
type Classifier interface {
    Classify(ctx context.Context, text string) domain.ClassificationSignal
}

// Moderator is the submission entry point.
type Moderator interface {
    EvaluateAndApply(ctx context.Context, text string, sub domain.Submission) (domain.LifecycleResult, error)
    ConfirmQuarantined(ctx context.Context, token string) (domain.LifecycleResult, error)
    DeclineQuarantined(ctx context.Context, token string) (domain.LifecycleResult, error)
}

// Admin exposes moderator-only operations over archived and flagged content.
type Admin interface {
    RestoreSpamRecord(ctx context.Context, id string) (domain.Content, error)
    SetBan(ctx context.Context, authorID string, banned bool, reason string) (domain.AuthorOffenseState, error)
    Author(ctx context.Context, authorID string) (domain.AuthorOffenseState, error)
    ListSpamRecords(ctx context.Context, f domain.SpamFilter) ([]domain.SpamRecord, int, error)
    ReviewQueue(ctx context.Context, limit, offset int) ([]domain.Content, int, error)
    ResolveReview(ctx context.Context, contentID string, approve bool) error
    ReportContent(ctx context.Context, contentID, reporterID, reason string) (domain.Content, error)
    ReportedContent(ctx context.Context, limit, offset int) ([]domain.Content, int, error)
    Stats(ctx context.Context) (domain.Stats, error)
}

// Notifier delivers messages to authors and the review queue. Delivery is
// best effort.
type Notifier interface {
    NotifyAuthor(ctx context.Context, authorID, kind, message string) error
    NotifyReview(ctx context.Context, content domain.Content) error
}
