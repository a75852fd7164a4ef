// Package notify delivers moderation notifications. Real delivery (email,
// in-app) lives outside this service; LogNotifier records them for operators.
package notify

import (
    "context"
    "log/slog"

    "moderator/internal/domain"
    "moderator/internal/ports"
)

type LogNotifier struct {
    Logger *slog.Logger
}

var _ ports.Notifier = LogNotifier{}

func (n LogNotifier) logger() *slog.Logger {
    if n.Logger == nil {
        return slog.Default()
    }
    return n.Logger
}

func (n LogNotifier) NotifyAuthor(ctx context.Context, authorID, kind, message string) error {
    n.logger().InfoContext(ctx, "author notification", "author", authorID, "kind", kind, "message", message)
    return nil
}

func (n LogNotifier) NotifyReview(ctx context.Context, c domain.Content) error {
    n.logger().InfoContext(ctx, "content queued for review", "content", c.ID, "author", c.AuthorID,
        "confidence", c.SpamConfidence, "reason", c.SpamReason)
    return nil
}
