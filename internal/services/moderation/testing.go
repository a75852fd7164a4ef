package moderation

import (
    "context"
    "sync"

    "moderator/internal/domain"
)

// StaticClassifier returns a fixed signal. Used by tests and the offline
// check command.
type StaticClassifier struct {
    mu     sync.Mutex
    Signal domain.ClassificationSignal
    Calls  int
}

func (s *StaticClassifier) Classify(ctx context.Context, text string) domain.ClassificationSignal {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.Calls++
    return s.Signal
}

// Unavailable is the signal of a classifier that could not be reached.
func Unavailable() domain.ClassificationSignal {
    return domain.ClassificationSignal{Source: domain.SourceUnavailable}
}
