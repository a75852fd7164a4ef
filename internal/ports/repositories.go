package ports

import (
    "context"
    "time"

    "moderator/internal/domain"
)

// ContentRepository stores live posts and comments.
type ContentRepository interface {
    CreateContent(ctx context.Context, c domain.Content) (contentID string, err error)
    GetContent(ctx context.Context, contentID string) (domain.Content, error)
    DeleteContent(ctx context.Context, contentID string) error
    ListFlagged(ctx context.Context, limit, offset int) ([]domain.Content, int, error)
    ClearFlag(ctx context.Context, contentID string) error
    // AddReport records r and returns the content with its updated report
    // count. A repeat report from the same reporter leaves the count alone.
    AddReport(ctx context.Context, contentID string, r domain.Report) (domain.Content, error)
    HideContent(ctx context.Context, contentID string) error
    // ListReported returns reported content, most recently reported first.
    ListReported(ctx context.Context, limit, offset int) ([]domain.Content, int, error)
}

// SpamRepository archives rejected content.
type SpamRepository interface {
    CreateSpamRecord(ctx context.Context, r domain.SpamRecord) (recordID string, err error)
    GetSpamRecord(ctx context.Context, recordID string) (domain.SpamRecord, error)
    DeleteSpamRecord(ctx context.Context, recordID string) error
    ListSpamRecords(ctx context.Context, f domain.SpamFilter) ([]domain.SpamRecord, int, error)
}

// AuthorRepository holds per-author offense state. IncrementSpamCount must be
// atomic with respect to concurrent callers for the same author.
type AuthorRepository interface {
    IncrementSpamCount(ctx context.Context, authorID string) (domain.AuthorOffenseState, error)
    DecrementSpamCount(ctx context.Context, authorID string) (domain.AuthorOffenseState, error)
    SetBan(ctx context.Context, authorID string, banned bool, reason string) (domain.AuthorOffenseState, error)
    GetAuthor(ctx context.Context, authorID string) (domain.AuthorOffenseState, error)
    CountBanned(ctx context.Context) (int, error)
}

// PendingStore holds quarantined submissions until they are confirmed or
// declined. Take removes the entry it returns.
type PendingStore interface {
    Put(ctx context.Context, p domain.PendingSubmission) error
    Take(ctx context.Context, token string) (domain.PendingSubmission, error)
    Purge(ctx context.Context, olderThan time.Time) (int, error)
}

// Stores is the set of repositories visible inside one transaction.
type Stores struct {
    Content ContentRepository
    Spam    SpamRepository
    Authors AuthorRepository
}

// Transactor runs fn with repositories bound to a single transaction when the
// backing store supports one. fn's error rolls the transaction back.
type Transactor interface {
    InTx(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}
