package postgres

import (
    "context"
    "errors"
    "time"

    "github.com/jackc/pgx/v5"

    "moderator/internal/domain"
)

const authorColumns = `id, spam_post_count, is_banned, banned_reason, banned_at`

// AuthorRepository. Increments go through an upsert so concurrent rejections
// for one author serialize on the row lock.
func (s *store) IncrementSpamCount(ctx context.Context, authorID string) (domain.AuthorOffenseState, error) {
    return scanAuthor(s.q.QueryRow(ctx, `
        INSERT INTO authors (id, spam_post_count) VALUES ($1, 1)
        ON CONFLICT (id) DO UPDATE SET spam_post_count = authors.spam_post_count + 1, updated_at = now()
        RETURNING `+authorColumns, authorID))
}

func (s *store) DecrementSpamCount(ctx context.Context, authorID string) (domain.AuthorOffenseState, error) {
    return scanAuthor(s.q.QueryRow(ctx, `
        INSERT INTO authors (id, spam_post_count) VALUES ($1, 0)
        ON CONFLICT (id) DO UPDATE SET spam_post_count = GREATEST(authors.spam_post_count - 1, 0), updated_at = now()
        RETURNING `+authorColumns, authorID))
}

func (s *store) SetBan(ctx context.Context, authorID string, banned bool, reason string) (domain.AuthorOffenseState, error) {
    var (
        why *string
        at  *time.Time
    )
    if banned {
        now := time.Now().UTC()
        why, at = &reason, &now
    }
    return scanAuthor(s.q.QueryRow(ctx, `
        INSERT INTO authors (id, is_banned, banned_reason, banned_at) VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET is_banned = EXCLUDED.is_banned, banned_reason = EXCLUDED.banned_reason,
            banned_at = EXCLUDED.banned_at, updated_at = now()
        RETURNING `+authorColumns, authorID, banned, why, at))
}

func (s *store) GetAuthor(ctx context.Context, authorID string) (domain.AuthorOffenseState, error) {
    a, err := scanAuthor(s.q.QueryRow(ctx, `SELECT `+authorColumns+` FROM authors WHERE id = $1`, authorID))
    if errors.Is(err, pgx.ErrNoRows) {
        // no row means no offenses yet
        return domain.AuthorOffenseState{AuthorID: authorID}, nil
    }
    return a, err
}

func (s *store) CountBanned(ctx context.Context) (int, error) {
    var n int
    err := s.q.QueryRow(ctx, `SELECT count(*) FROM authors WHERE is_banned`).Scan(&n)
    return n, err
}

func scanAuthor(row pgx.Row) (domain.AuthorOffenseState, error) {
    var a domain.AuthorOffenseState
    err := row.Scan(&a.AuthorID, &a.SpamPostCount, &a.IsBanned, &a.BanReason, &a.BannedAt)
    return a, err
}
