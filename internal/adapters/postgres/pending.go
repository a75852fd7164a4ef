package postgres

import (
    "context"
    "encoding/json"
    "errors"
    "time"

    "github.com/jackc/pgx/v5"

    "moderator/internal/domain"
)

// PendingStore. Submission and verdict are stored as JSON documents.
func (s *store) Put(ctx context.Context, p domain.PendingSubmission) error {
    sub, err := json.Marshal(p.Submission)
    if err != nil { return err }
    verdict, err := json.Marshal(p.Verdict)
    if err != nil { return err }
    _, err = s.q.Exec(ctx, `
        INSERT INTO pending_submissions (token, submission, verdict, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (token) DO UPDATE SET submission = EXCLUDED.submission, verdict = EXCLUDED.verdict
    `, p.Token, sub, verdict, p.CreatedAt)
    return err
}

// Take deletes and returns in one statement so a token confirms at most once.
func (s *store) Take(ctx context.Context, token string) (domain.PendingSubmission, error) {
    p := domain.PendingSubmission{Token: token}
    var sub, verdict []byte
    err := s.q.QueryRow(ctx, `
        DELETE FROM pending_submissions WHERE token = $1
        RETURNING submission, verdict, created_at
    `, token).Scan(&sub, &verdict, &p.CreatedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return p, domain.ErrPendingNotFound
    }
    if err != nil { return p, err }
    if err := json.Unmarshal(sub, &p.Submission); err != nil { return p, err }
    if err := json.Unmarshal(verdict, &p.Verdict); err != nil { return p, err }
    return p, nil
}

func (s *store) Purge(ctx context.Context, olderThan time.Time) (int, error) {
    tag, err := s.q.Exec(ctx, `DELETE FROM pending_submissions WHERE created_at < $1`, olderThan)
    if err != nil { return 0, err }
    return int(tag.RowsAffected()), nil
}
