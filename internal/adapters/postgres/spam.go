package postgres

import (
    "context"

    "github.com/google/uuid"
    "github.com/jackc/pgx/v5"

    "moderator/internal/domain"
)

const spamColumns = `id, original_content_id, kind, content_type, author_id, title, body, link_url, link_domain,
    community_id, spam_reason, confidence, detected_at, archived_at`

// SpamRepository
func (s *store) CreateSpamRecord(ctx context.Context, r domain.SpamRecord) (string, error) {
    var id string
    err := s.q.QueryRow(ctx, `
        INSERT INTO spam_records (original_content_id, kind, content_type, author_id, title, body, link_url,
            link_domain, community_id, spam_reason, confidence, detected_at, archived_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `, r.OriginalContentID, r.Kind, r.ContentType, r.AuthorID, r.Title, r.Body, r.LinkURL,
        r.LinkDomain, r.CommunityID, r.SpamReason, r.Confidence, r.DetectedAt, r.ArchivedAt).Scan(&id)
    return id, err
}

func (s *store) GetSpamRecord(ctx context.Context, id string) (domain.SpamRecord, error) {
    if _, err := uuid.Parse(id); err != nil {
        return domain.SpamRecord{}, ErrNotFound
    }
    r, err := scanSpam(s.q.QueryRow(ctx, `SELECT `+spamColumns+` FROM spam_records WHERE id = $1`, id))
    return r, notFound(err)
}

func (s *store) DeleteSpamRecord(ctx context.Context, id string) error {
    if _, err := uuid.Parse(id); err != nil {
        return ErrNotFound
    }
    tag, err := s.q.Exec(ctx, `DELETE FROM spam_records WHERE id = $1`, id)
    if err != nil { return err }
    if tag.RowsAffected() == 0 { return ErrNotFound }
    return nil
}

func (s *store) ListSpamRecords(ctx context.Context, f domain.SpamFilter) ([]domain.SpamRecord, int, error) {
    var total int
    err := s.q.QueryRow(ctx, `SELECT count(*) FROM spam_records WHERE ($1 = '' OR author_id = $1)`, f.AuthorID).Scan(&total)
    if err != nil {
        return nil, 0, err
    }
    rows, err := s.q.Query(ctx, `
        SELECT `+spamColumns+` FROM spam_records
        WHERE ($1 = '' OR author_id = $1)
        ORDER BY detected_at DESC
        LIMIT $2 OFFSET $3
    `, f.AuthorID, nullLimit(f.Limit), f.Offset)
    if err != nil {
        return nil, 0, err
    }
    out, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.SpamRecord, error) { return scanSpam(r) })
    return out, total, err
}

func scanSpam(row pgx.Row) (domain.SpamRecord, error) {
    var r domain.SpamRecord
    err := row.Scan(&r.ID, &r.OriginalContentID, &r.Kind, &r.ContentType, &r.AuthorID, &r.Title, &r.Body, &r.LinkURL,
        &r.LinkDomain, &r.CommunityID, &r.SpamReason, &r.Confidence, &r.DetectedAt, &r.ArchivedAt)
    return r, err
}
