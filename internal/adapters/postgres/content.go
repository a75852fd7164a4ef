package postgres

import (
    "context"
    "errors"

    "github.com/google/uuid"
    "github.com/jackc/pgx/v5"

    "moderator/internal/domain"
)

const contentColumns = `id, kind, content_type, author_id, title, body, link_url, community_id, parent_id,
    spam_status, spam_confidence, spam_reason, flagged_for_review, report_count, last_reported_at, hidden, created_at`

// ContentRepository
func (s *store) CreateContent(ctx context.Context, c domain.Content) (string, error) {
    var id string
    err := s.q.QueryRow(ctx, `
        INSERT INTO contents (kind, content_type, author_id, title, body, link_url, community_id, parent_id,
            spam_status, spam_confidence, spam_reason, flagged_for_review, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, COALESCE($13, now()))
        RETURNING id
    `, c.Kind, c.ContentType, c.AuthorID, c.Title, c.Body, c.LinkURL, c.CommunityID, c.OriginalContentID,
        c.SpamStatus, c.SpamConfidence, c.SpamReason, c.FlaggedForReview, nullTime(c.CreatedAt)).Scan(&id)
    return id, err
}

func (s *store) GetContent(ctx context.Context, id string) (domain.Content, error) {
    if _, err := uuid.Parse(id); err != nil {
        return domain.Content{}, ErrNotFound
    }
    row := s.q.QueryRow(ctx, `SELECT `+contentColumns+` FROM contents WHERE id = $1`, id)
    c, err := scanContent(row)
    return c, notFound(err)
}

func (s *store) DeleteContent(ctx context.Context, id string) error {
    if _, err := uuid.Parse(id); err != nil {
        return ErrNotFound
    }
    tag, err := s.q.Exec(ctx, `DELETE FROM contents WHERE id = $1`, id)
    if err != nil { return err }
    if tag.RowsAffected() == 0 { return ErrNotFound }
    return nil
}

func (s *store) ListFlagged(ctx context.Context, limit, offset int) ([]domain.Content, int, error) {
    var total int
    if err := s.q.QueryRow(ctx, `SELECT count(*) FROM contents WHERE flagged_for_review`).Scan(&total); err != nil {
        return nil, 0, err
    }
    rows, err := s.q.Query(ctx, `
        SELECT `+contentColumns+` FROM contents
        WHERE flagged_for_review
        ORDER BY created_at
        LIMIT $1 OFFSET $2
    `, nullLimit(limit), offset)
    if err != nil {
        return nil, 0, err
    }
    out, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Content, error) { return scanContent(r) })
    return out, total, err
}

func (s *store) ClearFlag(ctx context.Context, id string) error {
    if _, err := uuid.Parse(id); err != nil {
        return ErrNotFound
    }
    tag, err := s.q.Exec(ctx, `UPDATE contents SET flagged_for_review = false, spam_status = $2 WHERE id = $1`, id, domain.NotSpam)
    if err != nil { return err }
    if tag.RowsAffected() == 0 { return ErrNotFound }
    return nil
}

// AddReport inserts the report and bumps the count in one statement. No row
// comes back for a repeat reporter or unknown content; GetContent tells the
// two apart.
func (s *store) AddReport(ctx context.Context, id string, r domain.Report) (domain.Content, error) {
    if _, err := uuid.Parse(id); err != nil {
        return domain.Content{}, ErrNotFound
    }
    row := s.q.QueryRow(ctx, `
        WITH ins AS (
            INSERT INTO content_reports (content_id, reporter_id, reason, reported_at)
            SELECT id, $2, $3, COALESCE($4, now()) FROM contents WHERE id = $1
            ON CONFLICT (content_id, reporter_id) DO NOTHING
            RETURNING content_id, reported_at
        )
        UPDATE contents SET report_count = contents.report_count + 1, last_reported_at = ins.reported_at
        FROM ins WHERE contents.id = ins.content_id
        RETURNING `+qualified("contents", contentColumns), id, r.ReporterID, r.Reason, nullTime(r.ReportedAt))
    c, err := scanContent(row)
    if errors.Is(err, pgx.ErrNoRows) {
        return s.GetContent(ctx, id)
    }
    return c, err
}

func (s *store) HideContent(ctx context.Context, id string) error {
    if _, err := uuid.Parse(id); err != nil {
        return ErrNotFound
    }
    tag, err := s.q.Exec(ctx, `UPDATE contents SET hidden = true WHERE id = $1`, id)
    if err != nil { return err }
    if tag.RowsAffected() == 0 { return ErrNotFound }
    return nil
}

func (s *store) ListReported(ctx context.Context, limit, offset int) ([]domain.Content, int, error) {
    var total int
    if err := s.q.QueryRow(ctx, `SELECT count(*) FROM contents WHERE report_count > 0`).Scan(&total); err != nil {
        return nil, 0, err
    }
    rows, err := s.q.Query(ctx, `
        SELECT `+contentColumns+` FROM contents
        WHERE report_count > 0
        ORDER BY last_reported_at DESC
        LIMIT $1 OFFSET $2
    `, nullLimit(limit), offset)
    if err != nil {
        return nil, 0, err
    }
    out, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Content, error) { return scanContent(r) })
    return out, total, err
}

func scanContent(row pgx.Row) (domain.Content, error) {
    var c domain.Content
    err := row.Scan(&c.ID, &c.Kind, &c.ContentType, &c.AuthorID, &c.Title, &c.Body, &c.LinkURL, &c.CommunityID,
        &c.OriginalContentID, &c.SpamStatus, &c.SpamConfidence, &c.SpamReason, &c.FlaggedForReview,
        &c.ReportCount, &c.LastReportedAt, &c.Hidden, &c.CreatedAt)
    return c, err
}
