package admin

import (
    "context"
    "fmt"
    "log/slog"
    "time"

    "moderator/internal/domain"
    "moderator/internal/ports"
    "moderator/internal/services/moderation"
)

const (
    RestoredReason      = "Restored by admin"
    DefaultBanReason    = "Banned by admin"
    ReviewRejectReason  = "Rejected by admin review"
    DefaultReportReason = "Spam"
    // ReportHideThreshold is the number of distinct reporters that hides content.
    ReportHideThreshold = 3
    defaultListLimit    = 20
)

type Service struct {
    stores   ports.Stores
    tx       ports.Transactor
    notifier ports.Notifier
    log      *slog.Logger
    now      func() time.Time
}

func New(deps moderation.Deps) *Service {
    s := &Service{stores: deps.Stores, tx: deps.Tx, notifier: deps.Notifier, log: deps.Logger, now: deps.Now}
    if s.log == nil {
        s.log = slog.Default()
    }
    s.log = s.log.With("component", "admin")
    if s.now == nil {
        s.now = time.Now
    }
    if s.tx == nil {
        s.tx = moderation.Direct(deps.Stores)
    }
    return s
}

var _ ports.Admin = (*Service)(nil)

// RestoreSpamRecord turns an archived record back into live content, takes
// the offense off the author's count and deletes the record.
func (s *Service) RestoreSpamRecord(ctx context.Context, id string) (domain.Content, error) {
    var restored domain.Content
    err := s.tx.InTx(ctx, func(ctx context.Context, st ports.Stores) error {
        rec, err := st.Spam.GetSpamRecord(ctx, id)
        if err != nil {
            return err
        }
        restored = domain.Content{
            Submission: domain.Submission{
                AuthorID:          rec.AuthorID,
                Kind:              rec.Kind,
                ContentType:       rec.ContentType,
                Title:             rec.Title,
                Body:              rec.Body,
                LinkURL:           rec.LinkURL,
                CommunityID:       rec.CommunityID,
                OriginalContentID: rec.OriginalContentID,
            },
            SpamStatus: domain.NotSpam,
            SpamReason: RestoredReason,
            CreatedAt:  s.now().UTC(),
        }
        if restored.ID, err = st.Content.CreateContent(ctx, restored); err != nil {
            return err
        }
        if _, err = st.Authors.DecrementSpamCount(ctx, rec.AuthorID); err != nil {
            return err
        }
        return st.Spam.DeleteSpamRecord(ctx, id)
    })
    if err != nil {
        return domain.Content{}, fmt.Errorf("restore spam record %s: %w", id, err)
    }
    s.log.Info("spam record restored", "record", id, "content", restored.ID, "author", restored.AuthorID)
    s.notify(ctx, restored.AuthorID, "restore", fmt.Sprintf("Your post %q has been restored by an admin.", restored.Title))
    return restored, nil
}

// SetBan bans or unbans an author. Unbanning never resets the spam count.
func (s *Service) SetBan(ctx context.Context, authorID string, banned bool, reason string) (domain.AuthorOffenseState, error) {
    if authorID == "" {
        return domain.AuthorOffenseState{}, fmt.Errorf("%w: author id is required", domain.ErrInvalidSubmission)
    }
    if banned && reason == "" {
        reason = DefaultBanReason
    }
    if !banned {
        reason = ""
    }
    state, err := s.stores.Authors.SetBan(ctx, authorID, banned, reason)
    if err != nil {
        return state, fmt.Errorf("set ban for %s: %w", authorID, err)
    }
    msg := "Your account ban has been lifted."
    kind := "unban"
    if banned {
        msg, kind = "Your account has been banned. Reason: "+reason, "ban"
    }
    s.log.Info("author ban updated", "author", authorID, "banned", banned)
    s.notify(ctx, authorID, kind, msg)
    return state, nil
}

func (s *Service) Author(ctx context.Context, authorID string) (domain.AuthorOffenseState, error) {
    return s.stores.Authors.GetAuthor(ctx, authorID)
}

func (s *Service) ListSpamRecords(ctx context.Context, f domain.SpamFilter) ([]domain.SpamRecord, int, error) {
    if f.Limit <= 0 {
        f.Limit = defaultListLimit
    }
    if f.Offset < 0 {
        f.Offset = 0
    }
    return s.stores.Spam.ListSpamRecords(ctx, f)
}

func (s *Service) ReviewQueue(ctx context.Context, limit, offset int) ([]domain.Content, int, error) {
    if limit <= 0 {
        limit = defaultListLimit
    }
    if offset < 0 {
        offset = 0
    }
    return s.stores.Content.ListFlagged(ctx, limit, offset)
}

// ResolveReview settles content that went live after a confirmed quarantine.
// Approving clears the flag. Rejecting archives it as spam and counts the
// offense exactly like an automatic rejection.
func (s *Service) ResolveReview(ctx context.Context, contentID string, approve bool) error {
    if approve {
        err := s.tx.InTx(ctx, func(ctx context.Context, st ports.Stores) error {
            if _, err := flaggedContent(ctx, st, contentID); err != nil {
                return err
            }
            return st.Content.ClearFlag(ctx, contentID)
        })
        if err != nil {
            return fmt.Errorf("approve content %s: %w", contentID, err)
        }
        s.log.Info("review approved", "content", contentID)
        return nil
    }
    var (
        c      domain.Content
        banned bool
    )
    err := s.tx.InTx(ctx, func(ctx context.Context, st ports.Stores) error {
        var err error
        if c, err = flaggedContent(ctx, st, contentID); err != nil {
            return err
        }
        now := s.now().UTC()
        rec := domain.SpamRecord{
            OriginalContentID: c.OriginalContentID,
            Kind:              c.Kind,
            Title:             c.Title,
            Body:              c.Body,
            LinkURL:           c.LinkURL,
            LinkDomain:        moderation.LinkDomain(c.LinkURL),
            AuthorID:          c.AuthorID,
            CommunityID:       c.CommunityID,
            ContentType:       c.ContentType,
            SpamReason:        ReviewRejectReason,
            Confidence:        c.SpamConfidence,
            DetectedAt:        c.CreatedAt,
            ArchivedAt:        now,
        }
        if rec.DetectedAt.IsZero() || rec.DetectedAt.After(now) {
            rec.DetectedAt = now
        }
        if _, _, banned, err = moderation.ArchiveOffense(ctx, st, rec); err != nil {
            return err
        }
        return st.Content.DeleteContent(ctx, contentID)
    })
    if err != nil {
        return fmt.Errorf("reject content %s: %w", contentID, err)
    }
    s.log.Info("review rejected", "content", contentID, "author", c.AuthorID)
    if banned {
        s.notify(ctx, c.AuthorID, "ban", "Your account has been banned. Reason: "+moderation.AutoBanReason)
    }
    return nil
}

// flaggedContent loads content that is waiting for review. Anything else is
// reported as not found.
func flaggedContent(ctx context.Context, st ports.Stores, id string) (domain.Content, error) {
    c, err := st.Content.GetContent(ctx, id)
    if err != nil {
        return c, err
    }
    if !c.FlaggedForReview {
        return c, fmt.Errorf("content %s is not awaiting review: %w", id, domain.ErrNotFound)
    }
    return c, nil
}

// ReportContent records a user report. Content reported by
// ReportHideThreshold distinct reporters is hidden.
func (s *Service) ReportContent(ctx context.Context, contentID, reporterID, reason string) (domain.Content, error) {
    if reporterID == "" {
        return domain.Content{}, fmt.Errorf("%w: reporter id is required", domain.ErrInvalidSubmission)
    }
    if reason == "" {
        reason = DefaultReportReason
    }
    var (
        c      domain.Content
        hidden bool
    )
    err := s.tx.InTx(ctx, func(ctx context.Context, st ports.Stores) error {
        var err error
        c, err = st.Content.AddReport(ctx, contentID, domain.Report{ReporterID: reporterID, Reason: reason, ReportedAt: s.now().UTC()})
        if err != nil {
            return err
        }
        if c.ReportCount < ReportHideThreshold || c.Hidden {
            return nil
        }
        if err := st.Content.HideContent(ctx, contentID); err != nil {
            return err
        }
        c.Hidden, hidden = true, true
        return nil
    })
    if err != nil {
        return domain.Content{}, fmt.Errorf("report content %s: %w", contentID, err)
    }
    if hidden {
        s.log.Info("content hidden after reports", "content", contentID, "author", c.AuthorID, "reports", c.ReportCount)
        s.notify(ctx, c.AuthorID, "hidden", fmt.Sprintf("Your post %q was hidden after multiple reports.", c.Title))
    }
    return c, nil
}

func (s *Service) ReportedContent(ctx context.Context, limit, offset int) ([]domain.Content, int, error) {
    if limit <= 0 {
        limit = defaultListLimit
    }
    if offset < 0 {
        offset = 0
    }
    return s.stores.Content.ListReported(ctx, limit, offset)
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
    var out domain.Stats
    var err error
    if _, out.SpamRecords, err = s.stores.Spam.ListSpamRecords(ctx, domain.SpamFilter{Limit: 1}); err != nil {
        return out, err
    }
    if out.BannedAuthors, err = s.stores.Authors.CountBanned(ctx); err != nil {
        return out, err
    }
    if _, out.PendingReview, err = s.stores.Content.ListFlagged(ctx, 1, 0); err != nil {
        return out, err
    }
    if _, out.Reported, err = s.stores.Content.ListReported(ctx, 1, 0); err != nil {
        return out, err
    }
    return out, nil
}

func (s *Service) notify(ctx context.Context, authorID, kind, msg string) {
    if s.notifier == nil {
        return
    }
    if err := s.notifier.NotifyAuthor(ctx, authorID, kind, msg); err != nil {
        s.log.Warn("author notification failed", "author", authorID, "kind", kind, "err", err)
    }
}
