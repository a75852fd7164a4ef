package moderation

import (
    "context"
    "fmt"
    "log/slog"
    "net/url"
    "time"

    "github.com/google/uuid"
    "golang.org/x/net/publicsuffix"

    "moderator/internal/domain"
    "moderator/internal/ports"
)

const (
    // EscalationThreshold is the spam count at which an author is banned.
    EscalationThreshold = 5
    AutoBanReason       = "Excessive spam"
)

// Deps bundles the collaborators the coordinator writes to.
type Deps struct {
    Stores   ports.Stores
    Tx       ports.Transactor
    Pending  ports.PendingStore
    Notifier ports.Notifier
    Logger   *slog.Logger
    Now      func() time.Time
}

// Coordinator turns a verdict into the matching lifecycle transition.
type Coordinator struct {
    deps Deps
    log  *slog.Logger
}

func NewCoordinator(deps Deps) *Coordinator {
    if deps.Logger == nil {
        deps.Logger = slog.Default()
    }
    if deps.Now == nil {
        deps.Now = time.Now
    }
    if deps.Tx == nil {
        deps.Tx = Direct(deps.Stores)
    }
    return &Coordinator{deps: deps, log: deps.Logger.With("component", "coordinator")}
}

// Apply performs the transition for verdict. Storage errors are returned;
// nothing is retried here.
func (c *Coordinator) Apply(ctx context.Context, v domain.Verdict, sub domain.Submission) (domain.LifecycleResult, error) {
    switch v.Outcome {
    case domain.OutcomeAllow:
        return c.publish(ctx, v, sub)
    case domain.OutcomeQuarantine:
        return c.hold(ctx, v, sub)
    case domain.OutcomeReject:
        return c.reject(ctx, v, sub)
    }
    return domain.LifecycleResult{}, fmt.Errorf("unknown outcome %q", v.Outcome)
}

func (c *Coordinator) publish(ctx context.Context, v domain.Verdict, sub domain.Submission) (domain.LifecycleResult, error) {
    id, err := c.deps.Stores.Content.CreateContent(ctx, domain.Content{
        Submission:     sub,
        SpamStatus:     domain.NotSpam,
        SpamConfidence: v.CombinedConfidence,
        CreatedAt:      c.deps.Now().UTC(),
    })
    if err != nil {
        return domain.LifecycleResult{}, fmt.Errorf("publish content: %w", err)
    }
    return domain.LifecycleResult{Status: domain.StatusPublished, ContentID: id, Confidence: v.CombinedConfidence}, nil
}

func (c *Coordinator) hold(ctx context.Context, v domain.Verdict, sub domain.Submission) (domain.LifecycleResult, error) {
    p := domain.PendingSubmission{
        Token:      uuid.NewString(),
        Submission: sub,
        Verdict:    v,
        CreatedAt:  c.deps.Now().UTC(),
    }
    if err := c.deps.Pending.Put(ctx, p); err != nil {
        return domain.LifecycleResult{}, fmt.Errorf("hold submission: %w", err)
    }
    return domain.LifecycleResult{
        Status:     domain.StatusPendingConfirmation,
        Token:      p.Token,
        Reason:     v.Reason,
        Confidence: v.CombinedConfidence,
    }, nil
}

func (c *Coordinator) reject(ctx context.Context, v domain.Verdict, sub domain.Submission) (domain.LifecycleResult, error) {
    now := c.deps.Now().UTC()
    rec := domain.SpamRecord{
        OriginalContentID: sub.OriginalContentID,
        Kind:              sub.Kind,
        Title:             sub.Title,
        Body:              sub.Body,
        LinkURL:           sub.LinkURL,
        LinkDomain:        LinkDomain(sub.LinkURL),
        AuthorID:          sub.AuthorID,
        CommunityID:       sub.CommunityID,
        ContentType:       sub.ContentType,
        SpamReason:        v.Reason,
        Confidence:        v.CombinedConfidence,
        DetectedAt:        now,
        ArchivedAt:        now,
    }
    var (
        recordID string
        state    domain.AuthorOffenseState
        banned   bool
    )
    err := c.deps.Tx.InTx(ctx, func(ctx context.Context, s ports.Stores) error {
        var err error
        recordID, state, banned, err = ArchiveOffense(ctx, s, rec)
        return err
    })
    if err != nil {
        return domain.LifecycleResult{}, fmt.Errorf("record rejection: %w", err)
    }
    if banned {
        autoBanCount.Inc()
        c.log.Info("author banned", "author", sub.AuthorID, "spam_count", state.SpamPostCount)
        c.notify(ctx, sub.AuthorID, "ban", "Your account has been banned. Reason: "+AutoBanReason)
    }
    return domain.LifecycleResult{
        Status:       domain.StatusRejected,
        SpamRecordID: recordID,
        Reason:       v.Reason,
        Confidence:   v.CombinedConfidence,
    }, nil
}

// ArchiveOffense archives rec and counts the offense against its author,
// banning at the escalation threshold. The bool reports a new ban. The record
// is written before the count so a partial failure leaves an orphan record
// rather than an undercounted author.
func ArchiveOffense(ctx context.Context, s ports.Stores, rec domain.SpamRecord) (string, domain.AuthorOffenseState, bool, error) {
    if rec.SpamReason == "" {
        return "", domain.AuthorOffenseState{}, false, fmt.Errorf("spam record without reason")
    }
    id, err := s.Spam.CreateSpamRecord(ctx, rec)
    if err != nil {
        return "", domain.AuthorOffenseState{}, false, err
    }
    state, err := s.Authors.IncrementSpamCount(ctx, rec.AuthorID)
    if err != nil {
        return id, state, false, err
    }
    if state.SpamPostCount < EscalationThreshold || state.IsBanned {
        return id, state, false, nil
    }
    state, err = s.Authors.SetBan(ctx, rec.AuthorID, true, AutoBanReason)
    return id, state, err == nil, err
}

func (c *Coordinator) notify(ctx context.Context, authorID, kind, msg string) {
    if c.deps.Notifier == nil {
        return
    }
    if err := c.deps.Notifier.NotifyAuthor(ctx, authorID, kind, msg); err != nil {
        c.log.Warn("author notification failed", "author", authorID, "kind", kind, "err", err)
    }
}

func LinkDomain(raw string) string {
    if raw == "" {
        return ""
    }
    u, err := url.Parse(raw)
    if err != nil {
        return ""
    }
    host := u.Hostname()
    registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
    if err != nil {
        return host
    }
    return registrable
}

// Direct runs transactional work straight against the stores, for backends
// without transactions.
func Direct(s ports.Stores) ports.Transactor { return direct{s} }

type direct struct{ s ports.Stores }

func (d direct) InTx(ctx context.Context, fn func(ctx context.Context, s ports.Stores) error) error {
    return fn(ctx, d.s)
}
