// Package memory is an in-process implementation of every repository port.
// It backs tests and single-node local runs; nothing survives a restart.
package memory

import (
    "context"
    "maps"
    "sort"
    "sync"
    "time"

    "github.com/google/uuid"

    "moderator/internal/domain"
    "moderator/internal/ports"
)

type tables struct {
    mu      sync.Mutex
    txMu    sync.Mutex
    content map[string]domain.Content
    spam    map[string]domain.SpamRecord
    authors map[string]domain.AuthorOffenseState
    reports map[string]map[string]domain.Report
    pending map[string]domain.PendingSubmission
    now     func() time.Time
}

// Store is a handle on the shared tables. Inside InTx the handle carries a
// journal of the rows it changed.
type Store struct {
    *tables
    j *journal
}

func New() *Store {
    return &Store{tables: &tables{
        content: make(map[string]domain.Content),
        spam:    make(map[string]domain.SpamRecord),
        authors: make(map[string]domain.AuthorOffenseState),
        reports: make(map[string]map[string]domain.Report),
        pending: make(map[string]domain.PendingSubmission),
        now:     time.Now,
    }}
}

var (
    _ ports.ContentRepository = (*Store)(nil)
    _ ports.SpamRepository    = (*Store)(nil)
    _ ports.AuthorRepository  = (*Store)(nil)
    _ ports.PendingStore      = (*Store)(nil)
    _ ports.Transactor        = (*Store)(nil)
)

// Stores returns the store bound to every repository port.
func (s *Store) Stores() ports.Stores {
    return ports.Stores{Content: s, Spam: s, Authors: s}
}

// journal holds undo steps for the rows one transaction wrote. Rolling back
// restores only those rows, so writes made outside the transaction survive.
type journal struct {
    undo []func()
}

// track saves the current value of m[k] before the caller overwrites it.
// Call with mu held.
func track[K comparable, V any](j *journal, m map[K]V, k K) {
    if j == nil {
        return
    }
    prev, ok := m[k]
    j.undo = append(j.undo, func() {
        if ok {
            m[k] = prev
        } else {
            delete(m, k)
        }
    })
}

// InTx serializes transactional work. When fn fails every row it wrote is
// put back the way it was; nested calls join the outer transaction.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, st ports.Stores) error) error {
    if s.j != nil {
        return fn(ctx, s.Stores())
    }
    s.txMu.Lock()
    defer s.txMu.Unlock()

    tx := &Store{tables: s.tables, j: &journal{}}
    if err := fn(ctx, tx.Stores()); err != nil {
        s.mu.Lock()
        for i := len(tx.j.undo) - 1; i >= 0; i-- {
            tx.j.undo[i]()
        }
        s.mu.Unlock()
        return err
    }
    return nil
}

// ContentRepository

func (s *Store) CreateContent(ctx context.Context, c domain.Content) (string, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    c.ID = uuid.NewString()
    if c.CreatedAt.IsZero() {
        c.CreatedAt = s.now().UTC()
    }
    track(s.j, s.content, c.ID)
    s.content[c.ID] = c
    return c.ID, nil
}

func (s *Store) GetContent(ctx context.Context, id string) (domain.Content, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    c, ok := s.content[id]
    if !ok {
        return c, domain.ErrNotFound
    }
    return c, nil
}

func (s *Store) DeleteContent(ctx context.Context, id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.content[id]; !ok {
        return domain.ErrNotFound
    }
    track(s.j, s.content, id)
    track(s.j, s.reports, id)
    delete(s.content, id)
    delete(s.reports, id)
    return nil
}

func (s *Store) ListFlagged(ctx context.Context, limit, offset int) ([]domain.Content, int, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var out []domain.Content
    for _, c := range s.content {
        if c.FlaggedForReview {
            out = append(out, c)
        }
    }
    sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
    total := len(out)
    return page(out, limit, offset), total, nil
}

func (s *Store) ClearFlag(ctx context.Context, id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    c, ok := s.content[id]
    if !ok {
        return domain.ErrNotFound
    }
    c.FlaggedForReview = false
    c.SpamStatus = domain.NotSpam
    track(s.j, s.content, id)
    s.content[id] = c
    return nil
}

func (s *Store) AddReport(ctx context.Context, id string, r domain.Report) (domain.Content, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    c, ok := s.content[id]
    if !ok {
        return c, domain.ErrNotFound
    }
    if _, dup := s.reports[id][r.ReporterID]; dup {
        return c, nil
    }
    if r.ReportedAt.IsZero() {
        r.ReportedAt = s.now().UTC()
    }
    byReporter := maps.Clone(s.reports[id])
    if byReporter == nil {
        byReporter = make(map[string]domain.Report)
    }
    byReporter[r.ReporterID] = r
    track(s.j, s.reports, id)
    s.reports[id] = byReporter

    c.ReportCount = len(byReporter)
    at := r.ReportedAt
    c.LastReportedAt = &at
    track(s.j, s.content, id)
    s.content[id] = c
    return c, nil
}

func (s *Store) HideContent(ctx context.Context, id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    c, ok := s.content[id]
    if !ok {
        return domain.ErrNotFound
    }
    c.Hidden = true
    track(s.j, s.content, id)
    s.content[id] = c
    return nil
}

func (s *Store) ListReported(ctx context.Context, limit, offset int) ([]domain.Content, int, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var out []domain.Content
    for _, c := range s.content {
        if c.ReportCount > 0 {
            out = append(out, c)
        }
    }
    sort.Slice(out, func(i, j int) bool { return out[i].LastReportedAt.After(*out[j].LastReportedAt) })
    total := len(out)
    return page(out, limit, offset), total, nil
}

// SpamRepository

func (s *Store) CreateSpamRecord(ctx context.Context, r domain.SpamRecord) (string, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    r.ID = uuid.NewString()
    track(s.j, s.spam, r.ID)
    s.spam[r.ID] = r
    return r.ID, nil
}

func (s *Store) GetSpamRecord(ctx context.Context, id string) (domain.SpamRecord, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    r, ok := s.spam[id]
    if !ok {
        return r, domain.ErrNotFound
    }
    return r, nil
}

func (s *Store) DeleteSpamRecord(ctx context.Context, id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.spam[id]; !ok {
        return domain.ErrNotFound
    }
    track(s.j, s.spam, id)
    delete(s.spam, id)
    return nil
}

func (s *Store) ListSpamRecords(ctx context.Context, f domain.SpamFilter) ([]domain.SpamRecord, int, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var out []domain.SpamRecord
    for _, r := range s.spam {
        if f.AuthorID != "" && r.AuthorID != f.AuthorID {
            continue
        }
        out = append(out, r)
    }
    sort.Slice(out, func(i, j int) bool { return out[i].DetectedAt.After(out[j].DetectedAt) })
    total := len(out)
    return page(out, f.Limit, f.Offset), total, nil
}

// AuthorRepository

func (s *Store) IncrementSpamCount(ctx context.Context, authorID string) (domain.AuthorOffenseState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    a := s.author(authorID)
    a.SpamPostCount++
    track(s.j, s.authors, authorID)
    s.authors[authorID] = a
    return a, nil
}

func (s *Store) DecrementSpamCount(ctx context.Context, authorID string) (domain.AuthorOffenseState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    a := s.author(authorID)
    if a.SpamPostCount > 0 {
        a.SpamPostCount--
    }
    track(s.j, s.authors, authorID)
    s.authors[authorID] = a
    return a, nil
}

func (s *Store) SetBan(ctx context.Context, authorID string, banned bool, reason string) (domain.AuthorOffenseState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    a := s.author(authorID)
    a.IsBanned = banned
    if banned {
        now := s.now().UTC()
        a.BanReason, a.BannedAt = &reason, &now
    } else {
        a.BanReason, a.BannedAt = nil, nil
    }
    track(s.j, s.authors, authorID)
    s.authors[authorID] = a
    return a, nil
}

func (s *Store) GetAuthor(ctx context.Context, authorID string) (domain.AuthorOffenseState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.author(authorID), nil
}

func (s *Store) CountBanned(ctx context.Context) (int, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    n := 0
    for _, a := range s.authors {
        if a.IsBanned {
            n++
        }
    }
    return n, nil
}

func (s *Store) author(id string) domain.AuthorOffenseState {
    a, ok := s.authors[id]
    if !ok {
        a = domain.AuthorOffenseState{AuthorID: id}
    }
    return a
}

// PendingStore

func (s *Store) Put(ctx context.Context, p domain.PendingSubmission) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.pending[p.Token] = p
    return nil
}

func (s *Store) Take(ctx context.Context, token string) (domain.PendingSubmission, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    p, ok := s.pending[token]
    if !ok {
        return p, domain.ErrPendingNotFound
    }
    delete(s.pending, token)
    return p, nil
}

func (s *Store) Purge(ctx context.Context, olderThan time.Time) (int, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    n := 0
    for k, p := range s.pending {
        if p.CreatedAt.Before(olderThan) {
            delete(s.pending, k)
            n++
        }
    }
    return n, nil
}

func page[T any](in []T, limit, offset int) []T {
    if offset >= len(in) {
        return []T{}
    }
    in = in[offset:]
    if limit > 0 && limit < len(in) {
        in = in[:limit]
    }
    return in
}
