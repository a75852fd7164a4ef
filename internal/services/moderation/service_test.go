package moderation

import (
    "context"
    "errors"
    "sync"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "moderator/internal/adapters/memory"
    "moderator/internal/domain"
    "moderator/internal/ports"
    "moderator/internal/services/keyword"
)

type fixture struct {
    store      *memory.Store
    classifier *StaticClassifier
    notifier   *recordingNotifier
    svc        *Service
}

func newFixture(sig domain.ClassificationSignal) *fixture {
    store := memory.New()
    cl := &StaticClassifier{Signal: sig}
    n := &recordingNotifier{}
    svc := NewService(NewCombiner(cl, keyword.NewDefault(), DefaultPolicy()), Deps{
        Stores:   store.Stores(),
        Tx:       store,
        Pending:  store,
        Notifier: n,
    })
    return &fixture{store: store, classifier: cl, notifier: n, svc: svc}
}

type recordingNotifier struct {
    mu      sync.Mutex
    authors []string
    reviews []string
}

func (r *recordingNotifier) NotifyAuthor(ctx context.Context, authorID, kind, message string) error {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.authors = append(r.authors, authorID+":"+kind)
    return nil
}

func (r *recordingNotifier) NotifyReview(ctx context.Context, c domain.Content) error {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.reviews = append(r.reviews, c.ID)
    return nil
}

func post(author string) domain.Submission {
    return domain.Submission{AuthorID: author, Title: "title"}
}

func TestScenarioRejectOnKeywords(t *testing.T) {
    assert := assert.New(t)
    require := require.New(t)
    ctx := context.Background()
    f := newFixture(signal(0.3, 0, "Detected as spam by AI"))

    text := "Claim your free prize now, win cash today!"
    res, err := f.svc.EvaluateAndApply(ctx, text, post("a1"))
    require.NoError(err)
    assert.Equal(domain.StatusRejected, res.Status)
    assert.Equal(0.9, res.Confidence)
    assert.NotEmpty(res.SpamRecordID)
    assert.Empty(res.ContentID)

    rec, err := f.store.GetSpamRecord(ctx, res.SpamRecordID)
    require.NoError(err)
    assert.Equal("a1", rec.AuthorID)
    assert.Contains(rec.SpamReason, "Detected promotional spam keywords")
    assert.False(rec.ArchivedAt.Before(rec.DetectedAt))
    assert.Nil(rec.OriginalContentID)

    a, _ := f.store.GetAuthor(ctx, "a1")
    assert.Equal(1, a.SpamPostCount)
    assert.False(a.IsBanned)
}

func TestScenarioAllow(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    f := newFixture(signal(0.1, 0.05, "Detected as spam by AI"))

    res, err := f.svc.EvaluateAndApply(ctx, "I love hiking in the mountains", post("a1"))
    assert.NoError(err)
    assert.Equal(domain.StatusPublished, res.Status)
    assert.Equal(0.1, res.Confidence)
    assert.False(res.FlaggedForReview)

    c, err := f.store.GetContent(ctx, res.ContentID)
    assert.NoError(err)
    assert.Equal(domain.NotSpam, c.SpamStatus)

    recs, _, _ := f.store.ListSpamRecords(ctx, domain.SpamFilter{})
    assert.Empty(recs)
    a, _ := f.store.GetAuthor(ctx, "a1")
    assert.Equal(0, a.SpamPostCount)
}

func TestScenarioClassifierDown(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    f := newFixture(Unavailable())

    res, err := f.svc.EvaluateAndApply(ctx, "I love hiking in the mountains", post("a1"))
    assert.NoError(err)
    assert.Equal(domain.StatusPublished, res.Status)
    assert.Equal(0.0, res.Confidence)

    recs, _, _ := f.store.ListSpamRecords(ctx, domain.SpamFilter{})
    assert.Empty(recs)
    a, _ := f.store.GetAuthor(ctx, "a1")
    assert.Equal(0, a.SpamPostCount)
}

func TestScenarioQuarantineThenConfirm(t *testing.T) {
    assert := assert.New(t)
    require := require.New(t)
    ctx := context.Background()
    f := newFixture(signal(0, 0.7, "Detected as spam by AI"))

    res, err := f.svc.EvaluateAndApply(ctx, "you people are the worst", post("a1"))
    require.NoError(err)
    assert.Equal(domain.StatusPendingConfirmation, res.Status)
    assert.NotEmpty(res.Token)
    assert.Empty(res.ContentID)
    assert.Equal(0.7, res.Confidence)
    assert.Equal("Detected as spam by AI", res.Reason)

    flagged, _, _ := f.store.ListFlagged(ctx, 0, 0)
    assert.Empty(flagged)

    res, err = f.svc.ConfirmQuarantined(ctx, res.Token)
    require.NoError(err)
    assert.Equal(domain.StatusPublished, res.Status)
    assert.True(res.FlaggedForReview)

    c, err := f.store.GetContent(ctx, res.ContentID)
    require.NoError(err)
    assert.True(c.FlaggedForReview)
    assert.Equal(domain.MightBeSpam, c.SpamStatus)
    assert.Equal([]string{res.ContentID}, f.notifier.reviews)

    recs, _, _ := f.store.ListSpamRecords(ctx, domain.SpamFilter{})
    assert.Empty(recs)
    a, _ := f.store.GetAuthor(ctx, "a1")
    assert.Equal(0, a.SpamPostCount)

    // tokens are single use
    _, err = f.svc.ConfirmQuarantined(ctx, res.Token)
    assert.ErrorIs(err, domain.ErrPendingNotFound)
}

func TestQuarantineDecline(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    f := newFixture(signal(0.65, 0, "Detected as spam by AI"))

    res, err := f.svc.EvaluateAndApply(ctx, "borderline", post("a1"))
    assert.NoError(err)
    token := res.Token
    res, err = f.svc.DeclineQuarantined(ctx, token)
    assert.NoError(err)
    assert.Equal(domain.StatusDeclined, res.Status)

    _, err = f.svc.ConfirmQuarantined(ctx, token)
    assert.ErrorIs(err, domain.ErrPendingNotFound)
    _, err = f.svc.DeclineQuarantined(ctx, "missing")
    assert.ErrorIs(err, domain.ErrPendingNotFound)
}

func TestEscalationBansOnFifthReject(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    f := newFixture(signal(0.95, 0, "Detected as spam by AI"))

    for i := 0; i < 4; i++ {
        res, err := f.svc.EvaluateAndApply(ctx, "buy stuff", post("a1"))
        assert.NoError(err)
        assert.Equal(domain.StatusRejected, res.Status)
    }
    a, _ := f.store.GetAuthor(ctx, "a1")
    assert.Equal(4, a.SpamPostCount)
    assert.False(a.IsBanned)
    assert.Empty(f.notifier.authors)

    _, err := f.svc.EvaluateAndApply(ctx, "buy stuff", post("a1"))
    assert.NoError(err)
    a, _ = f.store.GetAuthor(ctx, "a1")
    assert.Equal(5, a.SpamPostCount)
    assert.True(a.IsBanned)
    assert.Equal(AutoBanReason, *a.BanReason)
    assert.Equal([]string{"a1:ban"}, f.notifier.authors)

    // already banned: counted, not re-banned
    _, err = f.svc.EvaluateAndApply(ctx, "buy stuff", post("a1"))
    assert.NoError(err)
    a, _ = f.store.GetAuthor(ctx, "a1")
    assert.Equal(6, a.SpamPostCount)
    assert.Len(f.notifier.authors, 1)
}

func TestConcurrentRejectsAreCounted(t *testing.T) {
    ctx := context.Background()
    f := newFixture(signal(0.99, 0, "Detected as spam by AI"))
    var wg sync.WaitGroup
    for i := 0; i < 20; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            _, err := f.svc.EvaluateAndApply(ctx, "spam", post("a1"))
            assert.NoError(t, err)
        }()
    }
    wg.Wait()
    a, _ := f.store.GetAuthor(ctx, "a1")
    assert.Equal(t, 20, a.SpamPostCount)
    assert.True(t, a.IsBanned)
    recs, total, _ := f.store.ListSpamRecords(ctx, domain.SpamFilter{})
    assert.Equal(t, 20, total)
    assert.Len(t, recs, 20)
}

func TestInvalidSubmissionSkipsClassification(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    f := newFixture(signal(0.99, 0, "Detected as spam by AI"))

    _, err := f.svc.EvaluateAndApply(ctx, "spam", domain.Submission{Title: "x"})
    assert.ErrorIs(err, domain.ErrInvalidSubmission)

    _, err = f.svc.EvaluateAndApply(ctx, "spam", domain.Submission{AuthorID: "a1", Kind: domain.KindComment})
    assert.ErrorIs(err, domain.ErrInvalidSubmission)
    assert.Equal(0, f.classifier.Calls)
}

func TestCommentRejectKeepsParent(t *testing.T) {
    ctx := context.Background()
    f := newFixture(signal(0.99, 0, "Detected as spam by AI"))
    parent := "post-1"
    res, err := f.svc.EvaluateAndApply(ctx, "", domain.Submission{AuthorID: "a1", Kind: domain.KindComment, Body: "spam", OriginalContentID: &parent})
    require.NoError(t, err)
    rec, err := f.store.GetSpamRecord(ctx, res.SpamRecordID)
    require.NoError(t, err)
    require.NotNil(t, rec.OriginalContentID)
    assert.Equal(t, parent, *rec.OriginalContentID)
    assert.Equal(t, domain.KindComment, rec.Kind)
}

func TestLinkDomainRecorded(t *testing.T) {
    ctx := context.Background()
    f := newFixture(signal(0.99, 0, "Detected as spam by AI"))
    res, err := f.svc.EvaluateAndApply(ctx, "", domain.Submission{AuthorID: "a1", ContentType: domain.ContentLink, Title: "look", LinkURL: "https://login.secure-bank.co.uk/verify"})
    require.NoError(t, err)
    rec, err := f.store.GetSpamRecord(ctx, res.SpamRecordID)
    require.NoError(t, err)
    assert.Equal(t, "secure-bank.co.uk", rec.LinkDomain)
}

// failingAuthors fails every increment.
type failingAuthors struct {
    ports.AuthorRepository
}

func (failingAuthors) IncrementSpamCount(ctx context.Context, authorID string) (domain.AuthorOffenseState, error) {
    return domain.AuthorOffenseState{}, errors.New("db down")
}

func TestRejectStorageFailureSurfaces(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    store := memory.New()
    stores := store.Stores()
    stores.Authors = failingAuthors{store}
    svc := NewService(NewCombiner(&StaticClassifier{Signal: signal(0.99, 0, "x")}, keyword.NewDefault(), DefaultPolicy()), Deps{
        Stores:  stores,
        Pending: store,
    })

    _, err := svc.EvaluateAndApply(ctx, "spam", post("a1"))
    assert.Error(err)
    assert.Contains(err.Error(), "record rejection")

    // without a transactor the archive record is written first and survives
    recs, _, _ := store.ListSpamRecords(ctx, domain.SpamFilter{})
    assert.Len(recs, 1)
}

// flakyContent fails CreateContent while down is set.
type flakyContent struct {
    ports.ContentRepository
    down bool
}

func (f *flakyContent) CreateContent(ctx context.Context, c domain.Content) (string, error) {
    if f.down {
        return "", errors.New("db down")
    }
    return f.ContentRepository.CreateContent(ctx, c)
}

func TestConfirmFailureKeepsToken(t *testing.T) {
    assert := assert.New(t)
    require := require.New(t)
    ctx := context.Background()
    store := memory.New()
    content := &flakyContent{ContentRepository: store}
    stores := store.Stores()
    stores.Content = content
    svc := NewService(NewCombiner(&StaticClassifier{Signal: signal(0.7, 0, "Detected as spam by AI")}, keyword.NewDefault(), DefaultPolicy()), Deps{
        Stores:  stores,
        Tx:      store,
        Pending: store,
    })

    res, err := svc.EvaluateAndApply(ctx, "", post("a1"))
    require.NoError(err)
    require.Equal(domain.StatusPendingConfirmation, res.Status)
    token := res.Token

    content.down = true
    _, err = svc.ConfirmQuarantined(ctx, token)
    assert.Error(err)
    assert.NotErrorIs(err, domain.ErrPendingNotFound)
    flagged, _, _ := store.ListFlagged(ctx, 10, 0)
    assert.Empty(flagged)

    content.down = false
    res, err = svc.ConfirmQuarantined(ctx, token)
    require.NoError(err)
    assert.Equal(domain.StatusPublished, res.Status)
    assert.True(res.FlaggedForReview)
    _, err = store.GetContent(ctx, res.ContentID)
    assert.NoError(err)
}

func TestEvaluateHasNoSideEffects(t *testing.T) {
    ctx := context.Background()
    f := newFixture(signal(0.95, 0, "Detected as spam by AI"))
    v := f.svc.Evaluate(ctx, "anything")
    assert.Equal(t, domain.OutcomeReject, v.Outcome)
    recs, total, err := f.store.ListSpamRecords(ctx, domain.SpamFilter{})
    require.NoError(t, err)
    assert.Empty(t, recs)
    assert.Equal(t, 0, total)
}
