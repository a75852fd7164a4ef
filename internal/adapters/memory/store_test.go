package memory

import (
    "context"
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "moderator/internal/domain"
    "moderator/internal/ports"
)

func TestConcurrentIncrements(t *testing.T) {
    ctx := context.Background()
    s := New()
    var wg sync.WaitGroup
    for i := 0; i < 50; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            _, err := s.IncrementSpamCount(ctx, "a1")
            assert.NoError(t, err)
        }()
    }
    wg.Wait()
    a, err := s.GetAuthor(ctx, "a1")
    require.NoError(t, err)
    assert.Equal(t, 50, a.SpamPostCount)
}

func TestInTxRollsBack(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    s := New()

    boom := errors.New("boom")
    err := s.InTx(ctx, func(ctx context.Context, st ports.Stores) error {
        _, err := st.Spam.CreateSpamRecord(ctx, domain.SpamRecord{AuthorID: "a1", SpamReason: "x"})
        assert.NoError(err)
        _, err = st.Authors.IncrementSpamCount(ctx, "a1")
        assert.NoError(err)
        return boom
    })
    assert.ErrorIs(err, boom)

    recs, total, err := s.ListSpamRecords(ctx, domain.SpamFilter{})
    assert.NoError(err)
    assert.Empty(recs)
    assert.Equal(0, total)
    a, _ := s.GetAuthor(ctx, "a1")
    assert.Equal(0, a.SpamPostCount)
}

func TestBanAndDecrement(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    s := New()

    a, err := s.DecrementSpamCount(ctx, "a1")
    assert.NoError(err)
    assert.Equal(0, a.SpamPostCount)

    a, err = s.SetBan(ctx, "a1", true, "spam")
    assert.NoError(err)
    assert.True(a.IsBanned)
    assert.Equal("spam", *a.BanReason)
    n, _ := s.CountBanned(ctx)
    assert.Equal(1, n)

    a, err = s.SetBan(ctx, "a1", false, "")
    assert.NoError(err)
    assert.False(a.IsBanned)
    assert.Nil(a.BanReason)
}

func TestPendingTakeAndPurge(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    s := New()
    now := time.Now()

    assert.NoError(s.Put(ctx, domain.PendingSubmission{Token: "old", CreatedAt: now.Add(-2 * time.Hour)}))
    assert.NoError(s.Put(ctx, domain.PendingSubmission{Token: "new", CreatedAt: now}))

    n, err := s.Purge(ctx, now.Add(-time.Hour))
    assert.NoError(err)
    assert.Equal(1, n)

    _, err = s.Take(ctx, "old")
    assert.ErrorIs(err, domain.ErrPendingNotFound)
    p, err := s.Take(ctx, "new")
    assert.NoError(err)
    assert.Equal("new", p.Token)
    _, err = s.Take(ctx, "new")
    assert.ErrorIs(err, domain.ErrPendingNotFound)
}

func TestListSpamRecordsFilterAndPage(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    s := New()
    base := time.Now()
    for i := 0; i < 5; i++ {
        author := "a1"
        if i%2 == 1 {
            author = "a2"
        }
        _, err := s.CreateSpamRecord(ctx, domain.SpamRecord{AuthorID: author, SpamReason: "r", DetectedAt: base.Add(time.Duration(i) * time.Minute)})
        assert.NoError(err)
    }
    recs, total, err := s.ListSpamRecords(ctx, domain.SpamFilter{AuthorID: "a1", Limit: 2})
    assert.NoError(err)
    assert.Equal(3, total)
    assert.Len(recs, 2)
    assert.True(recs[0].DetectedAt.After(recs[1].DetectedAt))

    recs, _, err = s.ListSpamRecords(ctx, domain.SpamFilter{Offset: 10})
    assert.NoError(err)
    assert.Empty(recs)
}

func TestRollbackKeepsConcurrentWrites(t *testing.T) {
    assert := assert.New(t)
    require := require.New(t)
    ctx := context.Background()
    s := New()

    flagged, err := s.CreateContent(ctx, domain.Content{Submission: domain.Submission{AuthorID: "a2"}, FlaggedForReview: true})
    require.NoError(err)

    opened := make(chan struct{})
    release := make(chan struct{})
    boom := errors.New("boom")
    done := make(chan error, 1)
    go func() {
        done <- s.InTx(ctx, func(ctx context.Context, st ports.Stores) error {
            _, err := st.Authors.IncrementSpamCount(ctx, "a1")
            assert.NoError(err)
            close(opened)
            <-release
            return boom
        })
    }()

    <-opened
    published, err := s.CreateContent(ctx, domain.Content{Submission: domain.Submission{AuthorID: "a3", Title: "live"}})
    require.NoError(err)
    _, err = s.SetBan(ctx, "a4", true, "abuse")
    require.NoError(err)
    require.NoError(s.ClearFlag(ctx, flagged))
    close(release)
    assert.ErrorIs(<-done, boom)

    c, err := s.GetContent(ctx, published)
    require.NoError(err)
    assert.Equal("live", c.Title)
    a4, _ := s.GetAuthor(ctx, "a4")
    assert.True(a4.IsBanned)
    f, _ := s.GetContent(ctx, flagged)
    assert.False(f.FlaggedForReview)
    a1, _ := s.GetAuthor(ctx, "a1")
    assert.Equal(0, a1.SpamPostCount)
}

func TestRollbackRestoresDeletedRows(t *testing.T) {
    assert := assert.New(t)
    ctx := context.Background()
    s := New()
    id, err := s.CreateContent(ctx, domain.Content{Submission: domain.Submission{AuthorID: "a1", Title: "keep"}})
    assert.NoError(err)

    err = s.InTx(ctx, func(ctx context.Context, st ports.Stores) error {
        assert.NoError(st.Content.DeleteContent(ctx, id))
        return errors.New("boom")
    })
    assert.Error(err)
    c, err := s.GetContent(ctx, id)
    assert.NoError(err)
    assert.Equal("keep", c.Title)
}

func TestReports(t *testing.T) {
    assert := assert.New(t)
    require := require.New(t)
    ctx := context.Background()
    s := New()
    base := time.Now()
    first, _ := s.CreateContent(ctx, domain.Content{Submission: domain.Submission{AuthorID: "a1"}})
    second, _ := s.CreateContent(ctx, domain.Content{Submission: domain.Submission{AuthorID: "a2"}})

    c, err := s.AddReport(ctx, first, domain.Report{ReporterID: "r1", Reason: "Spam", ReportedAt: base})
    require.NoError(err)
    assert.Equal(1, c.ReportCount)
    c, err = s.AddReport(ctx, first, domain.Report{ReporterID: "r1", Reason: "Spam", ReportedAt: base.Add(time.Second)})
    require.NoError(err)
    assert.Equal(1, c.ReportCount)
    _, err = s.AddReport(ctx, second, domain.Report{ReporterID: "r1", ReportedAt: base.Add(time.Minute)})
    require.NoError(err)

    out, total, err := s.ListReported(ctx, 10, 0)
    require.NoError(err)
    assert.Equal(2, total)
    assert.Equal(second, out[0].ID)

    require.NoError(s.HideContent(ctx, first))
    c, _ = s.GetContent(ctx, first)
    assert.True(c.Hidden)

    _, err = s.AddReport(ctx, "missing", domain.Report{ReporterID: "r1"})
    assert.ErrorIs(err, domain.ErrNotFound)
}
