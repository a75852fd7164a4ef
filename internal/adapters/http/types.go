package httpadapter

import (
    api "moderator/internal/api"
    "moderator/internal/domain"
)

// Conversions between the generated API models and the domain.

func submissionFromAPI(b api.Submission) domain.Submission {
    return domain.Submission{
        AuthorID:          b.AuthorId,
        Kind:              domain.ContentKind(deref(b.Kind)),
        ContentType:       domain.ContentType(deref(b.ContentType)),
        Title:             deref(b.Title),
        Body:              deref(b.Body),
        LinkURL:           deref(b.LinkUrl),
        CommunityID:       b.CommunityId,
        OriginalContentID: b.OriginalContentId,
    }
}

// lifecycleToAPI hides internals from submitters: a rejection only
// carries the human readable reason.
func lifecycleToAPI(r domain.LifecycleResult) api.LifecycleResult {
    out := api.LifecycleResult{
        Status:    string(r.Status),
        ContentId: optional(r.ContentID),
        Token:     optional(r.Token),
        Reason:    optional(r.Reason),
    }
    if r.FlaggedForReview {
        flagged := true
        out.FlaggedForReview = &flagged
    }
    if r.Status == domain.StatusPendingConfirmation {
        c := r.Confidence
        out.Confidence = &c
    }
    return out
}

func contentToAPI(c domain.Content) api.Content {
    return api.Content{
        Id:                c.ID,
        AuthorId:          c.AuthorID,
        Kind:              string(c.Kind),
        ContentType:       string(c.ContentType),
        Title:             optional(c.Title),
        Body:              optional(c.Body),
        LinkUrl:           optional(c.LinkURL),
        CommunityId:       c.CommunityID,
        OriginalContentId: c.OriginalContentID,
        SpamStatus:        string(c.SpamStatus),
        SpamConfidence:    c.SpamConfidence,
        SpamReason:        optional(c.SpamReason),
        FlaggedForReview:  c.FlaggedForReview,
        ReportCount:       c.ReportCount,
        LastReportedAt:    c.LastReportedAt,
        Hidden:            c.Hidden,
        CreatedAt:         c.CreatedAt,
    }
}

func spamRecordToAPI(r domain.SpamRecord) api.SpamRecord {
    return api.SpamRecord{
        Id:                r.ID,
        OriginalContentId: r.OriginalContentID,
        Kind:              string(r.Kind),
        Title:             optional(r.Title),
        Body:              optional(r.Body),
        LinkUrl:           optional(r.LinkURL),
        LinkDomain:        optional(r.LinkDomain),
        AuthorId:          r.AuthorID,
        CommunityId:       r.CommunityID,
        ContentType:       string(r.ContentType),
        SpamReason:        r.SpamReason,
        Confidence:        r.Confidence,
        DetectedAt:        r.DetectedAt,
        ArchivedAt:        r.ArchivedAt,
    }
}

func authorToAPI(a domain.AuthorOffenseState) api.Author {
    return api.Author{
        AuthorId:      a.AuthorID,
        SpamPostCount: a.SpamPostCount,
        IsBanned:      a.IsBanned,
        BanReason:     a.BanReason,
        BannedAt:      a.BannedAt,
    }
}

func optional(s string) *string {
    if s == "" {
        return nil
    }
    return &s
}

func deref(s *string) string {
    if s == nil {
        return ""
    }
    return *s
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
    out := make([]U, 0, len(in))
    for _, v := range in {
        out = append(out, f(v))
    }
    return out
}
