package domain

import "time"

// Core domain models shared by services and adapters. HTTP payloads are
// declared in the http adapter; keep these free of transport concerns.

type Outcome string

const (
    OutcomeAllow      Outcome = "ALLOW"
    OutcomeQuarantine Outcome = "QUARANTINE"
    OutcomeReject     Outcome = "REJECT"
)

type ReasonSource string

const (
    ReasonKeyword    ReasonSource = "KEYWORD"
    ReasonClassifier ReasonSource = "CLASSIFIER"
)

type SignalSource string

const (
    SourceClassifier  SignalSource = "classifier"
    SourceUnavailable SignalSource = "unavailable"
)

type ContentKind string

const (
    KindPost    ContentKind = "post"
    KindComment ContentKind = "comment"
)

type ContentType string

const (
    ContentText  ContentType = "text"
    ContentLink  ContentType = "link"
    ContentImage ContentType = "image"
)

func (t ContentType) Valid() bool {
    switch t {
    case ContentText, ContentLink, ContentImage:
        return true
    }
    return false
}

type SpamStatus string

const (
    NotSpam     SpamStatus = "not_spam"
    MightBeSpam SpamStatus = "might_be_spam"
)

type LifecycleStatus string

const (
    StatusPublished           LifecycleStatus = "PUBLISHED"
    StatusPendingConfirmation LifecycleStatus = "PENDING_CONFIRMATION"
    StatusRejected            LifecycleStatus = "REJECTED"
    StatusDeclined            LifecycleStatus = "DECLINED"
)

// ClassificationSignal is the normalized response of the external classifier.
type ClassificationSignal struct {
    SpamConfidence     float64
    ToxicityConfidence float64
    Label              string
    Source             SignalSource
}

// KeywordFinding is the result of one keyword scan. Confidence is zero unless
// Matched is set.
type KeywordFinding struct {
    Matched      bool
    MatchedTerms []string
    Confidence   float64
}

// Verdict is one moderation evaluation. Signal and Keywords are kept for
// operator logs; submitters only ever see Reason.
type Verdict struct {
    CombinedConfidence float64
    Outcome            Outcome
    Reason             string
    ReasonSource       ReasonSource
    Signal             ClassificationSignal
    Keywords           KeywordFinding
}

type Submission struct {
    AuthorID          string
    Kind              ContentKind
    ContentType       ContentType
    Title             string
    Body              string
    LinkURL           string
    CommunityID       *string
    OriginalContentID *string
}

// Content is a live post or comment.
type Content struct {
    ID               string
    Submission
    SpamStatus       SpamStatus
    SpamConfidence   float64
    SpamReason       string
    FlaggedForReview bool
    ReportCount      int
    LastReportedAt   *time.Time
    Hidden           bool
    CreatedAt        time.Time
}

// Report is one user report against live content. A reporter counts once
// per content.
type Report struct {
    ReporterID string
    Reason     string
    ReportedAt time.Time
}

// SpamRecord archives rejected content. OriginalContentID is the parent
// content for comments and usually nil for top-level posts.
type SpamRecord struct {
    ID                string
    OriginalContentID *string
    Kind              ContentKind
    Title             string
    Body              string
    LinkURL           string
    LinkDomain        string
    AuthorID          string
    CommunityID       *string
    ContentType       ContentType
    SpamReason        string
    Confidence        float64
    DetectedAt        time.Time
    ArchivedAt        time.Time
}

type AuthorOffenseState struct {
    AuthorID      string
    SpamPostCount int
    IsBanned      bool
    BanReason     *string
    BannedAt      *time.Time
}

// PendingSubmission is a quarantined submission waiting for the submitter to
// confirm or decline.
type PendingSubmission struct {
    Token      string
    Submission Submission
    Verdict    Verdict
    CreatedAt  time.Time
}

type LifecycleResult struct {
    Status           LifecycleStatus
    ContentID        string
    SpamRecordID     string
    Token            string
    Reason           string
    Confidence       float64
    FlaggedForReview bool
}

type SpamFilter struct {
    AuthorID string
    Limit    int
    Offset   int
}

type Stats struct {
    SpamRecords   int
    BannedAuthors int
    PendingReview int
    Reported      int
}
