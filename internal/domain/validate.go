package domain

import (
    "fmt"
    "strings"
)

// Normalize fills defaults and checks the fields every submission needs
// before any classification work starts.
func (s *Submission) Normalize() error {
    s.AuthorID = strings.TrimSpace(s.AuthorID)
    if s.AuthorID == "" {
        return fmt.Errorf("%w: author id is required", ErrInvalidSubmission)
    }
    if s.Kind == "" {
        s.Kind = KindPost
    }
    if s.Kind != KindPost && s.Kind != KindComment {
        return fmt.Errorf("%w: unknown kind %q", ErrInvalidSubmission, s.Kind)
    }
    if s.ContentType == "" {
        s.ContentType = ContentText
    }
    s.ContentType = ContentType(strings.ToLower(string(s.ContentType)))
    if !s.ContentType.Valid() {
        return fmt.Errorf("%w: unknown content type %q", ErrInvalidSubmission, s.ContentType)
    }
    if s.Kind == KindComment && (s.OriginalContentID == nil || *s.OriginalContentID == "") {
        return fmt.Errorf("%w: comments require the parent content id", ErrInvalidSubmission)
    }
    if s.ContentType == ContentLink && s.LinkURL == "" {
        return fmt.Errorf("%w: link submissions require a url", ErrInvalidSubmission)
    }
    return nil
}

// ScanText is the text scanned when a caller does not supply one.
func (s Submission) ScanText() string {
    parts := make([]string, 0, 3)
    for _, p := range []string{s.Title, s.Body, s.LinkURL} {
        if p != "" {
            parts = append(parts, p)
        }
    }
    return strings.Join(parts, "\n")
}
