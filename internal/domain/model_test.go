package domain

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestSubmissionNormalize(t *testing.T) {
    assert := assert.New(t)
    parent := "p1"
    empty := ""

    s := Submission{AuthorID: " a1 ", Title: "hello"}
    assert.NoError(s.Normalize())
    assert.Equal("a1", s.AuthorID)
    assert.Equal(KindPost, s.Kind)
    assert.Equal(ContentText, s.ContentType)

    s = Submission{Title: "no author"}
    assert.True(errors.Is(s.Normalize(), ErrInvalidSubmission))

    s = Submission{AuthorID: "a1", Kind: KindComment, Body: "hi"}
    assert.True(errors.Is(s.Normalize(), ErrInvalidSubmission))

    s = Submission{AuthorID: "a1", Kind: KindComment, Body: "hi", OriginalContentID: &empty}
    assert.True(errors.Is(s.Normalize(), ErrInvalidSubmission))

    s = Submission{AuthorID: "a1", Kind: KindComment, Body: "hi", OriginalContentID: &parent}
    assert.NoError(s.Normalize())

    s = Submission{AuthorID: "a1", ContentType: "video"}
    assert.True(errors.Is(s.Normalize(), ErrInvalidSubmission))

    s = Submission{AuthorID: "a1", ContentType: "LINK"}
    assert.True(errors.Is(s.Normalize(), ErrInvalidSubmission))
    s.LinkURL = "https://example.com"
    assert.NoError(s.Normalize())
    assert.Equal(ContentLink, s.ContentType)
}

func TestSubmissionScanText(t *testing.T) {
    s := Submission{Title: "Title", Body: "body text"}
    assert.Equal(t, "Title\nbody text", s.ScanText())

    s = Submission{Body: "only body"}
    assert.Equal(t, "only body", s.ScanText())
}
