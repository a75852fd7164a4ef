package domain

var (
    ErrInvalidSubmission = errString("invalid submission")
    ErrNotFound          = errString("not found")
    ErrPendingNotFound   = errString("pending submission not found")
    ErrInvalidPolicy     = errString("invalid moderation policy")
    ErrAuthorBanned      = errString("author is banned")
)

type errString string

func (e errString) Error() string { return string(e) }
