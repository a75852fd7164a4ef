package httpadapter

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log/slog"
    "net/http"
    "strings"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/prometheus/client_golang/prometheus/promhttp"

    api "moderator/internal/api"
    "moderator/internal/domain"
    "moderator/internal/ports"
)

const (
    maxBodyBytes = 1 << 20
    maxPageLimit = 500
)

var _ api.StrictServerInterface = (*Server)(nil)

// Server implements the generated StrictServerInterface.
type Server struct {
    moderator ports.Moderator
    admin     ports.Admin
    log       *slog.Logger
}

func New(moderator ports.Moderator, admin ports.Admin, logger *slog.Logger) *Server {
    if logger == nil {
        logger = slog.Default()
    }
    return &Server{moderator: moderator, admin: admin, log: logger.With("component", "http")}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(middleware.Recoverer)
    r.Use(middleware.RequestSize(maxBodyBytes))
    r.Handle("/metrics", promhttp.Handler())

    handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
        RequestErrorHandlerFunc:  s.badRequest,
        ResponseErrorHandlerFunc: s.writeError,
    })
    api.HandlerWithOptions(handler, api.ChiServerOptions{
        BaseRouter:       r,
        ErrorHandlerFunc: s.badRequest,
    })
    return r
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
    return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) PostSubmission(ctx context.Context, req api.PostSubmissionRequestObject) (api.PostSubmissionResponseObject, error) {
    if req.Body == nil {
        return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
    }
    sub := submissionFromAPI(req.Body.Submission)
    if author := strings.TrimSpace(sub.AuthorID); author != "" {
        state, err := s.admin.Author(ctx, author)
        if err != nil && !errors.Is(err, domain.ErrNotFound) {
            return nil, err
        }
        if state.IsBanned {
            return api.PostSubmission403JSONResponse{Error: domain.ErrAuthorBanned.Error()}, nil
        }
    }
    res, err := s.moderator.EvaluateAndApply(ctx, deref(req.Body.Text), sub)
    if errors.Is(err, domain.ErrInvalidSubmission) {
        return api.PostSubmission400JSONResponse{Error: err.Error()}, nil
    }
    if err != nil {
        return nil, err
    }
    out := lifecycleToAPI(res)
    switch res.Status {
    case domain.StatusPublished:
        return api.PostSubmission201JSONResponse(out), nil
    case domain.StatusPendingConfirmation:
        return api.PostSubmission202JSONResponse(out), nil
    case domain.StatusRejected:
        return api.PostSubmission422JSONResponse(out), nil
    }
    return nil, fmt.Errorf("unexpected lifecycle status %q", res.Status)
}

func (s *Server) ConfirmSubmission(ctx context.Context, req api.ConfirmSubmissionRequestObject) (api.ConfirmSubmissionResponseObject, error) {
    res, err := s.moderator.ConfirmQuarantined(ctx, req.Token)
    if errors.Is(err, domain.ErrPendingNotFound) {
        return api.ConfirmSubmission404JSONResponse{Error: err.Error()}, nil
    }
    if err != nil {
        return nil, err
    }
    return api.ConfirmSubmission201JSONResponse(lifecycleToAPI(res)), nil
}

func (s *Server) DeclineSubmission(ctx context.Context, req api.DeclineSubmissionRequestObject) (api.DeclineSubmissionResponseObject, error) {
    res, err := s.moderator.DeclineQuarantined(ctx, req.Token)
    if errors.Is(err, domain.ErrPendingNotFound) {
        return api.DeclineSubmission404JSONResponse{Error: err.Error()}, nil
    }
    if err != nil {
        return nil, err
    }
    return api.DeclineSubmission200JSONResponse(lifecycleToAPI(res)), nil
}

func (s *Server) ReportContent(ctx context.Context, req api.ReportContentRequestObject) (api.ReportContentResponseObject, error) {
    if req.Body == nil {
        return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
    }
    c, err := s.admin.ReportContent(ctx, req.Id, req.Body.ReporterId, deref(req.Body.Reason))
    if errors.Is(err, domain.ErrNotFound) {
        return api.ReportContent404JSONResponse{Error: err.Error()}, nil
    }
    if err != nil {
        return nil, err
    }
    return api.ReportContent200JSONResponse(contentToAPI(c)), nil
}

func (s *Server) ListSpamRecords(ctx context.Context, req api.ListSpamRecordsRequestObject) (api.ListSpamRecordsResponseObject, error) {
    limit, offset, err := pageBounds(req.Params.Limit, req.Params.Offset)
    if err != nil {
        return nil, err
    }
    recs, total, err := s.admin.ListSpamRecords(ctx, domain.SpamFilter{AuthorID: deref(req.Params.Author), Limit: limit, Offset: offset})
    if err != nil {
        return nil, err
    }
    return api.ListSpamRecords200JSONResponse{Items: mapSlice(recs, spamRecordToAPI), Total: total}, nil
}

func (s *Server) RestoreSpamRecord(ctx context.Context, req api.RestoreSpamRecordRequestObject) (api.RestoreSpamRecordResponseObject, error) {
    c, err := s.admin.RestoreSpamRecord(ctx, req.Id)
    if errors.Is(err, domain.ErrNotFound) {
        return api.RestoreSpamRecord404JSONResponse{Error: err.Error()}, nil
    }
    if err != nil {
        return nil, err
    }
    return api.RestoreSpamRecord200JSONResponse(contentToAPI(c)), nil
}

func (s *Server) GetAuthor(ctx context.Context, req api.GetAuthorRequestObject) (api.GetAuthorResponseObject, error) {
    a, err := s.admin.Author(ctx, req.Id)
    if err != nil {
        return nil, err
    }
    return api.GetAuthor200JSONResponse(authorToAPI(a)), nil
}

func (s *Server) SetAuthorBan(ctx context.Context, req api.SetAuthorBanRequestObject) (api.SetAuthorBanResponseObject, error) {
    if req.Body == nil {
        return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
    }
    a, err := s.admin.SetBan(ctx, req.Id, req.Body.Banned, deref(req.Body.Reason))
    if err != nil {
        return nil, err
    }
    return api.SetAuthorBan200JSONResponse(authorToAPI(a)), nil
}

func (s *Server) ListReviewQueue(ctx context.Context, req api.ListReviewQueueRequestObject) (api.ListReviewQueueResponseObject, error) {
    limit, offset, err := pageBounds(req.Params.Limit, req.Params.Offset)
    if err != nil {
        return nil, err
    }
    items, total, err := s.admin.ReviewQueue(ctx, limit, offset)
    if err != nil {
        return nil, err
    }
    return api.ListReviewQueue200JSONResponse{Items: mapSlice(items, contentToAPI), Total: total}, nil
}

func (s *Server) ResolveReview(ctx context.Context, req api.ResolveReviewRequestObject) (api.ResolveReviewResponseObject, error) {
    if req.Body == nil {
        return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
    }
    err := s.admin.ResolveReview(ctx, req.Id, req.Body.Approve)
    if errors.Is(err, domain.ErrNotFound) {
        return api.ResolveReview404JSONResponse{Error: err.Error()}, nil
    }
    if err != nil {
        return nil, err
    }
    return api.ResolveReview204Response{}, nil
}

func (s *Server) ListReportedContent(ctx context.Context, req api.ListReportedContentRequestObject) (api.ListReportedContentResponseObject, error) {
    limit, offset, err := pageBounds(req.Params.Limit, req.Params.Offset)
    if err != nil {
        return nil, err
    }
    items, total, err := s.admin.ReportedContent(ctx, limit, offset)
    if err != nil {
        return nil, err
    }
    return api.ListReportedContent200JSONResponse{Items: mapSlice(items, contentToAPI), Total: total}, nil
}

func (s *Server) GetStats(ctx context.Context, _ api.GetStatsRequestObject) (api.GetStatsResponseObject, error) {
    st, err := s.admin.Stats(ctx)
    if err != nil {
        return nil, err
    }
    return api.GetStats200JSONResponse{
        SpamRecords:   st.SpamRecords,
        BannedAuthors: st.BannedAuthors,
        PendingReview: st.PendingReview,
        Reported:      st.Reported,
    }, nil
}

func pageBounds(limit, offset *int) (int, int, error) {
    var l, o int
    if limit != nil {
        if *limit < 0 || *limit > maxPageLimit {
            return 0, 0, &runtimeError{code: http.StatusBadRequest, msg: fmt.Sprintf("limit must be between 0 and %d", maxPageLimit)}
        }
        l = *limit
    }
    if offset != nil {
        if *offset < 0 {
            return 0, 0, &runtimeError{code: http.StatusBadRequest, msg: "offset must not be negative"}
        }
        o = *offset
    }
    return l, o, nil
}

type runtimeError struct{ code int; msg string }
func (e *runtimeError) Error() string { return e.msg }

// badRequest handles parameter binding and body decoding failures.
func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
    writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
    var rt *runtimeError
    switch {
    case errors.As(err, &rt):
        writeJSON(w, rt.code, api.Error{Error: rt.msg})
    case errors.Is(err, domain.ErrInvalidSubmission):
        writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
    case errors.Is(err, domain.ErrAuthorBanned):
        writeJSON(w, http.StatusForbidden, api.Error{Error: err.Error()})
    case errors.Is(err, domain.ErrPendingNotFound), errors.Is(err, domain.ErrNotFound):
        writeJSON(w, http.StatusNotFound, api.Error{Error: err.Error()})
    default:
        s.log.Error("request failed", "method", r.Method, "path", r.URL.Path,
            "request_id", middleware.GetReqID(r.Context()), "err", err)
        writeJSON(w, http.StatusInternalServerError, api.Error{Error: "internal error"})
    }
}

func writeJSON(w http.ResponseWriter, code int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    _ = json.NewEncoder(w).Encode(v)
}
