package classifier

import (
    "bytes"
    "context"
    "crypto/sha256"
    "encoding/hex"
    "encoding/json"
    "fmt"
    "io"
    "log/slog"
    "math"
    "net/http"
    "net/url"
    "strings"
    "time"

    "github.com/hashicorp/go-retryablehttp"
    lru "github.com/hashicorp/golang-lru/v2"
    "golang.org/x/time/rate"

    "moderator/internal/domain"
    "moderator/internal/ports"
)

const (
    LabelSpamToxic = "Detected as spam/toxic content by AI"
    LabelSpam      = "Detected as spam by AI"

    // value of the toxicity label that selects LabelSpamToxic
    toxicSpamLabel = "spam"
    maxRespBytes   = 1 << 20
)

// Config describes the classification endpoints and the shape of their
// responses. Paths are dotted JSON object paths.
type Config struct {
    URLs         []string
    Timeout      time.Duration
    SpamPath     string
    ToxicityPath string
    LabelPath    string
    RetryMax     int
    RateLimit    float64
    CacheSize    int
    UserAgent    string
}

func DefaultConfig() Config {
    return Config{
        URLs:         []string{"http://localhost:8001/predict"},
        Timeout:      5 * time.Second,
        SpamPath:     "spam_detection.label_probs.spam",
        ToxicityPath: "toxicity_detection.confidence",
        LabelPath:    "toxicity_detection.label",
        CacheSize:    4096,
        UserAgent:    "moderator/1",
    }
}

// Client calls the external classifier. Endpoints are tried in order; the
// signal is unavailable only when all of them fail.
type Client struct {
    cfg     Config
    http    *retryablehttp.Client
    limiter *rate.Limiter
    cache   *lru.Cache[string, domain.ClassificationSignal]
    log     *slog.Logger
}

var _ ports.Classifier = (*Client)(nil)

func New(cfg Config, logger *slog.Logger) (*Client, error) {
    if len(cfg.URLs) == 0 {
        return nil, fmt.Errorf("classifier: at least one endpoint url is required")
    }
    for _, u := range cfg.URLs {
        if _, err := url.ParseRequestURI(u); err != nil {
            return nil, fmt.Errorf("classifier: bad endpoint %q: %w", u, err)
        }
    }
    def := DefaultConfig()
    if cfg.Timeout <= 0 {
        cfg.Timeout = def.Timeout
    }
    if cfg.SpamPath == "" {
        cfg.SpamPath = def.SpamPath
    }
    if cfg.ToxicityPath == "" {
        cfg.ToxicityPath = def.ToxicityPath
    }
    if cfg.LabelPath == "" {
        cfg.LabelPath = def.LabelPath
    }
    if cfg.UserAgent == "" {
        cfg.UserAgent = def.UserAgent
    }
    if logger == nil {
        logger = slog.Default()
    }
    logger = logger.With("component", "classifier")

    rc := retryablehttp.NewClient()
    rc.RetryMax = cfg.RetryMax
    rc.RetryWaitMin = 100 * time.Millisecond
    rc.RetryWaitMax = time.Second
    rc.Logger = retryablehttp.LeveledLogger(logger)
    rc.HTTPClient.Timeout = cfg.Timeout
    // hand back the last response instead of a generic error so the status
    // code reaches metrics and logs
    rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

    c := &Client{cfg: cfg, http: rc, log: logger}
    if cfg.RateLimit > 0 {
        c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, int(cfg.RateLimit)))
    }
    if cfg.CacheSize > 0 {
        cache, err := lru.New[string, domain.ClassificationSignal](cfg.CacheSize)
        if err != nil {
            return nil, fmt.Errorf("classifier cache: %w", err)
        }
        c.cache = cache
    }
    return c, nil
}

// Classify never fails. Any transport, timeout or protocol failure on every
// endpoint yields an unavailable signal.
func (c *Client) Classify(ctx context.Context, text string) domain.ClassificationSignal {
    key := cacheKey(text)
    if c.cache != nil {
        if sig, ok := c.cache.Get(key); ok {
            return sig
        }
    }
    for i, endpoint := range c.cfg.URLs {
        sig, err := c.call(ctx, endpoint, text)
        if err != nil {
            c.log.Warn("classifier endpoint failed", "endpoint", endpoint, "attempt", i+1, "err", err)
            continue
        }
        if c.cache != nil {
            c.cache.Add(key, sig)
        }
        return sig
    }
    unavailableCount.Inc()
    c.log.Error("all classifier endpoints failed, continuing without classification", "endpoints", len(c.cfg.URLs))
    return domain.ClassificationSignal{Source: domain.SourceUnavailable}
}

func (c *Client) call(ctx context.Context, endpoint, text string) (domain.ClassificationSignal, error) {
    ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
    defer cancel()

    if c.limiter != nil {
        if err := c.limiter.Wait(ctx); err != nil {
            return domain.ClassificationSignal{}, fmt.Errorf("rate limited: %w", err)
        }
    }

    payload, err := json.Marshal(struct {
        Text string `json:"text"`
    }{Text: text})
    if err != nil {
        return domain.ClassificationSignal{}, err
    }
    req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
    if err != nil {
        return domain.ClassificationSignal{}, err
    }
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("Accept", "application/json")
    req.Header.Set("User-Agent", c.cfg.UserAgent)

    start := time.Now()
    defer func() {
        requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
    }()

    res, err := c.http.Do(req)
    if err != nil {
        requestCount.WithLabelValues(endpoint, "error").Inc()
        return domain.ClassificationSignal{}, fmt.Errorf("request failed: %w", err)
    }
    defer res.Body.Close()
    requestCount.WithLabelValues(endpoint, fmt.Sprint(res.StatusCode)).Inc()
    if res.StatusCode < 200 || res.StatusCode > 299 {
        return domain.ClassificationSignal{}, fmt.Errorf("request failed statusCode=%d", res.StatusCode)
    }

    body, err := io.ReadAll(io.LimitReader(res.Body, maxRespBytes))
    if err != nil {
        return domain.ClassificationSignal{}, fmt.Errorf("read response: %w", err)
    }
    var doc any
    if err := json.Unmarshal(body, &doc); err != nil {
        return domain.ClassificationSignal{}, fmt.Errorf("parse response JSON: %w", err)
    }
    return c.normalize(doc), nil
}

func (c *Client) normalize(doc any) domain.ClassificationSignal {
    sig := domain.ClassificationSignal{
        SpamConfidence:     clamp(number(lookup(doc, c.cfg.SpamPath))),
        ToxicityConfidence: clamp(number(lookup(doc, c.cfg.ToxicityPath))),
        Label:              LabelSpam,
        Source:             domain.SourceClassifier,
    }
    if l, ok := lookup(doc, c.cfg.LabelPath).(string); ok && l == toxicSpamLabel {
        sig.Label = LabelSpamToxic
    }
    return sig
}

// lookup walks a dotted path through nested JSON objects; nil when any step
// is missing.
func lookup(doc any, path string) any {
    cur := doc
    for _, part := range strings.Split(path, ".") {
        m, ok := cur.(map[string]any)
        if !ok {
            return nil
        }
        if cur, ok = m[part]; !ok {
            return nil
        }
    }
    return cur
}

func number(v any) float64 {
    if f, ok := v.(float64); ok {
        return f
    }
    return 0
}

func clamp(f float64) float64 {
    switch {
    case math.IsNaN(f), f < 0:
        return 0
    case f > 1:
        return 1
    }
    return f
}

func cacheKey(text string) string {
    sum := sha256.Sum256([]byte(text))
    return hex.EncodeToString(sum[:])
}
