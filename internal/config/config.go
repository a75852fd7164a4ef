package config

import (
    "errors"
    "fmt"
    "io"
    "log/slog"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/joho/godotenv"
    "gopkg.in/yaml.v3"

    "moderator/internal/adapters/classifier"
    "moderator/internal/services/keyword"
    "moderator/internal/services/moderation"
)

type Config struct {
    Env            string
    ListenAddr     string
    LogLevel       string
    DatabaseURL    string
    MaxDBConns     int
    MigrateOnStart bool
    RedisURL       string
    PendingTTL     time.Duration
    SweepInterval  time.Duration
    ModerationFile string

    Classifier classifier.Config
    Policy     moderation.Policy
    Keywords   []string
}

// ErrNoDatabase is returned alongside a usable config when DATABASE_URL is
// unset; callers decide whether in-memory storage is acceptable.
var ErrNoDatabase = errors.New("DATABASE_URL not set")

// File is the optional YAML moderation file.
type File struct {
    Keywords      []string           `yaml:"keywords"`
    ExtraKeywords []string           `yaml:"extra_keywords"`
    Thresholds    Thresholds         `yaml:"thresholds"`
    Classifier    struct {
        URLs         []string `yaml:"urls"`
        SpamPath     string   `yaml:"spam_path"`
        ToxicityPath string   `yaml:"toxicity_path"`
        LabelPath    string   `yaml:"label_path"`
    } `yaml:"classifier"`
}

// Thresholds overlays the default policy field by field; an omitted field
// keeps its default.
type Thresholds struct {
    RejectAbove    *float64 `yaml:"reject_above"`
    QuarantineFrom *float64 `yaml:"quarantine_from"`
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// Load reads .env (if present), the environment and the optional moderation
// file, then validates the result. Only ErrNoDatabase is non-fatal.
func Load() (Config, error) {
    _ = godotenv.Load()

    cl := classifier.DefaultConfig()
    cl.URLs = getenvList("CLASSIFIER_URLS", cl.URLs)
    cl.Timeout = getenvDuration("CLASSIFIER_TIMEOUT", cl.Timeout)
    cl.SpamPath = getenv("CLASSIFIER_SPAM_PATH", cl.SpamPath)
    cl.ToxicityPath = getenv("CLASSIFIER_TOXICITY_PATH", cl.ToxicityPath)
    cl.LabelPath = getenv("CLASSIFIER_LABEL_PATH", cl.LabelPath)
    cl.RetryMax = getenvInt("CLASSIFIER_RETRY_MAX", cl.RetryMax)
    cl.RateLimit = getenvFloat("CLASSIFIER_RATE_LIMIT", cl.RateLimit)
    cl.CacheSize = getenvInt("CLASSIFIER_CACHE_SIZE", cl.CacheSize)

    cfg := Config{
        Env:            getenv("APP_ENV", "development"),
        ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
        LogLevel:       getenv("LOG_LEVEL", "INFO"),
        DatabaseURL:    os.Getenv("DATABASE_URL"),
        MaxDBConns:     getenvInt("DB_MAX_CONNS", 10),
        MigrateOnStart: getenvBool("MIGRATE_ON_START", false),
        RedisURL:       os.Getenv("REDIS_URL"),
        PendingTTL:     getenvDuration("PENDING_TTL", 24*time.Hour),
        SweepInterval:  getenvDuration("PENDING_SWEEP_INTERVAL", 10*time.Minute),
        ModerationFile: os.Getenv("MODERATION_FILE"),
        Classifier:     cl,
        Policy:         moderation.DefaultPolicy(),
        Keywords:       keyword.DefaultTerms(),
    }
    if cfg.ModerationFile != "" {
        if err := cfg.applyFile(cfg.ModerationFile); err != nil {
            return cfg, err
        }
    }
    if err := cfg.Validate(); err != nil {
        return cfg, err
    }
    if cfg.DatabaseURL == "" {
        // not fatal for local runs; the caller falls back to memory
        return cfg, ErrNoDatabase
    }
    return cfg, nil
}

func (c *Config) applyFile(path string) error {
    b, err := os.ReadFile(path)
    if err != nil {
        return fmt.Errorf("read moderation file: %w", err)
    }
    var f File
    if err := yaml.Unmarshal(b, &f); err != nil {
        return fmt.Errorf("parse moderation file %s: %w", path, err)
    }
    c.Apply(f)
    return nil
}

// Apply overlays a parsed moderation file.
func (c *Config) Apply(f File) {
    if len(f.Keywords) > 0 {
        c.Keywords = append([]string(nil), f.Keywords...)
    }
    c.Keywords = append(c.Keywords, f.ExtraKeywords...)
    if f.Thresholds.RejectAbove != nil {
        c.Policy.RejectAbove = *f.Thresholds.RejectAbove
    }
    if f.Thresholds.QuarantineFrom != nil {
        c.Policy.QuarantineFrom = *f.Thresholds.QuarantineFrom
    }
    if len(f.Classifier.URLs) > 0 {
        c.Classifier.URLs = f.Classifier.URLs
    }
    if f.Classifier.SpamPath != "" {
        c.Classifier.SpamPath = f.Classifier.SpamPath
    }
    if f.Classifier.ToxicityPath != "" {
        c.Classifier.ToxicityPath = f.Classifier.ToxicityPath
    }
    if f.Classifier.LabelPath != "" {
        c.Classifier.LabelPath = f.Classifier.LabelPath
    }
}

// Validate catches misconfiguration at startup instead of at evaluation time.
func (c Config) Validate() error {
    if err := c.Policy.Validate(); err != nil {
        return err
    }
    if len(c.Classifier.URLs) == 0 {
        return fmt.Errorf("CLASSIFIER_URLS must list at least one endpoint")
    }
    if c.Classifier.Timeout <= 0 {
        return fmt.Errorf("CLASSIFIER_TIMEOUT must be positive")
    }
    if len(keyword.New(c.Keywords).Terms()) < keyword.MinDistinctMatches {
        return fmt.Errorf("keyword list needs at least %d distinct terms", keyword.MinDistinctMatches)
    }
    if c.PendingTTL <= 0 {
        return fmt.Errorf("PENDING_TTL must be positive")
    }
    return nil
}

func getenvInt(key string, def int) int {
    if v := os.Getenv(key); v != "" {
        if out, err := strconv.Atoi(v); err == nil { return out }
    }
    return def
}

func getenvFloat(key string, def float64) float64 {
    if v := os.Getenv(key); v != "" {
        if out, err := strconv.ParseFloat(v, 64); err == nil { return out }
    }
    return def
}

func getenvBool(key string, def bool) bool {
    if v := os.Getenv(key); v != "" {
        if out, err := strconv.ParseBool(v); err == nil { return out }
    }
    return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
    if v := os.Getenv(key); v != "" {
        if out, err := time.ParseDuration(v); err == nil { return out }
    }
    return def
}

func getenvList(key string, def []string) []string {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    var out []string
    for _, p := range strings.Split(v, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}

// NewLogger builds the JSON logger every binary installs as the default.
// Unknown levels fall back to INFO.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
    var level slog.Level
    if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
        level = slog.LevelInfo
    }
    return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
