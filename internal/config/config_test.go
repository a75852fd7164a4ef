package config

import (
    "bytes"
    "errors"
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "moderator/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
    t.Setenv("DATABASE_URL", "")
    t.Setenv("MODERATION_FILE", "")
    cfg, err := Load()
    assert.True(t, errors.Is(err, ErrNoDatabase))
    assert.Equal(t, ":8080", cfg.ListenAddr)
    assert.Equal(t, 0.8, cfg.Policy.RejectAbove)
    assert.Equal(t, 0.6, cfg.Policy.QuarantineFrom)
    assert.Equal(t, 5*time.Second, cfg.Classifier.Timeout)
    assert.NotEmpty(t, cfg.Keywords)
}

func TestLoadFromEnv(t *testing.T) {
    t.Setenv("DATABASE_URL", "postgres://localhost/mod")
    t.Setenv("MODERATION_FILE", "")
    t.Setenv("CLASSIFIER_URLS", "http://a/predict, http://b/predict")
    t.Setenv("CLASSIFIER_TIMEOUT", "2s")
    t.Setenv("PENDING_TTL", "1h")
    cfg, err := Load()
    require.NoError(t, err)
    assert.Equal(t, []string{"http://a/predict", "http://b/predict"}, cfg.Classifier.URLs)
    assert.Equal(t, 2*time.Second, cfg.Classifier.Timeout)
    assert.Equal(t, time.Hour, cfg.PendingTTL)
}

func TestModerationFile(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "moderation.yaml")
    require.NoError(t, os.WriteFile(path, []byte(`
keywords: [free, urgent]
extra_keywords: [crypto]
thresholds:
  reject_above: 0.85
  quarantine_from: 0.5
classifier:
  spam_path: scores.spam
`), 0o600))
    t.Setenv("DATABASE_URL", "postgres://localhost/mod")
    t.Setenv("MODERATION_FILE", path)

    cfg, err := Load()
    require.NoError(t, err)
    assert.Equal(t, []string{"free", "urgent", "crypto"}, cfg.Keywords)
    assert.Equal(t, 0.85, cfg.Policy.RejectAbove)
    assert.Equal(t, 0.5, cfg.Policy.QuarantineFrom)
    assert.Equal(t, "scores.spam", cfg.Classifier.SpamPath)
    assert.Equal(t, "toxicity_detection.confidence", cfg.Classifier.ToxicityPath)
}

func TestPartialThresholdsKeepDefaults(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "moderation.yaml")
    require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  reject_above: 0.85\n"), 0o600))
    t.Setenv("DATABASE_URL", "postgres://localhost/mod")
    t.Setenv("MODERATION_FILE", path)

    cfg, err := Load()
    require.NoError(t, err)
    assert.Equal(t, 0.85, cfg.Policy.RejectAbove)
    assert.Equal(t, 0.6, cfg.Policy.QuarantineFrom)
}

func TestZeroQuarantineFloorFailsFast(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "moderation.yaml")
    require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  quarantine_from: 0\n"), 0o600))
    t.Setenv("DATABASE_URL", "postgres://localhost/mod")
    t.Setenv("MODERATION_FILE", path)

    _, err := Load()
    assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
}

func TestInvertedThresholdsFailFast(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "moderation.yaml")
    require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  reject_above: 0.5\n  quarantine_from: 0.7\n"), 0o600))
    t.Setenv("DATABASE_URL", "postgres://localhost/mod")
    t.Setenv("MODERATION_FILE", path)

    _, err := Load()
    assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
}

func TestNewLogger(t *testing.T) {
    var buf bytes.Buffer
    log := Config{LogLevel: "warn"}.NewLogger(&buf)
    log.Info("hidden")
    log.Warn("shown", "k", "v")
    assert.NotContains(t, buf.String(), "hidden")
    assert.Contains(t, buf.String(), `"k":"v"`)

    buf.Reset()
    Config{LogLevel: "nonsense"}.NewLogger(&buf).Info("default info")
    assert.Contains(t, buf.String(), "default info")
}
