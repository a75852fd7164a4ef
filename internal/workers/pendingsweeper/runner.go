package pendingsweeper

import (
    "context"
    "log/slog"
    "time"

    "moderator/internal/ports"
)

// SweepOnce drops pending submissions created before now-ttl. A dropped token
// is the same as a submitter that never confirmed.
func SweepOnce(ctx context.Context, store ports.PendingStore, ttl time.Duration, now time.Time) (int, error) {
    return store.Purge(ctx, now.Add(-ttl))
}

// Run sweeps on every tick until ctx is cancelled.
func Run(ctx context.Context, store ports.PendingStore, ttl, interval time.Duration, logger *slog.Logger) {
    if ttl <= 0 || interval <= 0 { return }
    if logger == nil { logger = slog.Default() }
    ticker := time.NewTicker(interval)
    defer ticker.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            n, err := SweepOnce(ctx, store, ttl, time.Now())
            if err != nil {
                logger.Warn("pending sweep failed", "err", err)
                continue
            }
            if n > 0 {
                logger.Info("expired pending submissions", "count", n)
            }
        }
    }
}
