package main

import (
    "context"
    "errors"
    "fmt"
    "log/slog"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-chi/chi/v5"

    "moderator/internal/adapters/classifier"
    httpadapter "moderator/internal/adapters/http"
    "moderator/internal/adapters/memory"
    "moderator/internal/adapters/notify"
    pg "moderator/internal/adapters/postgres"
    "moderator/internal/adapters/redisstore"
    "moderator/internal/config"
    "moderator/internal/ports"
    "moderator/internal/services/admin"
    "moderator/internal/services/keyword"
    "moderator/internal/services/moderation"
    "moderator/internal/workers/pendingsweeper"
)

func main() {
    cfg, err := config.Load()
    logger := cfg.NewLogger(os.Stderr)
    slog.SetDefault(logger)
    if errors.Is(err, config.ErrNoDatabase) {
        logger.Warn("DATABASE_URL not set, using in-memory storage")
    } else if err != nil {
        logger.Error("invalid configuration", "err", err)
        os.Exit(1)
    }

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    deps := moderation.Deps{Notifier: notify.LogNotifier{Logger: logger}, Logger: logger}
    if cfg.DatabaseURL != "" {
        db, err := pg.Connect(ctx, cfg.DatabaseURL, int32(cfg.MaxDBConns))
        if err != nil {
            logger.Error("db connect error", "err", err)
            os.Exit(1)
        }
        defer db.Close()
        if cfg.MigrateOnStart {
            if err := db.Migrate(ctx); err != nil {
                logger.Error("migration failed", "err", err)
                os.Exit(1)
            }
        }
        deps.Stores, deps.Tx, deps.Pending = db.Stores(), db, db
    } else {
        store := memory.New()
        deps.Stores, deps.Tx, deps.Pending = store.Stores(), store, store
    }
    if cfg.RedisURL != "" {
        rs, err := redisstore.NewPendingStore(cfg.RedisURL, cfg.PendingTTL)
        if err != nil {
            logger.Error("redis connect error", "err", err)
            os.Exit(1)
        }
        defer rs.Close()
        deps.Pending = rs
    }

    cl, err := classifier.New(cfg.Classifier, logger)
    if err != nil {
        logger.Error("classifier config error", "err", err)
        os.Exit(1)
    }
    combiner := moderation.NewCombiner(cl, keyword.New(cfg.Keywords), cfg.Policy)
    var mod ports.Moderator = moderation.NewService(combiner, deps)
    var adm ports.Admin = admin.New(deps)

    srv := httpadapter.New(mod, adm, logger)
    r := chi.NewRouter()
    r.Mount("/", srv.Routes())

    go pendingsweeper.Run(ctx, deps.Pending, cfg.PendingTTL, cfg.SweepInterval, logger)

    hs := &http.Server{Addr: cfg.ListenAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
    errCh := make(chan error, 1)
    go func() { errCh <- hs.ListenAndServe() }()
    logger.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env,
        "reject_above", cfg.Policy.RejectAbove, "quarantine_from", cfg.Policy.QuarantineFrom)

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
    select {
    case sig := <-sigCh:
        logger.Info("shutting down", "signal", sig.String())
        cancel()
        shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
        defer done()
        if err := hs.Shutdown(shutdownCtx); err != nil {
            logger.Error("shutdown", "err", err)
        }
    case err := <-errCh:
        logger.Error("server error", "err", fmt.Errorf("listen %s: %w", cfg.ListenAddr, err))
        os.Exit(1)
    }
}
