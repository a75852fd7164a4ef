package main

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log/slog"
    "os"
    "strings"

    "github.com/urfave/cli/v2"

    "moderator/internal/adapters/classifier"
    "moderator/internal/adapters/notify"
    pg "moderator/internal/adapters/postgres"
    "moderator/internal/config"
    "moderator/internal/services/admin"
    "moderator/internal/services/keyword"
    "moderator/internal/services/moderation"
)

func main() {
    app := cli.App{
        Name:  "modctl",
        Usage: "operator tool for the moderation service",
    }
    app.Commands = []*cli.Command{
        {
            Name:      "check",
            Usage:     "score text and print the verdict without storing anything",
            ArgsUsage: "<text>",
            Flags: []cli.Flag{
                &cli.BoolFlag{Name: "offline", Usage: "skip the classifier and use keywords only"},
            },
            Action: runCheck,
        },
        {
            Name:   "migrate",
            Usage:  "apply database migrations",
            Action: runMigrate,
        },
        {
            Name:      "restore",
            Usage:     "restore an archived spam record as live content",
            ArgsUsage: "<record-id>",
            Action:    runRestore,
        },
        {
            Name:      "ban",
            Usage:     "ban an author",
            ArgsUsage: "<author-id>",
            Flags: []cli.Flag{
                &cli.StringFlag{Name: "reason", Value: admin.DefaultBanReason},
            },
            Action: runBan,
        },
        {
            Name:      "unban",
            Usage:     "lift an author ban; the spam count is kept",
            ArgsUsage: "<author-id>",
            Action:    runUnban,
        },
        {
            Name:   "stats",
            Usage:  "print moderation counters",
            Action: runStats,
        },
    }
    app.RunAndExitOnError()
}

func loadConfig() (config.Config, *slog.Logger, error) {
    cfg, err := config.Load()
    logger := cfg.NewLogger(os.Stderr)
    if err != nil && !errors.Is(err, config.ErrNoDatabase) {
        return cfg, logger, err
    }
    return cfg, logger, nil
}

func runCheck(cctx *cli.Context) error {
    text := strings.Join(cctx.Args().Slice(), " ")
    if text == "" {
        return fmt.Errorf("need to provide text as an argument")
    }
    cfg, logger, err := loadConfig()
    if err != nil {
        return err
    }
    var combiner *moderation.Combiner
    heuristic := keyword.New(cfg.Keywords)
    if cctx.Bool("offline") {
        combiner = moderation.NewCombiner(&moderation.StaticClassifier{Signal: moderation.Unavailable()}, heuristic, cfg.Policy)
    } else {
        cl, err := classifier.New(cfg.Classifier, logger)
        if err != nil {
            return err
        }
        combiner = moderation.NewCombiner(cl, heuristic, cfg.Policy)
    }
    v := moderation.NewService(combiner, moderation.Deps{Logger: logger}).Evaluate(cctx.Context, text)
    return printJSON(map[string]any{
        "outcome":       v.Outcome,
        "confidence":    v.CombinedConfidence,
        "reason":        v.Reason,
        "reason_source": v.ReasonSource,
        "classifier":    v.Signal.Source,
        "spam":          v.Signal.SpamConfidence,
        "toxicity":      v.Signal.ToxicityConfidence,
        "keywords":      v.Keywords.MatchedTerms,
    })
}

func runMigrate(cctx *cli.Context) error {
    return withDB(cctx.Context, func(db *pg.DB, _ *admin.Service) error {
        if err := db.Migrate(cctx.Context); err != nil {
            return err
        }
        fmt.Println("migrations applied")
        return nil
    })
}

func runRestore(cctx *cli.Context) error {
    id := cctx.Args().First()
    if id == "" {
        return fmt.Errorf("need to provide a spam record id as an argument")
    }
    return withDB(cctx.Context, func(_ *pg.DB, adm *admin.Service) error {
        c, err := adm.RestoreSpamRecord(cctx.Context, id)
        if err != nil {
            return err
        }
        return printJSON(map[string]any{"content_id": c.ID, "author_id": c.AuthorID, "title": c.Title})
    })
}

func runBan(cctx *cli.Context) error {
    return setBan(cctx, true, cctx.String("reason"))
}

func runUnban(cctx *cli.Context) error {
    return setBan(cctx, false, "")
}

func setBan(cctx *cli.Context, banned bool, reason string) error {
    author := cctx.Args().First()
    if author == "" {
        return fmt.Errorf("need to provide an author id as an argument")
    }
    return withDB(cctx.Context, func(_ *pg.DB, adm *admin.Service) error {
        st, err := adm.SetBan(cctx.Context, author, banned, reason)
        if err != nil {
            return err
        }
        return printJSON(st)
    })
}

func runStats(cctx *cli.Context) error {
    return withDB(cctx.Context, func(_ *pg.DB, adm *admin.Service) error {
        st, err := adm.Stats(cctx.Context)
        if err != nil {
            return err
        }
        return printJSON(st)
    })
}

func withDB(ctx context.Context, fn func(db *pg.DB, adm *admin.Service) error) error {
    cfg, logger, err := loadConfig()
    if err != nil {
        return err
    }
    if cfg.DatabaseURL == "" {
        return config.ErrNoDatabase
    }
    db, err := pg.Connect(ctx, cfg.DatabaseURL, 2)
    if err != nil {
        return err
    }
    defer db.Close()
    adm := admin.New(moderation.Deps{
        Stores:   db.Stores(),
        Tx:       db,
        Pending:  db,
        Notifier: notify.LogNotifier{Logger: logger},
        Logger:   logger,
    })
    return fn(db, adm)
}

func printJSON(v any) error {
    enc := json.NewEncoder(os.Stdout)
    enc.SetIndent("", "  ")
    return enc.Encode(v)
}
