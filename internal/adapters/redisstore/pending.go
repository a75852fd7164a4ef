// Package redisstore keeps quarantined submissions in Redis so confirmation
// tokens survive restarts and are shared across replicas.
package redisstore

import (
    "context"
    "encoding/json"
    "errors"
    "time"

    "github.com/redis/go-redis/v9"

    "moderator/internal/domain"
    "moderator/internal/ports"
)

var pendingPrefix = "pending/"

type PendingStore struct {
    Client *redis.Client
    TTL    time.Duration
}

var _ ports.PendingStore = (*PendingStore)(nil)

func NewPendingStore(redisURL string, ttl time.Duration) (*PendingStore, error) {
    opt, err := redis.ParseURL(redisURL)
    if err != nil {
        return nil, err
    }
    rdb := redis.NewClient(opt)
    // check redis connection
    if _, err := rdb.Ping(context.TODO()).Result(); err != nil {
        return nil, err
    }
    return &PendingStore{Client: rdb, TTL: ttl}, nil
}

func (s *PendingStore) Put(ctx context.Context, p domain.PendingSubmission) error {
    b, err := json.Marshal(p)
    if err != nil {
        return err
    }
    return s.Client.Set(ctx, pendingPrefix+p.Token, b, s.TTL).Err()
}

// Take uses GETDEL so a token is consumed at most once.
func (s *PendingStore) Take(ctx context.Context, token string) (domain.PendingSubmission, error) {
    var p domain.PendingSubmission
    b, err := s.Client.GetDel(ctx, pendingPrefix+token).Bytes()
    if errors.Is(err, redis.Nil) {
        return p, domain.ErrPendingNotFound
    } else if err != nil {
        return p, err
    }
    err = json.Unmarshal(b, &p)
    return p, err
}

// Purge is a no-op; entries expire through their TTL.
func (s *PendingStore) Purge(ctx context.Context, olderThan time.Time) (int, error) {
    return 0, nil
}

func (s *PendingStore) Close() error { return s.Client.Close() }
