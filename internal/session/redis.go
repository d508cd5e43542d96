package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/learnhub/internal/platform/logger"
)

const maxWatchRetries = 8

// RedisStore keeps each session as one JSON value that expires after ttl of
// inactivity. Updates use WATCH/MULTI so concurrent writers on one session
// never lose each other's changes.
type RedisStore struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

// DialRedis connects and pings, closing the client when the ping fails.
func DialRedis(ctx context.Context, addr string, password string, db int) (*goredis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func NewRedisStore(log *logger.Logger, rdb *goredis.Client, prefix string, ttl time.Duration) *RedisStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "learnhub:session:"
	}
	return &RedisStore{
		log:    log.With("service", "RedisSessionStore"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisStore) key(id string) string { return r.prefix + id }

func (r *RedisStore) Get(ctx context.Context, id string) (State, error) {
	if id == "" {
		return State{}, ErrNoSession
	}
	return load(ctx, r.rdb, r.key(id), id)
}

type getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

func load(ctx context.Context, g getter, key string, id string) (State, error) {
	raw, err := g.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return New(id), nil
	}
	if err != nil {
		return State{}, fmt.Errorf("load session: %w", err)
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, fmt.Errorf("decode session: %w", err)
	}
	return st, nil
}

func (r *RedisStore) Update(ctx context.Context, id string, fn func(*State) error) (State, error) {
	if id == "" {
		return State{}, ErrNoSession
	}
	key := r.key(id)
	var out State
	txf := func(tx *goredis.Tx) error {
		st, err := load(ctx, tx, key, id)
		if err != nil {
			return err
		}
		if err := fn(&st); err != nil {
			return err
		}
		st.UpdatedAt = time.Now().UTC()
		raw, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(p goredis.Pipeliner) error {
			p.Set(ctx, key, raw, r.ttl)
			return nil
		})
		if err == nil {
			out = st
		}
		return err
	}

	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, goredis.TxFailedErr) {
			r.log.Debug("Session update raced, retrying", "session_id", id, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return State{}, err
		}
		return out, nil
	}
	return State{}, fmt.Errorf("session update: too much contention on %s", id)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, r.key(id)).Err()
}

func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
