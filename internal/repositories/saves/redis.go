package saves

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	slotIndexKey = "saves:slots"

	// DefaultTTL keeps an untouched save for thirty days
	DefaultTTL = 30 * 24 * time.Hour

	listConcurrency = 8
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient // Required
	TTL    time.Duration         // Optional, zero uses DefaultTTL, negative keeps saves forever
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis creates a Redis-backed save repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// NewRedisRepository creates a Redis-backed save repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	ttl := cfg.TTL
	switch {
	case ttl == 0:
		ttl = DefaultTTL
	case ttl < 0:
		ttl = 0
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func (r *redisRepo) key(slot string) string {
	return fmt.Sprintf("save:%s", slot)
}

func (r *redisRepo) Save(ctx context.Context, slot string, state *entities.GameState) error {
	if err := validateSave(slot, state); err != nil {
		return err
	}

	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(slot), string(jsonData), r.ttl)
	pipe.SAdd(ctx, slotIndexKey, slot)

	if _, err := pipe.Exec(ctx); err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to save game").
			WithMeta("slot", slot)
	}

	return nil
}

func (r *redisRepo) Load(ctx context.Context, slot string) (*entities.GameState, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	jsonData, err := r.client.Get(ctx, r.key(slot)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(slot)
	}
	if err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to load game").
			WithMeta("slot", slot)
	}

	var state entities.GameState
	if err := json.Unmarshal([]byte(jsonData), &state); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "saved game is corrupted").
			WithMeta("slot", slot)
	}
	return &state, nil
}

func (r *redisRepo) Clear(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key(slot))
	pipe.SRem(ctx, slotIndexKey, slot)

	if _, err := pipe.Exec(ctx); err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to clear game").
			WithMeta("slot", slot)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*Summary, error) {
	slots, err := r.client.SMembers(ctx, slotIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list save slots: %w", err)
	}

	var (
		mu        sync.Mutex
		summaries = make([]*Summary, 0, len(slots))
		stale     []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for _, slot := range slots {
		g.Go(func() error {
			state, err := r.Load(gctx, slot)
			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				summaries = append(summaries, summarize(slot, state))
			case rpgerr.IsNotFound(err):
				// Expired by TTL while still indexed
				stale = append(stale, slot)
			case rpgerr.IsInternal(err):
				log.Printf("SavesRepository: skipping unreadable slot %s: %v", slot, err)
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(stale) > 0 {
		members := make([]any, len(stale))
		for i, slot := range stale {
			members[i] = slot
		}
		if err := r.client.SRem(ctx, slotIndexKey, members...).Err(); err != nil {
			log.Printf("SavesRepository: failed to prune %d expired slots: %v", len(stale), err)
		}
	}

	slices.SortFunc(summaries, func(a, b *Summary) int { return cmp.Compare(a.Slot, b.Slot) })
	return summaries, nil
}
