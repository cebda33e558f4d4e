//go:build integration

package saves_test

import (
	"context"
	"testing"
	"time"

	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/repositories/saves"
	"github.com/Darkkkking/ai-rpg-adventure/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_AgainstRealRedis(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := saves.NewRedisRepository(&saves.RedisRepoConfig{Client: client, TTL: time.Hour})
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "integration", gameState("Rin", 3)))

	got, err := repo.Load(ctx, "integration")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Player.Level)

	ttl, err := client.TTL(ctx, "save:integration").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rin", list[0].Player)

	require.NoError(t, repo.Clear(ctx, "integration"))
	_, err = repo.Load(ctx, "integration")
	assert.True(t, rpgerr.IsNotFound(err))
}
