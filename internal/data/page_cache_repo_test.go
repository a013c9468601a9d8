package data

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanuka19697/LMS-sub001/internal/testutil"
)

func setupPageCache(t *testing.T) (*PageCacheRepo, *redis.Client) {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	return NewPageCacheRepo(client, 10*time.Minute), client
}

func TestPageCacheRepo_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo, client := setupPageCache(t)
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		body := []byte("<html><body>lessons</body></html>")
		require.NoError(t, repo.SetPage(ctx, "/dashboard/lessons", body))

		got, err := repo.GetPage(ctx, "/dashboard/lessons")
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("get uncached path returns nil", func(t *testing.T) {
		got, err := repo.GetPage(ctx, "/dashboard/never-rendered")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set applies ttl backstop", func(t *testing.T) {
		require.NoError(t, repo.SetPage(ctx, "/dashboard/papers", []byte("papers")))

		ttl, err := client.TTL(ctx, PageKey("/dashboard/papers")).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, 10*time.Minute)
	})

	t.Run("empty path rejected", func(t *testing.T) {
		assert.Error(t, repo.SetPage(ctx, "", []byte("x")))
		_, err := repo.GetPage(ctx, "")
		assert.Error(t, err)
	})
}

func TestPageCacheRepo_Invalidate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo, client := setupPageCache(t)
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	t.Run("invalidate existing page", func(t *testing.T) {
		require.NoError(t, repo.SetPage(ctx, "/admin/lessons", []byte("x")))

		removed, err := repo.InvalidatePage(ctx, "/admin/lessons")
		require.NoError(t, err)
		assert.True(t, removed)

		got, err := repo.GetPage(ctx, "/admin/lessons")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalidate missing page", func(t *testing.T) {
		removed, err := repo.InvalidatePage(ctx, "/admin/not-cached")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("invalidate several pages at once", func(t *testing.T) {
		require.NoError(t, repo.SetPage(ctx, "/dashboard", []byte("a")))
		require.NoError(t, repo.SetPage(ctx, "/dashboard/lessons", []byte("b")))

		require.NoError(t, repo.InvalidatePages(ctx, "/dashboard", "/dashboard/lessons", ""))

		for _, path := range []string{"/dashboard", "/dashboard/lessons"} {
			got, err := repo.GetPage(ctx, path)
			require.NoError(t, err)
			assert.Nil(t, got, "page %s should be invalidated", path)
		}
	})

	t.Run("invalidate with no paths is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.InvalidatePages(ctx))
	})
}

func TestPageCacheRepo_Health(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo, client := setupPageCache(t)
	defer func() { _ = client.Close() }()

	assert.NoError(t, repo.Health(context.Background()))
}
