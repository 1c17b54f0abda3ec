package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/shared"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPostTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PostModel{})
	require.NoError(t, err)

	return db
}

func testPost(externalID string, postedAt time.Time) *social.Post {
	return &social.Post{
		ExternalID: externalID,
		Caption:    "Before and after",
		MediaType:  social.MediaTypeImage,
		MediaURL:   "https://cdn.example.com/" + externalID + ".jpg",
		Permalink:  "https://www.instagram.com/p/" + externalID + "/",
		PostedAt:   &postedAt,
	}
}

func TestGormPostRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty external ID", func(t *testing.T) {
		repo := NewGormPostRepository(setupPostTestDB(t))

		post, err := repo.Upsert(ctx, testPost("", time.Now()))

		assert.Nil(t, post)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("creates a new post", func(t *testing.T) {
		repo := NewGormPostRepository(setupPostTestDB(t))

		post, err := repo.Upsert(ctx, testPost("ig-1", time.Now()))

		require.NoError(t, err)
		assert.NotZero(t, post.ID)
		assert.Equal(t, "ig-1", post.ExternalID)
		assert.Equal(t, social.MediaTypeImage, post.MediaType)
	})

	t.Run("updates in place on repeated external ID", func(t *testing.T) {
		db := setupPostTestDB(t)
		repo := NewGormPostRepository(db)

		postedAt := time.Now()
		first, err := repo.Upsert(ctx, testPost("ig-1", postedAt))
		require.NoError(t, err)

		updated := testPost("ig-1", postedAt)
		updated.LikeCount = 42
		updated.Caption = "Refreshed caption"
		second, err := repo.Upsert(ctx, updated)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 42, second.LikeCount)
		assert.Equal(t, "Refreshed caption", second.Caption)

		var count int64
		require.NoError(t, db.Model(&models.PostModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormPostRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by post time, newest first", func(t *testing.T) {
		repo := NewGormPostRepository(setupPostTestDB(t))

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		for i, id := range []string{"ig-old", "ig-mid", "ig-new"} {
			_, err := repo.Upsert(ctx, testPost(id, base.Add(time.Duration(i)*time.Hour)))
			require.NoError(t, err)
		}

		posts, err := repo.List(ctx, 10)

		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "ig-new", posts[0].ExternalID)
		assert.Equal(t, "ig-old", posts[2].ExternalID)
	})

	t.Run("applies the default limit", func(t *testing.T) {
		repo := NewGormPostRepository(setupPostTestDB(t))

		base := time.Now()
		for i := 0; i < 20; i++ {
			_, err := repo.Upsert(ctx, testPost(fmt.Sprintf("ig-%d", i), base.Add(time.Duration(i)*time.Minute)))
			require.NoError(t, err)
		}

		posts, err := repo.List(ctx, 0)

		require.NoError(t, err)
		assert.Len(t, posts, defaultPostListLimit)
	})
}

func TestGormPostRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a cached post", func(t *testing.T) {
		repo := NewGormPostRepository(setupPostTestDB(t))

		_, err := repo.Upsert(ctx, testPost("ig-1", time.Now()))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, "ig-1"))

		posts, err := repo.List(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("unknown external ID reports not found", func(t *testing.T) {
		repo := NewGormPostRepository(setupPostTestDB(t))

		assert.ErrorIs(t, repo.Delete(ctx, "ig-missing"), shared.ErrNotFound)
	})
}
