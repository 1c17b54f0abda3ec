package persistence

import (
	"context"
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

func setupReviewTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ReviewModel{})
	require.NoError(t, err)

	return db
}

func testReview(externalID string, rating int, reviewedAt time.Time) *social.Review {
	return &social.Review{
		ExternalID:      externalID,
		AuthorName:      "Maria G.",
		Rating:          rating,
		Comment:         "Great service",
		ReviewedAt:      reviewedAt,
		ReviewUpdatedAt: reviewedAt,
	}
}

func TestGormReviewRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty external ID", func(t *testing.T) {
		repo := NewGormReviewRepository(setupReviewTestDB(t))

		review, err := repo.Upsert(ctx, testReview("", 5, time.Now()))

		assert.Nil(t, review)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("creates a new review", func(t *testing.T) {
		repo := NewGormReviewRepository(setupReviewTestDB(t))

		review, err := repo.Upsert(ctx, testReview("rev-1", 5, time.Now()))

		require.NoError(t, err)
		assert.NotZero(t, review.ID)
		assert.Equal(t, "rev-1", review.ExternalID)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("updates in place on repeated external ID", func(t *testing.T) {
		db := setupReviewTestDB(t)
		repo := NewGormReviewRepository(db)

		reviewedAt := time.Now()
		first, err := repo.Upsert(ctx, testReview("rev-1", 3, reviewedAt))
		require.NoError(t, err)

		updated := testReview("rev-1", 4, reviewedAt)
		updated.Comment = "Updated comment"
		second, err := repo.Upsert(ctx, updated)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 4, second.Rating)
		assert.Equal(t, "Updated comment", second.Comment)

		var count int64
		require.NoError(t, db.Model(&models.ReviewModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormReviewRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by review time, newest first", func(t *testing.T) {
		repo := NewGormReviewRepository(setupReviewTestDB(t))

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		for i, id := range []string{"rev-old", "rev-mid", "rev-new"} {
			_, err := repo.Upsert(ctx, testReview(id, 5, base.Add(time.Duration(i)*time.Hour)))
			require.NoError(t, err)
		}

		reviews, err := repo.List(ctx, 10)

		require.NoError(t, err)
		require.Len(t, reviews, 3)
		assert.Equal(t, "rev-new", reviews[0].ExternalID)
		assert.Equal(t, "rev-old", reviews[2].ExternalID)
	})

	t.Run("applies the default limit", func(t *testing.T) {
		repo := NewGormReviewRepository(setupReviewTestDB(t))

		base := time.Now()
		for i := 0; i < 15; i++ {
			_, err := repo.Upsert(ctx, testReview(
				"rev-"+string(rune('a'+i)), 5, base.Add(time.Duration(i)*time.Minute)))
			require.NoError(t, err)
		}

		reviews, err := repo.List(ctx, 0)

		require.NoError(t, err)
		assert.Len(t, reviews, defaultReviewListLimit)
	})
}

func TestGormReviewRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a cached review", func(t *testing.T) {
		repo := NewGormReviewRepository(setupReviewTestDB(t))

		_, err := repo.Upsert(ctx, testReview("rev-1", 5, time.Now()))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, "rev-1"))

		reviews, err := repo.List(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("rejects empty external ID", func(t *testing.T) {
		repo := NewGormReviewRepository(setupReviewTestDB(t))

		err := repo.Delete(ctx, "")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
	})

	t.Run("unknown external ID reports not found", func(t *testing.T) {
		repo := NewGormReviewRepository(setupReviewTestDB(t))

		assert.ErrorIs(t, repo.Delete(ctx, "rev-missing"), shared.ErrNotFound)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		repo := NewGormReviewRepository(setupReviewTestDB(t))

		_, err := repo.Upsert(ctx, testReview("rev-1", 5, time.Now()))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, "rev-1"))
		assert.ErrorIs(t, repo.Delete(ctx, "rev-1"), shared.ErrNotFound)
	})
}
