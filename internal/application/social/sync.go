package social

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
)

// syncJob is one service's specialization of the shared sync flow. Both
// integrations run the same protocol: precondition check, single-page
// fetch, per-item store with failure isolation, then an unconditional
// last-synced-at write.
type syncJob[T any] struct {
	service social.Service

	// notConfigured is reported when the credential is absent or inactive
	notConfigured string
	// missingFields is reported when ready returns false
	missingFields string
	// emptyNote annotates a successful run that found nothing upstream
	emptyNote string

	// ready reports whether the credential carries the fields fetch needs
	ready func(cred *social.Credential) bool
	// fetch pulls one page of upstream items; it degrades to empty on error
	fetch func(ctx context.Context, cred *social.Credential) []T
	// store upserts one item into the local cache
	store func(ctx context.Context, cred *social.Credential, item T) error
	// itemID names an item in skip logs
	itemID func(item T) string
}

// runSync executes one sync pass for a job. A failed store skips that item
// and continues; the last-synced-at timestamp is recorded even when the
// fetch came back empty, so operators can see the attempt happened.
func runSync[T any](ctx context.Context, credentials social.CredentialRepository, logger *zap.Logger, job syncJob[T]) social.Outcome {
	cred, err := credentials.Get(ctx, job.service)
	if err != nil || !cred.IsActive {
		return social.Failure(job.notConfigured)
	}
	if !job.ready(cred) {
		return social.Failure(job.missingFields)
	}

	items := job.fetch(ctx, cred)

	synced := 0
	for _, item := range items {
		if err := job.store(ctx, cred, item); err != nil {
			logger.Warn("skipping item that failed to store",
				zap.String("service", job.service.String()),
				zap.String("item_id", job.itemID(item)),
				zap.Error(err))
			continue
		}
		synced++
	}

	now := time.Now()
	if _, err := credentials.Upsert(ctx, social.CredentialUpdate{
		Service:      job.service,
		LastSyncedAt: &now,
	}); err != nil {
		logger.Error("failed to record sync time",
			zap.String("service", job.service.String()),
			zap.Error(err))
		return social.Failure(err.Error())
	}

	if len(items) == 0 {
		return social.Outcome{Success: true, Synced: 0, Message: job.emptyNote}
	}
	return social.Outcome{Success: true, Synced: synced}
}
