package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"abi-fashion-backend/internal/logger"
	"abi-fashion-backend/internal/storage"
	"abi-fashion-backend/models"
)

// ImageResolver turns stored image references into fetchable URLs.
// External URLs pass through unchanged; blob keys are resolved against
// the object store, with the raw reference as fallback when resolution
// fails. A failed reference never fails a listing.
type ImageResolver struct {
	store    storage.ObjectStore
	cache    *redis.Client // optional; nil disables caching
	expiry   time.Duration
	cacheTTL time.Duration
}

func NewImageResolver(store storage.ObjectStore, cache *redis.Client, presignExpiry time.Duration) *ImageResolver {
	// Cached URLs must die before the signature they carry does.
	cacheTTL := presignExpiry - 5*time.Minute
	if cacheTTL <= 0 {
		cacheTTL = presignExpiry / 2
	}
	return &ImageResolver{
		store:    store,
		cache:    cache,
		expiry:   presignExpiry,
		cacheTTL: cacheTTL,
	}
}

// ResolveWork resolves all image references of a single work in place,
// issuing the blob lookups concurrently.
func (r *ImageResolver) ResolveWork(ctx context.Context, work *models.Work) {
	if len(work.Images) == 0 {
		return
	}

	resolved := make([]string, len(work.Images))
	g, gctx := errgroup.WithContext(ctx)
	for i, raw := range work.Images {
		i, raw := i, raw
		g.Go(func() error {
			resolved[i] = r.resolveOne(gctx, raw)
			return nil
		})
	}
	// Workers never return errors; failures already fell back.
	_ = g.Wait()
	work.Images = resolved
}

// ResolveWorks enriches a listing. Lookups are independent per reference.
func (r *ImageResolver) ResolveWorks(ctx context.Context, works []models.Work) {
	for i := range works {
		r.ResolveWork(ctx, &works[i])
	}
}

func (r *ImageResolver) resolveOne(ctx context.Context, raw string) string {
	ref := models.ParseImageRef(raw)
	if ref.Kind == models.ImageRefExternal {
		return ref.Raw
	}

	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, cacheKey(ref.Raw)).Result(); err == nil && cached != "" {
			return cached
		}
	}

	if r.store == nil {
		return ref.Raw
	}

	url, err := r.store.PresignGet(ctx, ref.Raw, r.expiry)
	if err != nil {
		logger.Warn("image resolution failed, using raw reference", "key", ref.Raw, "error", err)
		return ref.Raw
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey(ref.Raw), url, r.cacheTTL).Err(); err != nil {
			logger.Debug("image url cache write failed", "key", ref.Raw, "error", err)
		}
	}

	return url
}

// Reap removes blob-backed references from the object store and drops
// their cached URLs. External URLs are ignored. Reaping is best-effort:
// failures are logged and skipped, never surfaced to the caller.
func (r *ImageResolver) Reap(ctx context.Context, images []string) {
	for _, raw := range images {
		ref := models.ParseImageRef(raw)
		if ref.Kind != models.ImageRefBlob {
			continue
		}

		if r.cache != nil {
			if err := r.cache.Del(ctx, cacheKey(ref.Raw)).Err(); err != nil {
				logger.Debug("image url cache drop failed", "key", ref.Raw, "error", err)
			}
		}

		if r.store == nil {
			continue
		}
		if err := r.store.Delete(ctx, ref.Raw); err != nil {
			logger.Warn("blob delete failed", "key", ref.Raw, "error", err)
		}
	}
}

func cacheKey(blobID string) string {
	return "imgurl:" + blobID
}
