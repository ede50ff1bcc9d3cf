package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"abi-fashion-backend/models"
)

// fakeObjectStore resolves known keys and fails the rest. Deletions are
// recorded for assertions.
type fakeObjectStore struct {
	urls    map[string]string
	deleted []string
}

func (f *fakeObjectStore) PresignPut(ctx context.Context, expiry time.Duration) (string, string, error) {
	return "", "", errors.New("not implemented")
}

func (f *fakeObjectStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if url, ok := f.urls[key]; ok {
		return url, nil
	}
	return "", errors.New("no such object")
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func TestResolveWorkMixedReferences(t *testing.T) {
	store := &fakeObjectStore{urls: map[string]string{
		"blob-1": "https://minio.local/gallery/blob-1?sig=abc",
	}}
	resolver := NewImageResolver(store, nil, time.Hour)

	work := models.Work{Images: []string{
		"https://images.unsplash.com/a.jpg", // external, passed through
		"blob-1",                            // resolvable
		"blob-missing",                      // falls back to the raw key
	}}

	resolver.ResolveWork(context.Background(), &work)

	if work.Images[0] != "https://images.unsplash.com/a.jpg" {
		t.Errorf("external URL changed: %q", work.Images[0])
	}
	if work.Images[1] != "https://minio.local/gallery/blob-1?sig=abc" {
		t.Errorf("blob not resolved: %q", work.Images[1])
	}
	if work.Images[2] != "blob-missing" {
		t.Errorf("failed resolution should fall back to raw reference: %q", work.Images[2])
	}
}

func TestResolveWorkEmptyImages(t *testing.T) {
	resolver := NewImageResolver(&fakeObjectStore{}, nil, time.Hour)
	work := models.Work{Images: []string{}}
	resolver.ResolveWork(context.Background(), &work)
	if len(work.Images) != 0 {
		t.Errorf("empty image list should stay empty: %v", work.Images)
	}
}

func TestResolveWorkWithoutStore(t *testing.T) {
	// No object store configured: blob keys pass through unchanged.
	resolver := NewImageResolver(nil, nil, time.Hour)
	work := models.Work{Images: []string{"blob-1"}}
	resolver.ResolveWork(context.Background(), &work)
	if work.Images[0] != "blob-1" {
		t.Errorf("expected raw fallback without a store, got %q", work.Images[0])
	}
}

func TestReapDeletesOnlyBlobKeys(t *testing.T) {
	store := &fakeObjectStore{}
	resolver := NewImageResolver(store, nil, time.Hour)

	resolver.Reap(context.Background(), []string{
		"https://images.unsplash.com/a.jpg", // external, left alone
		"blob-1",
		"blob-2",
	})

	if len(store.deleted) != 2 || store.deleted[0] != "blob-1" || store.deleted[1] != "blob-2" {
		t.Fatalf("expected blob keys deleted, got %v", store.deleted)
	}
}

func TestReapWithoutStore(t *testing.T) {
	resolver := NewImageResolver(nil, nil, time.Hour)
	// Must not panic when no object store is configured.
	resolver.Reap(context.Background(), []string{"blob-1"})
}

func TestResolveWorksIsolatesFailures(t *testing.T) {
	store := &fakeObjectStore{urls: map[string]string{"ok": "https://x/ok"}}
	resolver := NewImageResolver(store, nil, time.Hour)

	works := []models.Work{
		{Images: []string{"ok"}},
		{Images: []string{"broken"}},
	}
	resolver.ResolveWorks(context.Background(), works)

	if works[0].Images[0] != "https://x/ok" {
		t.Errorf("first work not resolved: %q", works[0].Images[0])
	}
	if works[1].Images[0] != "broken" {
		t.Errorf("second work should keep its raw reference: %q", works[1].Images[0])
	}
}
