package tmdb

import (
	"errors"
	"testing"
	"time"
)

func TestCacheGetOrPopulateReusesLiveEntry(t *testing.T) {
	cache := newMemoryCache(30 * time.Minute)

	calls := 0
	producer := func() (any, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		value, err := cache.getOrPopulate("key", producer)
		if err != nil {
			t.Fatalf("getOrPopulate returned error: %v", err)
		}
		if value != "value" {
			t.Fatalf("unexpected value %v", value)
		}
	}
	if calls != 1 {
		t.Fatalf("expected producer to run once, ran %d times", calls)
	}
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	cache := newMemoryCache(30 * time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	if _, err := cache.getOrPopulate("key", producer); err != nil {
		t.Fatalf("populate returned error: %v", err)
	}

	now = now.Add(29 * time.Minute)
	if _, err := cache.getOrPopulate("key", producer); err != nil {
		t.Fatalf("within-TTL lookup returned error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected entry to stay live within TTL, producer ran %d times", calls)
	}

	now = now.Add(2 * time.Minute)
	value, err := cache.getOrPopulate("key", producer)
	if err != nil {
		t.Fatalf("post-TTL lookup returned error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected expired entry to be refetched, producer ran %d times", calls)
	}
	if value != 2 {
		t.Fatalf("expected fresh value, got %v", value)
	}
}

func TestCacheDoesNotStoreProducerErrors(t *testing.T) {
	cache := newMemoryCache(30 * time.Minute)

	boom := errors.New("boom")
	if _, err := cache.getOrPopulate("key", func() (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected producer error, got %v", err)
	}

	value, err := cache.getOrPopulate("key", func() (any, error) { return "recovered", nil })
	if err != nil {
		t.Fatalf("second populate returned error: %v", err)
	}
	if value != "recovered" {
		t.Fatalf("expected failed populate to leave no entry, got %v", value)
	}
}

func TestCacheKeyJoinsParts(t *testing.T) {
	if key := cacheKey("tmdb", "discover", "3"); key != "tmdb:discover:3" {
		t.Fatalf("unexpected cache key %q", key)
	}
}
