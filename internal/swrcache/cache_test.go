package swrcache

import (
	"context"
	"testing"
	"time"
)

func TestGetOrFetch_FreshCache(t *testing.T) {
	dir := t.TempDir()
	cache := WithTTLs(dir, 5*time.Minute, time.Hour)

	key := `records/pgrowth/crm/All_Leads//p1`
	if err := writeEntry(cache, key, Entry[string]{Data: "cached", FetchedAt: time.Now().Add(-time.Minute)}); err != nil {
		t.Fatalf("writeEntry error: %v", err)
	}

	called := 0
	fetch := func(ctx context.Context) (string, error) {
		called++
		return "fresh", nil
	}

	got, err := GetOrFetch(cache, context.Background(), key, fetch)
	if err != nil {
		t.Fatalf("GetOrFetch error: %v", err)
	}
	if got != "cached" {
		t.Fatalf("got %q, want %q", got, "cached")
	}
	if called != 0 {
		t.Fatalf("fetch called %d times, want 0", called)
	}
}

func TestGetOrFetch_StaleCacheRevalidates(t *testing.T) {
	dir := t.TempDir()
	cache := WithTTLs(dir, time.Minute, time.Hour)

	key := `records/pgrowth/crm/All_Leads/Status == "Open"/p1`
	if err := writeEntry(cache, key, Entry[string]{Data: "cached", FetchedAt: time.Now().Add(-10 * time.Minute)}); err != nil {
		t.Fatalf("writeEntry error: %v", err)
	}

	called := make(chan struct{}, 1)
	fetch := func(ctx context.Context) (string, error) {
		called <- struct{}{}
		return "fresh", nil
	}

	got, err := GetOrFetch(cache, context.Background(), key, fetch)
	if err != nil {
		t.Fatalf("GetOrFetch error: %v", err)
	}
	if got != "cached" {
		t.Fatalf("got %q, want %q", got, "cached")
	}

	select {
	case <-called:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected background revalidation")
	}

	deadline := time.Now().Add(750 * time.Millisecond)
	for time.Now().Before(deadline) {
		entry, ok, _ := readEntry[string](cache, key)
		if ok && entry.Data == "fresh" {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	entry, ok, _ := readEntry[string](cache, key)
	if !ok || entry.Data != "fresh" {
		t.Fatalf("expected cache to be refreshed, got ok=%v data=%q", ok, entry.Data)
	}
}

func TestGetOrFetch_ExpiredCacheFetchesSync(t *testing.T) {
	dir := t.TempDir()
	cache := WithTTLs(dir, time.Minute, time.Hour)

	key := "records/pgrowth/crm/All_Leads//p1"
	if err := writeEntry(cache, key, Entry[string]{Data: "cached", FetchedAt: time.Now().Add(-2 * time.Hour)}); err != nil {
		t.Fatalf("writeEntry error: %v", err)
	}

	called := 0
	fetch := func(ctx context.Context) (string, error) {
		called++
		return "fresh", nil
	}

	got, err := GetOrFetch(cache, context.Background(), key, fetch)
	if err != nil {
		t.Fatalf("GetOrFetch error: %v", err)
	}
	if got != "fresh" {
		t.Fatalf("got %q, want %q", got, "fresh")
	}
	if called != 1 {
		t.Fatalf("fetch called %d times, want 1", called)
	}
}

func TestGetOrFetch_MissFetchesSync(t *testing.T) {
	dir := t.TempDir()
	cache := WithTTLs(dir, time.Minute, time.Hour)

	called := 0
	fetch := func(ctx context.Context) (string, error) {
		called++
		return "fresh", nil
	}

	got, err := GetOrFetch(cache, context.Background(), "missing", fetch)
	if err != nil {
		t.Fatalf("GetOrFetch error: %v", err)
	}
	if got != "fresh" {
		t.Fatalf("got %q, want %q", got, "fresh")
	}
	if called != 1 {
		t.Fatalf("fetch called %d times, want 1", called)
	}
}

// Criteria expressions differing only in sanitized-away characters must
// land in different cache files.
func TestPathForKey_NoCollisionAfterSanitizing(t *testing.T) {
	dir := t.TempDir()
	cache := WithTTLs(dir, time.Minute, time.Hour)

	keyA := `records/All_Leads/Status == "Open"/p1`
	keyB := `records/All_Leads/Status != "Open"/p1`

	if err := writeEntry(cache, keyA, Entry[string]{Data: "a", FetchedAt: time.Now()}); err != nil {
		t.Fatalf("writeEntry error: %v", err)
	}
	if err := writeEntry(cache, keyB, Entry[string]{Data: "b", FetchedAt: time.Now()}); err != nil {
		t.Fatalf("writeEntry error: %v", err)
	}

	entryA, ok, _ := readEntry[string](cache, keyA)
	if !ok || entryA.Data != "a" {
		t.Fatalf("keyA entry = (%v, %q), want (true, a)", ok, entryA.Data)
	}
	entryB, ok, _ := readEntry[string](cache, keyB)
	if !ok || entryB.Data != "b" {
		t.Fatalf("keyB entry = (%v, %q), want (true, b)", ok, entryB.Data)
	}
}

func TestInvalidatePrefix(t *testing.T) {
	dir := t.TempDir()
	cache := WithTTLs(dir, time.Minute, time.Hour)

	entries := map[string]string{
		"records/All_Leads//p1":                 "a",
		`records/All_Leads/Status == "Open"/p1`: "b",
		"records/Closed_Leads//p1":              "c",
	}
	for key, data := range entries {
		if err := writeEntry(cache, key, Entry[string]{Data: data, FetchedAt: time.Now()}); err != nil {
			t.Fatalf("writeEntry error: %v", err)
		}
	}

	if err := cache.InvalidatePrefix("records/All_Leads/"); err != nil {
		t.Fatalf("InvalidatePrefix error: %v", err)
	}

	if _, ok, _ := readEntry[string](cache, "records/All_Leads//p1"); ok {
		t.Fatal("expected plain All_Leads page to be removed")
	}
	if _, ok, _ := readEntry[string](cache, `records/All_Leads/Status == "Open"/p1`); ok {
		t.Fatal("expected filtered All_Leads page to be removed")
	}
	if _, ok, _ := readEntry[string](cache, "records/Closed_Leads//p1"); !ok {
		t.Fatal("expected Closed_Leads page to remain")
	}
}

func TestInvalidate(t *testing.T) {
	dir := t.TempDir()
	cache := WithTTLs(dir, time.Minute, time.Hour)

	key := "records/All_Leads//p1"
	if err := writeEntry(cache, key, Entry[string]{Data: "a", FetchedAt: time.Now()}); err != nil {
		t.Fatalf("writeEntry error: %v", err)
	}

	if err := cache.Invalidate(key); err != nil {
		t.Fatalf("Invalidate error: %v", err)
	}
	if _, ok, _ := readEntry[string](cache, key); ok {
		t.Fatal("expected entry to be removed")
	}

	// Invalidating an absent key is not an error.
	if err := cache.Invalidate(key); err != nil {
		t.Fatalf("Invalidate of missing key error: %v", err)
	}
}

func TestNilCachePassesThrough(t *testing.T) {
	called := 0
	fetch := func(ctx context.Context) (string, error) {
		called++
		return "direct", nil
	}

	var cache *Cache
	got, err := GetOrFetch(cache, context.Background(), "any", fetch)
	if err != nil {
		t.Fatalf("GetOrFetch error: %v", err)
	}
	if got != "direct" || called != 1 {
		t.Fatalf("got %q after %d calls, want direct fetch", got, called)
	}
}
