package querycache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"breathbathNewsIntel/pkg/storage"
)

func newTestPolicy(t *testing.T) (*Policy, *Store) {
	t.Helper()

	db, err := storage.NewFileClient(&storage.FileConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	store := NewStore(db)
	return NewPolicy(store, store.Load(context.Background())), store
}

func TestKeyForNormalization(t *testing.T) {
	if KeyFor(" Topic ") != KeyFor("topic") {
		t.Error("keys must ignore surrounding whitespace and case")
	}
	if KeyFor("quantum   computing") != KeyFor("Quantum Computing") {
		t.Error("keys must collapse inner whitespace runs")
	}
	if KeyFor("quantum computing") == KeyFor("quantum biology") {
		t.Error("distinct topics must not collide")
	}
}

func TestGetMiss(t *testing.T) {
	policy, _ := newTestPolicy(t)

	_, found := policy.Get("unknown topic")
	if found {
		t.Error("expected a miss on an empty cache")
	}
}

func TestPutAndGet(t *testing.T) {
	policy, _ := newTestPolicy(t)
	ctx := context.Background()

	record := CacheRecord{
		OriginalQuery:  "Quantum Computing breakthroughs",
		GeneratedQuery: "quantum computing breakthrough research",
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
		RawResponse:    json.RawMessage(`{"id":"msg_1"}`),
	}

	if err := policy.Put(ctx, "Quantum Computing breakthroughs", record); err != nil {
		t.Fatal(err)
	}

	got, found := policy.Get("  quantum computing BREAKTHROUGHS ")
	if !found {
		t.Fatal("expected a hit for the normalized topic")
	}
	if got.GeneratedQuery != record.GeneratedQuery {
		t.Errorf("unexpected query: %q", got.GeneratedQuery)
	}
}

func TestErrorRecordIsStillAHit(t *testing.T) {
	policy, _ := newTestPolicy(t)
	ctx := context.Background()

	record := CacheRecord{
		OriginalQuery:  "broken topic",
		GeneratedQuery: "broken topic",
		CreatedAt:      time.Now().UTC(),
		Error:          &TranslationError{Message: "model unavailable"},
	}

	if err := policy.Put(ctx, "broken topic", record); err != nil {
		t.Fatal(err)
	}

	got, found := policy.Get("broken topic")
	if !found {
		t.Fatal("a record with an error must still count as a hit")
	}
	if got.Error == nil || got.Error.Message != "model unavailable" {
		t.Errorf("unexpected error details: %+v", got.Error)
	}
}

func TestPutOverwrites(t *testing.T) {
	policy, _ := newTestPolicy(t)
	ctx := context.Background()

	first := CacheRecord{OriginalQuery: "t", GeneratedQuery: "old", CreatedAt: time.Now().UTC()}
	second := CacheRecord{OriginalQuery: "t", GeneratedQuery: "new", CreatedAt: time.Now().UTC()}

	if err := policy.Put(ctx, "t", first); err != nil {
		t.Fatal(err)
	}
	if err := policy.Put(ctx, "t", second); err != nil {
		t.Fatal(err)
	}

	got, _ := policy.Get("t")
	if got.GeneratedQuery != "new" {
		t.Errorf("expected the overwritten record, got %q", got.GeneratedQuery)
	}
	if policy.Stats().Total != 1 {
		t.Errorf("overwrite must not grow the cache, total: %d", policy.Stats().Total)
	}
}

func TestClear(t *testing.T) {
	policy, store := newTestPolicy(t)
	ctx := context.Background()

	err := policy.Put(ctx, "some topic", CacheRecord{
		OriginalQuery:  "some topic",
		GeneratedQuery: "some query",
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := policy.Clear(ctx); err != nil {
		t.Fatal(err)
	}

	if policy.Stats().Total != 0 {
		t.Errorf("expected an empty cache after clear, total: %d", policy.Stats().Total)
	}
	if _, found := policy.Get("some topic"); found {
		t.Error("a cleared topic must be a miss again")
	}

	// the empty snapshot must be persisted too
	reloaded := store.Load(ctx)
	if reloaded.Len() != 0 {
		t.Errorf("expected the persisted snapshot to be empty, got %d records", reloaded.Len())
	}
}

func TestStats(t *testing.T) {
	policy, _ := newTestPolicy(t)
	ctx := context.Background()

	older := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC)

	err := policy.Put(ctx, "topic one", CacheRecord{
		OriginalQuery: "topic one", GeneratedQuery: "one", CreatedAt: older,
	})
	if err != nil {
		t.Fatal(err)
	}
	err = policy.Put(ctx, "topic two", CacheRecord{
		OriginalQuery: "topic two", GeneratedQuery: "topic two", CreatedAt: newer,
		Error: &TranslationError{Message: "timeout"},
	})
	if err != nil {
		t.Fatal(err)
	}

	stats := policy.Stats()
	if stats.Total != 2 {
		t.Errorf("total: %d", stats.Total)
	}
	if stats.Errors != 1 {
		t.Errorf("errors: %d", stats.Errors)
	}
	if !stats.Oldest.Equal(older) {
		t.Errorf("oldest: %s", stats.Oldest)
	}
	if !stats.Newest.Equal(newer) {
		t.Errorf("newest: %s", stats.Newest)
	}
}

func TestRoundTripPreservesAllFields(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.NewFileClient(&storage.FileConfig{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(db)
	ctx := context.Background()

	policy := NewPolicy(store, store.Load(ctx))

	record := CacheRecord{
		OriginalQuery:  "Mixed Martial Arts news",
		GeneratedQuery: "mma ufc fights",
		CreatedAt:      time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		RawResponse:    json.RawMessage(`{"id":"msg_2","content":[{"type":"text","text":"mma ufc fights"}]}`),
		Error:          &TranslationError{Message: "kept for the round trip"},
	}
	if err := policy.Put(ctx, "Mixed Martial Arts news", record); err != nil {
		t.Fatal(err)
	}

	reloaded := store.Load(ctx)
	got, found := reloaded.Get(KeyFor("Mixed Martial Arts news"))
	if !found {
		t.Fatal("record lost in the round trip")
	}

	if got.OriginalQuery != record.OriginalQuery ||
		got.GeneratedQuery != record.GeneratedQuery ||
		!got.CreatedAt.Equal(record.CreatedAt) ||
		string(got.RawResponse) != string(record.RawResponse) ||
		got.Error == nil || got.Error.Message != record.Error.Message {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadOnCorruptStorage(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.NewFileClient(&storage.FileConfig{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// simulate a corrupt snapshot on disk
	snapshotPath := filepath.Join(dir, "v1", "newsintel", "querytranslations", "snapshot.json")
	if err := os.MkdirAll(filepath.Dir(snapshotPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(snapshotPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cacheFile := NewStore(db).Load(ctx)
	if cacheFile.Len() != 0 {
		t.Errorf("corrupt storage must degrade to an empty cache, got %d records", cacheFile.Len())
	}
}
