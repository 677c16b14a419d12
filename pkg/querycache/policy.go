package querycache

import (
	"context"
	"time"

	logging "github.com/sirupsen/logrus"
)

// Stats is a read-only aggregate over the cache contents.
type Stats struct {
	Total  int
	Errors int
	Oldest time.Time
	Newest time.Time
}

// Policy mediates all access to the cache: key derivation, hit/miss decisions
// and snapshot persistence after each write. The CacheFile is owned by the
// caller for the duration of a run, so tests can inject isolated instances.
type Policy struct {
	store     *Store
	cacheFile *CacheFile
}

func NewPolicy(store *Store, cacheFile *CacheFile) *Policy {
	if cacheFile == nil {
		cacheFile = NewCacheFile()
	}

	return &Policy{store: store, cacheFile: cacheFile}
}

// Get returns the cached record for a topic. A record carrying a translation
// error is still a hit: its fallback query is reused instead of retrying the
// language model on every run, which bounds the external API spend.
func (p *Policy) Get(topic string) (CacheRecord, bool) {
	return p.cacheFile.Get(KeyFor(topic))
}

// Put inserts or overwrites the record for a topic and persists the snapshot.
// A persistence failure is returned but the record stays in the in-memory
// mapping, so the current run keeps its result either way.
func (p *Policy) Put(ctx context.Context, topic string, record CacheRecord) error {
	p.cacheFile.Set(KeyFor(topic), record)

	return p.store.Save(ctx, p.cacheFile)
}

// Clear irreversibly resets the cache to empty and persists the empty
// snapshot. This is the only invalidation mechanism, there is no per-key
// delete.
func (p *Policy) Clear(ctx context.Context) error {
	log := logging.WithContext(ctx)

	removed := p.cacheFile.Len()
	p.cacheFile.Reset()

	err := p.store.Save(ctx, p.cacheFile)
	if err != nil {
		return err
	}

	log.Infof("cleared query translation cache, removed %d records", removed)

	return nil
}

func (p *Policy) Stats() Stats {
	stats := Stats{Total: p.cacheFile.Len()}

	for _, record := range p.cacheFile.Records {
		if record.Error != nil {
			stats.Errors++
		}

		if stats.Oldest.IsZero() || record.CreatedAt.Before(stats.Oldest) {
			stats.Oldest = record.CreatedAt
		}
		if record.CreatedAt.After(stats.Newest) {
			stats.Newest = record.CreatedAt
		}
	}

	return stats
}
