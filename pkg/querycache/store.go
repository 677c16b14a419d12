package querycache

import (
	"context"

	"breathbathNewsIntel/pkg/storage"

	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

// snapshotKey is where the whole CacheFile lives in storage.
var snapshotKey = storage.GenerateCacheKey("v1", "newsintel", "querytranslations", "snapshot")

// Store persists CacheFile snapshots through a storage client.
type Store struct {
	db storage.Client
}

func NewStore(db storage.Client) *Store {
	return &Store{db: db}
}

// Load reads the persisted snapshot. Missing, unreadable or corrupt storage
// degrades to an empty cache: the pipeline then misses every topic and
// repopulates, which is always safe.
func (s *Store) Load(ctx context.Context) *CacheFile {
	log := logging.WithContext(ctx)

	cacheFile := NewCacheFile()
	found, err := s.db.Load(ctx, snapshotKey, cacheFile)
	if err != nil {
		log.Warnf("failed to load query translation cache, will start with an empty one: %v", err)
		return NewCacheFile()
	}

	if !found {
		log.Debug("no persisted query translation cache found, starting empty")
		return cacheFile
	}

	if cacheFile.Records == nil {
		cacheFile.Records = map[CacheKey]CacheRecord{}
	}

	log.Debugf("loaded query translation cache with %d records", cacheFile.Len())

	return cacheFile
}

// Save overwrites the persisted snapshot with the full mapping.
func (s *Store) Save(ctx context.Context, cacheFile *CacheFile) error {
	err := s.db.Save(ctx, snapshotKey, cacheFile)
	if err != nil {
		return errors.Wrap(err, "failed to persist query translation cache")
	}

	return nil
}
