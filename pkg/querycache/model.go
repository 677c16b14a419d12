package querycache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// CacheKey is the hex SHA-256 digest of a normalized topic.
type CacheKey string

// KeyFor derives the cache key for a topic. Topics differing only in case or
// whitespace map to the same key.
func KeyFor(topic string) CacheKey {
	digest := sha256.Sum256([]byte(NormalizeTopic(topic)))
	return CacheKey(hex.EncodeToString(digest[:]))
}

// NormalizeTopic trims, case-folds and collapses inner whitespace runs.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.Join(strings.Fields(topic), " "))
}

// TranslationError captures why a translation attempt failed. Its presence in
// a record marks the generated query as a fallback.
type TranslationError struct {
	Message string `json:"message"`
}

// CacheRecord is one cached topic translation. Records with a non-nil Error
// still carry a usable GeneratedQuery, derived locally from the topic.
type CacheRecord struct {
	OriginalQuery  string            `json:"original_query"`
	GeneratedQuery string            `json:"generated_query"`
	CreatedAt      time.Time         `json:"created_at"`
	RawResponse    json.RawMessage   `json:"raw_response,omitempty"`
	Error          *TranslationError `json:"error,omitempty"`
}

// CacheFile is the whole persisted mapping, held in memory for the duration of
// a run and saved as a single snapshot after each write.
type CacheFile struct {
	Records map[CacheKey]CacheRecord `json:"records"`
}

func NewCacheFile() *CacheFile {
	return &CacheFile{Records: map[CacheKey]CacheRecord{}}
}

func (f *CacheFile) Get(key CacheKey) (CacheRecord, bool) {
	record, found := f.Records[key]
	return record, found
}

func (f *CacheFile) Set(key CacheKey, record CacheRecord) {
	if f.Records == nil {
		f.Records = map[CacheKey]CacheRecord{}
	}
	f.Records[key] = record
}

func (f *CacheFile) Reset() {
	f.Records = map[CacheKey]CacheRecord{}
}

func (f *CacheFile) Len() int {
	return len(f.Records)
}
