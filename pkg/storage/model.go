package storage

import (
	"context"
	"reflect"
	"strings"
)

// Client is a key-value persistence contract. The query translation cache keeps
// its whole snapshot under a single key, so a backend only has to guarantee
// that a Write is atomic per key: a crashed Write must never leave a value
// readable by a later Read in a half-written state.
type Client interface {
	Read(ctx context.Context, key string) (raw []byte, found bool, err error)
	Write(ctx context.Context, key string, raw []byte) error
	Delete(ctx context.Context, key string) error
	Load(ctx context.Context, key string, target interface{}) (found bool, err error)
	Save(ctx context.Context, key string, data interface{}) error
}

// GenerateCacheKey builds consistent storage keys with a small probability of conflicts
/**
version: version of the stored model, bump it on incompatible changes, example v1, v2, v3
app: owning application, e.g. "newsintel"
domain: e.g. "querytranslations"
uniqueParts: discriminators within the domain, e.g. "snapshot"
*/
func GenerateCacheKey(version, app, domain string, uniqueParts ...string) string {
	parts := []string{
		version,
		strings.ToLower(app),
		strings.ToLower(domain),
	}

	parts = append(parts, uniqueParts...)

	return strings.Join(parts, "/")
}

func typeName(target interface{}) string {
	t := reflect.TypeOf(target)

	if t.Kind() == reflect.Ptr {
		return "*" + t.Elem().Name()
	}

	return t.Name()
}
