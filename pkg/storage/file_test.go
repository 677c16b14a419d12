package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestFileClient(t *testing.T) (*FileClient, string) {
	t.Helper()

	dir := t.TempDir()
	c, err := NewFileClient(&FileConfig{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}

	return c, dir
}

func TestFileReadMissingKey(t *testing.T) {
	c, _ := newTestFileClient(t)

	_, found, err := c.Read(context.Background(), "v1/app/domain/missing")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("expected found=false for a missing key")
	}
}

func TestFileWriteAndRead(t *testing.T) {
	c, dir := newTestFileClient(t)
	ctx := context.Background()

	key := GenerateCacheKey("v1", "NewsIntel", "QueryTranslations", "snapshot")
	if key != "v1/newsintel/querytranslations/snapshot" {
		t.Fatalf("unexpected key: %q", key)
	}

	if err := c.Write(ctx, key, []byte(`{"records":{}}`)); err != nil {
		t.Fatal(err)
	}

	raw, found, err := c.Read(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected to find the written key")
	}
	if string(raw) != `{"records":{}}` {
		t.Errorf("unexpected data: %s", raw)
	}

	// the atomic write must not leave temp files behind
	entries, err := os.ReadDir(filepath.Join(dir, "v1", "newsintel", "querytranslations"))
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".write-") {
			t.Errorf("leftover temp file: %s", entry.Name())
		}
	}
}

func TestFileWriteOverwrites(t *testing.T) {
	c, _ := newTestFileClient(t)
	ctx := context.Background()

	if err := c.Write(ctx, "k", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := c.Write(ctx, "k", []byte("new")); err != nil {
		t.Fatal(err)
	}

	raw, _, err := c.Read(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "new" {
		t.Errorf("unexpected data after overwrite: %s", raw)
	}
}

func TestFileDelete(t *testing.T) {
	c, _ := newTestFileClient(t)
	ctx := context.Background()

	if err := c.Write(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := c.Read(ctx, "k"); found {
		t.Error("expected the key to be gone after delete")
	}

	// deleting a missing key is not an error
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("delete of a missing key failed: %v", err)
	}
}

func TestFileSaveAndLoad(t *testing.T) {
	c, _ := newTestFileClient(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := c.Save(ctx, "p", &payload{Name: "x", Count: 3}); err != nil {
		t.Fatal(err)
	}

	got := new(payload)
	found, err := c.Load(ctx, "p", got)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected to find the saved payload")
	}
	if got.Name != "x" || got.Count != 3 {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestFileLoadCorruptData(t *testing.T) {
	c, _ := newTestFileClient(t)
	ctx := context.Background()

	if err := c.Write(ctx, "broken", []byte("{oops")); err != nil {
		t.Fatal(err)
	}

	target := map[string]string{}
	_, err := c.Load(ctx, "broken", &target)
	if err == nil {
		t.Error("expected an unmarshal error for corrupt data")
	}
}
