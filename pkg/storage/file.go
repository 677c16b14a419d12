package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"breathbathNewsIntel/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

type FileConfig struct {
	Dir string `envconfig:"STORAGE_DIR" default:"data"`
}

func (c *FileConfig) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.Dir == "" {
		e.Err("STORAGE_DIR cannot be empty")
	}

	return e
}

func LoadFileConfig() (cfg *FileConfig, err error) {
	cfg = new(FileConfig)
	err = envconfig.Process("storage", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load file storage config")
	}

	return cfg, nil
}

// FileClient persists values as JSON documents under a base directory, one
// file per key. Writes go through a temp file followed by a rename, so a crash
// mid-write leaves either the old value or the new one, never a torn file.
type FileClient struct {
	dir string
}

func NewFileClient(cfg *FileConfig) (*FileClient, error) {
	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	return &FileClient{dir: cfg.Dir}, nil
}

func (c *FileClient) pathForKey(key string) string {
	return filepath.Join(c.dir, filepath.FromSlash(key)+".json")
}

func (c *FileClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	log := logging.WithContext(ctx)

	raw, err = os.ReadFile(c.pathForKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("nothing found in file storage under key %q", key)
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to read data from file storage under key %q", key)
	}

	log.Debugf("successfully read %d bytes from file storage under key %q", len(raw), key)

	return raw, true, nil
}

func (c *FileClient) Write(ctx context.Context, key string, raw []byte) error {
	log := logging.WithContext(ctx)

	targetPath := c.pathForKey(key)
	targetDir := filepath.Dir(targetPath)

	err := os.MkdirAll(targetDir, 0o755)
	if err != nil {
		return errors.Wrapf(err, "failed to create storage directory %q", targetDir)
	}

	tmpFile, err := os.CreateTemp(targetDir, ".write-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create a temp file in %q", targetDir)
	}
	tmpPath := tmpFile.Name()

	_, err = tmpFile.Write(raw)
	if err == nil {
		err = tmpFile.Sync()
	}
	closeErr := tmpFile.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to write data to file storage under key %q", key)
	}

	err = os.Rename(tmpPath, targetPath)
	if err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to finalize file storage write under key %q", key)
	}

	log.Debugf("wrote %d bytes to file storage under key %q", len(raw), key)

	return nil
}

func (c *FileClient) Delete(ctx context.Context, key string) error {
	log := logging.WithContext(ctx)

	err := os.Remove(c.pathForKey(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete data from file storage under key %q", key)
	}

	log.Infof("deleted data from file storage under key %q", key)

	return nil
}

func (c *FileClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	log := logging.WithContext(ctx)

	log.Debugf("will load %q for key %s", typeName(target), key)

	rawData, found, err := c.Read(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to read data from storage")
	}

	if !found {
		return false, nil
	}

	err = json.Unmarshal(rawData, target)
	if err != nil {
		return false, errors.Wrapf(err, "failed to convert %s to %q", string(rawData), typeName(target))
	}

	return true, nil
}

func (c *FileClient) Save(ctx context.Context, key string, data interface{}) error {
	rawBytes, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %q to json", typeName(data))
	}

	return c.Write(ctx, key, rawBytes)
}
