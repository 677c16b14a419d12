package storage

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	Backend string `envconfig:"STORAGE_BACKEND" default:"file"`
}

func BuildClient() (Client, error) {
	cfg := new(Config)
	err := envconfig.Process("storage", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load storage config")
	}

	switch cfg.Backend {
	case BackendFile:
		fileCfg, err := LoadFileConfig()
		if err != nil {
			return nil, err
		}
		return NewFileClient(fileCfg)
	case BackendRedis:
		redisCfg, err := LoadRedisConfig()
		if err != nil {
			return nil, err
		}
		return NewRedisClient(redisCfg)
	default:
		return nil, errors.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
