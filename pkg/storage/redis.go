package storage

import (
	"context"
	"encoding/json"
	"time"

	"breathbathNewsIntel/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	base "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type RedisConfig struct {
	Addr string `envconfig:"REDIS_ADDR"`
	Pass string `envconfig:"REDIS_PASS"`
}

func (c *RedisConfig) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.Addr == "" {
		e.Err("REDIS_ADDR cannot be empty")
	}

	return e
}

func LoadRedisConfig() (cfg *RedisConfig, err error) {
	cfg = new(RedisConfig)
	err = envconfig.Process("redis", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load redis config")
	}

	return cfg, nil
}

// RedisClient stores values without expiration: the cache snapshot is durable
// state, a restarted redis must still hand it back.
type RedisClient struct {
	baseClient *base.Client
}

func NewRedisClient(cfg *RedisConfig) (*RedisClient, error) {
	err := cfg.Validate()
	if err.HasErrors() {
		return nil, err
	}

	rdb := base.NewClient(&base.Options{
		Addr:     cfg.Addr,
		Password: cfg.Pass,
		DB:       0,
	})

	redisCheckErr := checkRedis(rdb)
	if redisCheckErr != nil {
		logrus.Errorf("failed to ping redis %q", cfg.Addr)
		return nil, redisCheckErr
	}

	logrus.Infof("ping to redis %q is successful", cfg.Addr)
	return &RedisClient{baseClient: rdb}, nil
}

func checkRedis(cl *base.Client) error {
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		status := cl.Ping(ctx)
		err := status.Err()
		if err != nil {
			logrus.Errorf("failed to connect to redis: %v", err)
			return err
		}

		return nil
	}

	err := backoff.Retry(operation, backoff.NewExponentialBackOff())
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}

	return nil
}

func (c *RedisClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	log := logrus.WithContext(ctx)

	val, err := c.baseClient.Get(ctx, key).Result()
	if err != nil {
		if err == base.Nil {
			log.Debugf("nothing found in redis under key %q", key)
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to get data from redis under key %q", key)
	}

	log.Debugf("successfully read %d bytes from redis under key %q", len(val), key)

	return []byte(val), true, nil
}

func (c *RedisClient) Write(ctx context.Context, key string, raw []byte) error {
	log := logrus.WithContext(ctx)

	err := c.baseClient.Set(ctx, key, raw, 0).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to write data to redis under key %q", key)
	}

	log.Debugf("wrote %d bytes to redis under key %q", len(raw), key)

	return nil
}

func (c *RedisClient) Delete(ctx context.Context, key string) error {
	log := logrus.WithContext(ctx)

	err := c.baseClient.Del(ctx, key).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to delete data from redis under key %q", key)
	}

	log.Infof("deleted data from redis under key %q", key)
	return nil
}

func (c *RedisClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	log := logrus.WithContext(ctx)

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

func (c *RedisClient) Save(ctx context.Context, key string, data interface{}) error {
	rawBytes, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %q to json", typeName(data))
	}

	return c.Write(ctx, key, rawBytes)
}
