package store

import (
	redis "github.com/go-redis/redis/v7"
)

// Redis is a Backend keeping the whole document under a single redis key,
// preserving the load-modify-save discipline of the file backend.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis provides Redis backend instance for given client and key
func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{
		client: client,
		key:    key,
	}
}

// Load reads the whole document
func (r *Redis) Load() ([]byte, error) {
	data, err := r.client.Get(r.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}

	return data, err
}

// Save writes the whole document
func (r *Redis) Save(data []byte) error {
	return r.client.Set(r.key, data, 0).Err()
}
