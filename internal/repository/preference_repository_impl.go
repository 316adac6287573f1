package repository

import (
	"context"
	"encoding/json"
	"errors"

	domainRepo "hotel-frontdesk/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// PreferenceKeyPrefix namespaces the per-owner preference hashes.
const PreferenceKeyPrefix = "preferences:"

type preferenceRepository struct {
	redisClient *redis.Client
}

func NewPreferenceRepository(redisClient *redis.Client) domainRepo.PreferenceRepository {
	return &preferenceRepository{redisClient: redisClient}
}

func (r *preferenceRepository) GetAll(ctx context.Context, owner string) (map[string]json.RawMessage, error) {
	values, err := r.redisClient.HGetAll(ctx, PreferenceKeyPrefix+owner).Result()
	if err != nil {
		return nil, err
	}
	prefs := make(map[string]json.RawMessage, len(values))
	for key, value := range values {
		prefs[key] = json.RawMessage(value)
	}
	return prefs, nil
}

func (r *preferenceRepository) Get(ctx context.Context, owner, key string) (json.RawMessage, error) {
	value, err := r.redisClient.HGet(ctx, PreferenceKeyPrefix+owner, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(value), nil
}

func (r *preferenceRepository) Set(ctx context.Context, owner, key string, value json.RawMessage) error {
	return r.redisClient.HSet(ctx, PreferenceKeyPrefix+owner, key, string(value)).Err()
}

func (r *preferenceRepository) Delete(ctx context.Context, owner, key string) (int64, error) {
	return r.redisClient.HDel(ctx, PreferenceKeyPrefix+owner, key).Result()
}
