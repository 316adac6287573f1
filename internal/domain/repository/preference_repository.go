package repository

import (
	"context"
	"encoding/json"
)

// PreferenceRepository stores per-staff UI preferences and drafts as raw JSON values.
type PreferenceRepository interface {
	GetAll(ctx context.Context, owner string) (map[string]json.RawMessage, error)
	Get(ctx context.Context, owner, key string) (json.RawMessage, error)
	Set(ctx context.Context, owner, key string, value json.RawMessage) error
	Delete(ctx context.Context, owner, key string) (int64, error)
}
