package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sort"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/delivery/http/middleware"
	"hotel-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const (
	// MaxPreferenceSize caps a single stored value (64 KiB).
	MaxPreferenceSize = 64 << 10

	// DefaultPreferenceOwner holds preferences of requests that carry no staff name.
	DefaultPreferenceOwner = "default"
)

var (
	ErrPreferenceNotFound     = errors.New("preference not found")
	ErrInvalidPreferenceKey   = errors.New("preference key must be 1-64 letters, digits, '.', '_' or '-'")
	ErrInvalidPreferenceValue = errors.New("preference value must be valid JSON")
	ErrPreferenceTooLarge     = errors.New("preference value exceeds 64 KiB")
)

var preferenceKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// PreferenceUsecase stores per-staff UI state: table view modes, page sizes, sort
// orders and unsent form drafts.
type PreferenceUsecase interface {
	ListPreferences(ctx context.Context) ([]dto.PreferenceResponse, error)
	GetPreference(ctx context.Context, key string) (*dto.PreferenceResponse, error)
	SetPreference(ctx context.Context, key string, value []byte) (*dto.PreferenceResponse, error)
	DeletePreference(ctx context.Context, key string) error
}

type preferenceUsecase struct {
	log            *logrus.Logger
	preferenceRepo repository.PreferenceRepository
}

func NewPreferenceUsecase(log *logrus.Logger, preferenceRepo repository.PreferenceRepository) PreferenceUsecase {
	return &preferenceUsecase{
		log:            log,
		preferenceRepo: preferenceRepo,
	}
}

func (u *preferenceUsecase) ListPreferences(ctx context.Context) ([]dto.PreferenceResponse, error) {
	owner := preferenceOwner(ctx)
	prefs, err := u.preferenceRepo.GetAll(ctx, owner)
	if err != nil {
		u.log.Warnf("Failed to load preferences of %s: %+v", owner, err)
		return nil, err
	}

	keys := make([]string, 0, len(prefs))
	for key := range prefs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	responses := make([]dto.PreferenceResponse, 0, len(keys))
	for _, key := range keys {
		responses = append(responses, dto.PreferenceResponse{Key: key, Value: prefs[key]})
	}
	return responses, nil
}

func (u *preferenceUsecase) GetPreference(ctx context.Context, key string) (*dto.PreferenceResponse, error) {
	if !preferenceKeyPattern.MatchString(key) {
		return nil, ErrInvalidPreferenceKey
	}

	owner := preferenceOwner(ctx)
	value, err := u.preferenceRepo.Get(ctx, owner, key)
	if err != nil {
		u.log.Warnf("Failed to load preference %s of %s: %+v", key, owner, err)
		return nil, err
	}
	if value == nil {
		return nil, ErrPreferenceNotFound
	}
	return &dto.PreferenceResponse{Key: key, Value: value}, nil
}

func (u *preferenceUsecase) SetPreference(ctx context.Context, key string, value []byte) (*dto.PreferenceResponse, error) {
	if !preferenceKeyPattern.MatchString(key) {
		return nil, ErrInvalidPreferenceKey
	}
	if len(value) > MaxPreferenceSize {
		return nil, ErrPreferenceTooLarge
	}
	if !json.Valid(value) {
		return nil, ErrInvalidPreferenceValue
	}

	owner := preferenceOwner(ctx)
	raw := json.RawMessage(value)
	if err := u.preferenceRepo.Set(ctx, owner, key, raw); err != nil {
		u.log.Warnf("Failed to store preference %s of %s: %+v", key, owner, err)
		return nil, err
	}
	return &dto.PreferenceResponse{Key: key, Value: raw}, nil
}

func (u *preferenceUsecase) DeletePreference(ctx context.Context, key string) error {
	if !preferenceKeyPattern.MatchString(key) {
		return ErrInvalidPreferenceKey
	}

	owner := preferenceOwner(ctx)
	deleted, err := u.preferenceRepo.Delete(ctx, owner, key)
	if err != nil {
		u.log.Warnf("Failed to delete preference %s of %s: %+v", key, owner, err)
		return err
	}
	if deleted == 0 {
		return ErrPreferenceNotFound
	}
	return nil
}

func preferenceOwner(ctx context.Context) string {
	if name, ok := middleware.GetStaffNameFromContext(ctx); ok {
		return name
	}
	return DefaultPreferenceOwner
}
