package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"

	"github.com/omarfh/proctor-api/internal/dto"
	"github.com/omarfh/proctor-api/internal/models"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context, key string) (*models.AppSetting, error)
	Upsert(ctx context.Context, setting *models.AppSetting) error
}

// SettingsService manages the compressed slot-calendar toggle and resolves
// the calendar mode for a given date.
type SettingsService struct {
	repo      settingsRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService constructs a settings service.
func NewSettingsService(repo settingsRepository, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, validator: validate, logger: logger}
}

// GetCompressedSchedule returns the stored toggle; an absent record means the
// compressed calendar is disabled.
func (s *SettingsService) GetCompressedSchedule(ctx context.Context) (models.CompressedScheduleSettings, error) {
	setting, err := s.repo.Get(ctx, models.SettingKeyCompressedSchedule)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CompressedScheduleSettings{}, nil
		}
		return models.CompressedScheduleSettings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule settings")
	}
	var value models.CompressedScheduleSettings
	if err := json.Unmarshal(setting.Value, &value); err != nil {
		return models.CompressedScheduleSettings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "corrupt schedule settings payload")
	}
	return value, nil
}

// UpdateCompressedSchedule writes the toggle. Enabling requires both range
// dates; disabling clears them.
func (s *SettingsService) UpdateCompressedSchedule(ctx context.Context, req dto.UpdateCompressedScheduleRequest) (models.CompressedScheduleSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.CompressedScheduleSettings{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule settings payload")
	}

	value := models.CompressedScheduleSettings{}
	if req.Enabled {
		if req.StartDate == "" || req.EndDate == "" {
			return models.CompressedScheduleSettings{}, appErrors.Clone(appErrors.ErrValidation, "start and end dates are required when enabling")
		}
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return models.CompressedScheduleSettings{}, appErrors.Clone(appErrors.ErrValidation, "invalid start date")
		}
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return models.CompressedScheduleSettings{}, appErrors.Clone(appErrors.ErrValidation, "invalid end date")
		}
		if end.Before(start) {
			return models.CompressedScheduleSettings{}, appErrors.Clone(appErrors.ErrValidation, "end date must not precede start date")
		}
		value = models.CompressedScheduleSettings{Enabled: true, StartDate: &start, EndDate: &end}
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return models.CompressedScheduleSettings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode schedule settings")
	}
	setting := &models.AppSetting{
		Key:   models.SettingKeyCompressedSchedule,
		Value: types.JSONText(payload),
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return models.CompressedScheduleSettings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store schedule settings")
	}

	s.logger.Info("compressed schedule updated", zap.Bool("enabled", value.Enabled))
	return value, nil
}

// CalendarFor resolves the slot calendar active on the given date.
func (s *SettingsService) CalendarFor(ctx context.Context, date time.Time) (CalendarMode, error) {
	settings, err := s.GetCompressedSchedule(ctx)
	if err != nil {
		return CalendarMode{}, err
	}
	return CalendarForDate(settings, date), nil
}
