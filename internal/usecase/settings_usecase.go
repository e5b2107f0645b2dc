package usecase

import (
	"context"
	"errors"
	"math"

	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase/interfaces"
)

var ErrInvalidSettings = errors.New("invalid settings values")

// ISettingsUseCase owns the persisted creator settings the quote engine
// reads its rate inputs from.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, s entities.Settings) (entities.Settings, error)
	ConversionRate(ctx context.Context) (float64, error)
}

type SettingsUseCase struct {
	repo   interfaces.ISettingsRepository
	quotes IQuoteUseCase
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, quotes IQuoteUseCase) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, quotes: quotes}
}

// Get loads the stored settings, falling back to install defaults when the
// namespace was never saved.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	s, found, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	if !found {
		return entities.DefaultSettings(), nil
	}
	return s, nil
}

// Update validates and persists new settings. The hourly rate is raised to
// the financial floor when it falls below it, so a creator cannot quietly
// quote themselves out of their income target.
func (u *SettingsUseCase) Update(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	for _, v := range []float64{s.HourlyRate, s.PackagePriceCurrency, s.PackageTokenCount, s.TargetMonthlyIncome, s.BillableHoursPerMonth} {
		if math.IsNaN(v) || v < 0 {
			return entities.Settings{}, ErrInvalidSettings
		}
	}
	for _, t := range s.CustomTools {
		if t.ID == "" || math.IsNaN(t.UnitPrice) || t.UnitPrice <= 0 {
			return entities.Settings{}, ErrInvalidSettings
		}
	}

	if floor := s.MinHourlyRate(); s.HourlyRate < floor {
		s.HourlyRate = floor
	}

	if err := u.repo.Save(ctx, s); err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

// ConversionRate derives the currency-per-token rate from the stored
// package pricing.
func (u *SettingsUseCase) ConversionRate(ctx context.Context) (float64, error) {
	s, err := u.Get(ctx)
	if err != nil {
		return 0, err
	}
	return u.quotes.ComputeConversionRate(s.PackagePriceCurrency, s.PackageTokenCount), nil
}
