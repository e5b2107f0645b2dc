package interfaces

import (
	"context"

	"antidoshirak/internal/domain/entities"
)

// ISettingsRepository abstracts the persisted per-creator settings store.
//
// The quote engine reads hourlyRate/conversion inputs from it; the UI
// writes it on every settings change. Load reports found=false when the
// namespace has never been saved, so callers can fall back to defaults.
type ISettingsRepository interface {
	Load(ctx context.Context) (settings entities.Settings, found bool, err error)
	Save(ctx context.Context, settings entities.Settings) error
}
