package request

import (
	"antidoshirak/internal/domain/entities"
)

// CustomToolRequest is a user-defined catalog entry.
type CustomToolRequest struct {
	ID        string  `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"lightning_price"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category"`
}

// SettingsRequest replaces the stored settings wholesale.
type SettingsRequest struct {
	HourlyRate            float64             `json:"hourlyRate"`
	PackagePrice          float64             `json:"packagePrice"`
	PackageTokens         float64             `json:"packageTokens"`
	TargetMonthlyIncome   float64             `json:"targetMonthlyIncome"`
	BillableHoursPerMonth float64             `json:"billableHoursPerMonth"`
	CreatorName           string              `json:"creatorName"`
	CreatorTelegram       string              `json:"creatorTelegram"`
	CreatorAvatarURL      string              `json:"creatorAvatarUrl"`
	ClientName            string              `json:"clientName"`
	CustomTools           []CustomToolRequest `json:"customTools"`
}

// ResolveSettings maps the payload onto the domain settings.
func (r SettingsRequest) ResolveSettings() entities.Settings {
	s := entities.Settings{
		HourlyRate:            r.HourlyRate,
		PackagePriceCurrency:  r.PackagePrice,
		PackageTokenCount:     r.PackageTokens,
		TargetMonthlyIncome:   r.TargetMonthlyIncome,
		BillableHoursPerMonth: r.BillableHoursPerMonth,
		CreatorName:           r.CreatorName,
		CreatorTelegram:       r.CreatorTelegram,
		CreatorAvatarURL:      r.CreatorAvatarURL,
		ClientName:            r.ClientName,
	}
	for _, t := range r.CustomTools {
		s.CustomTools = append(s.CustomTools, entities.ToolDefinition{
			ID:        t.ID,
			Name:      t.Name,
			UnitPrice: t.UnitPrice,
			Unit:      entities.UnitType(t.Unit),
			Category:  entities.CategoryType(t.Category),
		})
	}
	return s
}
