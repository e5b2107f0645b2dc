package response

import (
	"antidoshirak/internal/domain/entities"
)

type SettingsResponse struct {
	HourlyRate            float64        `json:"hourlyRate"`
	PackagePrice          float64        `json:"packagePrice"`
	PackageTokens         float64        `json:"packageTokens"`
	TargetMonthlyIncome   float64        `json:"targetMonthlyIncome"`
	BillableHoursPerMonth float64        `json:"billableHoursPerMonth"`
	CreatorName           string         `json:"creatorName"`
	CreatorTelegram       string         `json:"creatorTelegram"`
	CreatorAvatarURL      string         `json:"creatorAvatarUrl"`
	ClientName            string         `json:"clientName"`
	CustomTools           []ToolResponse `json:"customTools"`
	MinHourlyRate         float64        `json:"minHourlyRate"`
	ConversionRate        float64        `json:"conversionRate"`
}

func FromSettings(s entities.Settings, conversionRate float64) SettingsResponse {
	out := SettingsResponse{
		HourlyRate:            s.HourlyRate,
		PackagePrice:          s.PackagePriceCurrency,
		PackageTokens:         s.PackageTokenCount,
		TargetMonthlyIncome:   s.TargetMonthlyIncome,
		BillableHoursPerMonth: s.BillableHoursPerMonth,
		CreatorName:           s.CreatorName,
		CreatorTelegram:       s.CreatorTelegram,
		CreatorAvatarURL:      s.CreatorAvatarURL,
		ClientName:            s.ClientName,
		CustomTools:           make([]ToolResponse, 0, len(s.CustomTools)),
		MinHourlyRate:         s.MinHourlyRate(),
		ConversionRate:        conversionRate,
	}
	for _, t := range s.CustomTools {
		out.CustomTools = append(out.CustomTools, ToolResponse{
			ID:        t.ID,
			Name:      t.Name,
			UnitPrice: t.UnitPrice,
			Unit:      string(t.Unit),
			Category:  string(t.Category),
		})
	}
	return out
}
