package entities

import "math"

// Settings is the per-creator configuration the quote engine reads its
// hourly rate and conversion inputs from.
//
// Storage model (DynamoDB):
//   - PK: namespace (string) — a single fixed key per installation, the
//     server-side rendition of the original local-storage namespace.
type Settings struct {
	HourlyRate            float64          `json:"hourlyRate"`
	PackagePriceCurrency  float64          `json:"packagePrice"`
	PackageTokenCount     float64          `json:"packageTokens"`
	TargetMonthlyIncome   float64          `json:"targetMonthlyIncome"`
	BillableHoursPerMonth float64          `json:"billableHoursPerMonth"`
	CreatorName           string           `json:"creatorName"`
	CreatorTelegram       string           `json:"creatorTelegram"`
	CreatorAvatarURL      string           `json:"creatorAvatarUrl"`
	ClientName            string           `json:"clientName"`
	CustomTools           []ToolDefinition `json:"customTools,omitempty"`
}

// DefaultSettings mirrors the original install defaults (RUB rates, Syntx
// package pricing).
func DefaultSettings() Settings {
	return Settings{
		HourlyRate:            500,
		PackagePriceCurrency:  1690,
		PackageTokenCount:     680,
		TargetMonthlyIncome:   100000,
		BillableHoursPerMonth: 170,
	}
}

// MinHourlyRate is the financial floor: the hourly rate below which the
// creator cannot hit their income target. Zero when the inputs are unset.
func (s Settings) MinHourlyRate() float64 {
	if s.BillableHoursPerMonth <= 0 || s.TargetMonthlyIncome <= 0 {
		return 0
	}
	return math.Ceil(s.TargetMonthlyIncome / s.BillableHoursPerMonth)
}

// Branding extracts the identity block used in share snapshots.
func (s Settings) Branding() Branding {
	return Branding{
		CreatorName:      s.CreatorName,
		CreatorTelegram:  s.CreatorTelegram,
		CreatorAvatarURL: s.CreatorAvatarURL,
		ClientName:       s.ClientName,
	}
}
