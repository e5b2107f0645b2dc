package response

import (
	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/usecase"
)

type MarketTierComparisonResponse struct {
	Label     string  `json:"label"`
	PriceMin  float64 `json:"price_min"`
	PriceMax  float64 `json:"price_max"`
	ScaledMin float64 `json:"scaled_min"`
	ScaledMax float64 `json:"scaled_max"`
	SLADays   int     `json:"sla_days"`
	Position  string  `json:"position"`
}

type MarketComparisonResponse struct {
	ServiceID      string                         `json:"service_id"`
	ServiceName    string                         `json:"service_name"`
	ScaleFactor    float64                        `json:"scale_factor"`
	DetectedVolume float64                        `json:"detected_volume"`
	UnitLabel      string                         `json:"unit_label"`
	UserPrice      float64                        `json:"user_price"`
	Tiers          []MarketTierComparisonResponse `json:"tiers"`
}

func FromMarketComparison(c usecase.MarketComparison) MarketComparisonResponse {
	out := MarketComparisonResponse{
		ServiceID:      c.Service.ID,
		ServiceName:    c.Service.Name,
		ScaleFactor:    c.ScaleFactor,
		DetectedVolume: c.DetectedVolume,
		UnitLabel:      c.Service.UnitLabel,
		UserPrice:      c.UserPrice,
		Tiers:          make([]MarketTierComparisonResponse, 0, len(c.Tiers)),
	}
	for _, t := range c.Tiers {
		out.Tiers = append(out.Tiers, MarketTierComparisonResponse{
			Label:     t.Tier.Label,
			PriceMin:  t.Tier.PriceMin,
			PriceMax:  t.Tier.PriceMax,
			ScaledMin: t.ScaledMin,
			ScaledMax: t.ScaledMax,
			SLADays:   t.Tier.SLADays,
			Position:  string(t.Position),
		})
	}
	return out
}

type MarketRatesResponse struct {
	Currency         string                  `json:"currency"`
	LastUpdated      string                  `json:"last_updated"`
	MinEngagementFee float64                 `json:"min_engagement_fee"`
	Services         []catalog.MarketService `json:"services"`
}

func FromMarketRates(r catalog.MarketRates) MarketRatesResponse {
	return MarketRatesResponse{
		Currency:         r.Currency,
		LastUpdated:      r.LastUpdated,
		MinEngagementFee: r.MinEngagementFee,
		Services:         r.Services,
	}
}
