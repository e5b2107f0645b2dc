package response

import (
	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase"
)

type CostBreakdownResponse struct {
	RawAICost      float64 `json:"raw_ai_cost"`
	BufferedAICost float64 `json:"buffered_ai_cost"`
	LaborCost      float64 `json:"labor_cost"`
	Subtotal       float64 `json:"subtotal"`
	Premium        float64 `json:"premium"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formatted_total"`
}

type QuoteEvaluationResponse struct {
	Breakdown        CostBreakdownResponse `json:"breakdown"`
	Timeline         string                `json:"timeline"`
	IsEmpty          bool                  `json:"is_empty"`
	ContentMinutes   float64               `json:"content_minutes"`
	PaceWarning      bool                  `json:"pace_warning"`
	UrgencyLocked    bool                  `json:"urgency_locked"`
	EffectiveUrgency float64               `json:"effective_urgency"`
}

func FromBreakdown(b entities.CostBreakdown) CostBreakdownResponse {
	return CostBreakdownResponse{
		RawAICost:      b.RawAICost,
		BufferedAICost: b.BufferedAICost,
		LaborCost:      b.LaborCost,
		Subtotal:       b.Subtotal,
		Premium:        b.Premium,
		Total:          b.Total,
		FormattedTotal: usecase.FormatRUB(b.Total),
	}
}

func FromEvaluation(e usecase.QuoteEvaluation) QuoteEvaluationResponse {
	return QuoteEvaluationResponse{
		Breakdown:        FromBreakdown(e.Breakdown),
		Timeline:         e.Timeline,
		IsEmpty:          e.IsEmpty,
		ContentMinutes:   e.ContentMinutes,
		PaceWarning:      e.PaceWarning,
		UrgencyLocked:    e.UrgencyLocked,
		EffectiveUrgency: e.EffectiveUrgency.Multiplier(),
	}
}

type ReportResponse struct {
	Report string `json:"report"`
}
