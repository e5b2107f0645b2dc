package response

import (
	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase"
)

type ShareLinkResponse struct {
	Code      string  `json:"code"`
	URL       string  `json:"url"`
	TotalCost float64 `json:"total_cost"`
}

func FromShareLink(l usecase.ShareLink) ShareLinkResponse {
	return ShareLinkResponse{
		Code:      l.Code,
		URL:       l.URL,
		TotalCost: l.Snapshot.TotalCost,
	}
}

// RestoredQuoteResponse echoes the decoded state in the snapshot wire shape
// so the client can load it straight back into the configurator, plus the
// recomputed evaluation.
type RestoredQuoteResponse struct {
	Items          []entities.LineItem     `json:"items"`
	LaborHours     float64                 `json:"laborHours"`
	HourlyRate     float64                 `json:"hourlyRate"`
	Risk           float64                 `json:"risk"`
	Urgency        float64                 `json:"urgency"`
	ConversionRate float64                 `json:"currencyRate"`
	Branding       entities.Branding       `json:"branding"`
	ClientMode     bool                    `json:"client_mode"`
	GuestMode      bool                    `json:"guest_mode"`
	Evaluation     QuoteEvaluationResponse `json:"evaluation"`
}

func FromRestoredQuote(r entities.RestoredQuote, eval usecase.QuoteEvaluation) RestoredQuoteResponse {
	items := r.State.Items
	if items == nil {
		items = []entities.LineItem{}
	}
	return RestoredQuoteResponse{
		Items:          items,
		LaborHours:     r.State.LaborHours,
		HourlyRate:     r.State.HourlyRate,
		Risk:           r.State.Risk.Multiplier(),
		Urgency:        r.State.Urgency.Multiplier(),
		ConversionRate: r.State.ConversionRate,
		Branding:       r.Branding,
		ClientMode:     r.ClientMode,
		GuestMode:      r.GuestMode,
		Evaluation:     FromEvaluation(eval),
	}
}
