package request

import (
	"antidoshirak/internal/domain/entities"
)

// LineItemRequest is the wire shape of one selected tool usage. It matches
// the share-snapshot item shape so the same payload can cross both
// endpoints.
type LineItemRequest struct {
	ID         string  `json:"id" binding:"required"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"lightning_price"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	InstanceID string  `json:"uniqueId"`
	Amount     float64 `json:"amount"`
}

// QuoteRequest carries the five pricing inputs. HourlyRate and
// ConversionRate are optional; when absent the stored settings fill them
// in. Risk/Urgency come in as their numeric coefficients; anything
// unrecognized degrades to the lowest tier.
type QuoteRequest struct {
	Items          []LineItemRequest `json:"items"`
	LaborHours     float64           `json:"laborHours"`
	HourlyRate     *float64          `json:"hourlyRate"`
	Risk           float64           `json:"risk"`
	Urgency        float64           `json:"urgency"`
	ConversionRate *float64          `json:"currencyRate"`
}

// ToolResolver fills in catalog fields for items sent by id only.
type ToolResolver interface {
	LookupWith(id string, extras []entities.ToolDefinition) (entities.ToolDefinition, bool)
}

// ResolveState maps the payload onto a QuoteState. Items carrying no unit
// price are resolved through the catalog; items that resolve nowhere keep
// whatever the payload said, the engine's sanitization handles the rest.
func (r QuoteRequest) ResolveState(resolver ToolResolver, custom []entities.ToolDefinition, defaultHourlyRate, defaultConversionRate float64) entities.QuoteState {
	state := entities.QuoteState{
		LaborHours:     r.LaborHours,
		HourlyRate:     defaultHourlyRate,
		Risk:           entities.RiskFromMultiplier(r.Risk),
		Urgency:        entities.UrgencyFromMultiplier(r.Urgency),
		ConversionRate: defaultConversionRate,
	}
	if r.HourlyRate != nil {
		state.HourlyRate = *r.HourlyRate
	}
	if r.ConversionRate != nil {
		state.ConversionRate = *r.ConversionRate
	}
	for _, it := range r.Items {
		state.Items = append(state.Items, it.resolve(resolver, custom))
	}
	return state
}

func (it LineItemRequest) resolve(resolver ToolResolver, custom []entities.ToolDefinition) entities.LineItem {
	def := entities.ToolDefinition{
		ID:        it.ID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
		Unit:      entities.UnitType(it.Unit),
		Category:  entities.CategoryType(it.Category),
	}
	if resolver != nil && it.UnitPrice == 0 {
		if resolved, ok := resolver.LookupWith(it.ID, custom); ok {
			def = resolved
		}
	}
	return entities.LineItem{
		ToolDefinition: def,
		InstanceID:     it.InstanceID,
		Amount:         it.Amount,
	}
}
