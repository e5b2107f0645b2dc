package entities

// RiskLevel grades how ambiguous the client brief is.
//
// The level identity is independent of its pricing coefficient so the
// coefficients can be tuned without breaking equality checks; Multiplier()
// holds the only mapping.
type RiskLevel string

const (
	RiskLow  RiskLevel = "low"
	RiskMid  RiskLevel = "mid"
	RiskHigh RiskLevel = "high"
)

// Multiplier returns the pricing coefficient for the level. Unknown levels
// degrade to the LOW coefficient rather than erroring.
func (r RiskLevel) Multiplier() float64 {
	switch r {
	case RiskMid:
		return 1.6
	case RiskHigh:
		return 2.2
	default:
		return 1.2
	}
}

// RiskFromMultiplier resolves a wire coefficient back to its level.
// Anything unrecognized maps to RiskLow, matching the engine's
// degrade-to-defaults policy.
func RiskFromMultiplier(m float64) RiskLevel {
	switch m {
	case 1.6:
		return RiskMid
	case 2.2:
		return RiskHigh
	default:
		return RiskLow
	}
}

// UrgencyLevel grades the requested delivery speed. Besides the price
// coefficient it also drives the assumed working pace per day in the
// timeline estimate.
type UrgencyLevel string

const (
	UrgencyStandard  UrgencyLevel = "standard"
	UrgencyASAP      UrgencyLevel = "asap"
	UrgencyYesterday UrgencyLevel = "yesterday"
)

func (u UrgencyLevel) Multiplier() float64 {
	switch u {
	case UrgencyASAP:
		return 1.5
	case UrgencyYesterday:
		return 2.0
	default:
		return 1.0
	}
}

// UrgencyFromMultiplier resolves a wire coefficient back to its level.
// Unrecognized coefficients map to UrgencyStandard.
func UrgencyFromMultiplier(m float64) UrgencyLevel {
	switch m {
	case 1.5:
		return UrgencyASAP
	case 2.0:
		return UrgencyYesterday
	default:
		return UrgencyStandard
	}
}

// LineItem is one selected tool usage in a quote.
//
// InstanceID distinguishes repeated additions of the same tool; merge logic
// accumulates by ToolDefinition.ID, not by instance.
type LineItem struct {
	ToolDefinition
	InstanceID string  `json:"uniqueId"`
	Amount     float64 `json:"amount"`
}

// QuoteState is the aggregate the pricing engine operates on. It is owned
// by exactly one session; sharing always goes through a snapshot copy.
type QuoteState struct {
	Items          []LineItem
	LaborHours     float64
	HourlyRate     float64
	Risk           RiskLevel
	Urgency        UrgencyLevel
	ConversionRate float64
}

// CloneItems returns a deep copy of the item list so a snapshot can never
// alias the live state.
func (s QuoteState) CloneItems() []LineItem {
	if len(s.Items) == 0 {
		return nil
	}
	out := make([]LineItem, len(s.Items))
	copy(out, s.Items)
	return out
}

// CostBreakdown is the result of evaluating a QuoteState.
//
// Premium is display-only: the share of the total attributable purely to
// the risk/urgency coefficients.
type CostBreakdown struct {
	RawAICost      float64
	BufferedAICost float64
	LaborCost      float64
	Subtotal       float64
	Premium        float64
	Total          float64
}
