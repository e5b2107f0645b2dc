package entities

// SharedQuoteSnapshot is the flattened, self-contained copy of a quote that
// travels inside a share code.
//
// Wire format notes:
//   - Risk/Urgency are serialized as their numeric coefficients
//     (1.2/1.6/2.2 and 1.0/1.5/2.0) for compatibility with codes issued by
//     older clients.
//   - TotalCost is informational only; the receiving side always recomputes
//     from the inputs and never trusts this field.
//   - All branding fields are optional.
type SharedQuoteSnapshot struct {
	Items            []LineItem `json:"items"`
	LaborHours       float64    `json:"laborHours"`
	HourlyRate       float64    `json:"hourlyRate"`
	Risk             float64    `json:"risk"`
	Urgency          float64    `json:"urgency"`
	ConversionRate   float64    `json:"currencyRate"`
	TotalCost        float64    `json:"totalCost"`
	CreatorName      string     `json:"creatorName,omitempty"`
	CreatorTelegram  string     `json:"creatorTelegram,omitempty"`
	CreatorAvatarURL string     `json:"creatorAvatarUrl,omitempty"`
	ClientName       string     `json:"clientName,omitempty"`
}

// Branding is the creator/client identity block attached to a shared quote.
type Branding struct {
	CreatorName      string `json:"creatorName"`
	CreatorTelegram  string `json:"creatorTelegram"`
	CreatorAvatarURL string `json:"creatorAvatarUrl"`
	ClientName       string `json:"clientName"`
}

// RestoredQuote is the outcome of decoding a share code: either a fully
// restored quote or the guest-mode fallback. ClientMode is on in both cases.
type RestoredQuote struct {
	State      QuoteState
	Branding   Branding
	ClientMode bool
	GuestMode  bool
}
