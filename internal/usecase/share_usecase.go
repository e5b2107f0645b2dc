package usecase

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"antidoshirak/internal/domain/entities"
)

const shareQueryParam = "data"

// guestMarker labels the client-name field when an unparseable access code
// is accepted as-is.
const guestMarker = "GUEST ACCESS // "

// IShareUseCase turns a quote into a portable code and back.
//
// Decode is total: any string is a valid input. Malformed codes degrade to
// an empty guest-mode quote labeled with the raw input instead of failing,
// which is what makes ad-hoc access codes work with no server-side
// validation.
type IShareUseCase interface {
	Encode(state entities.QuoteState, branding entities.Branding) ShareLink
	Decode(input string) entities.RestoredQuote
}

// ShareLink is the encoded form of a quote plus the URL a client can open.
type ShareLink struct {
	Code     string
	URL      string
	Snapshot entities.SharedQuoteSnapshot
}

type ShareUseCase struct {
	quotes  IQuoteUseCase
	baseURL string
}

var _ IShareUseCase = (*ShareUseCase)(nil)

func NewShareUseCase(quotes IQuoteUseCase, baseURL string) *ShareUseCase {
	return &ShareUseCase{quotes: quotes, baseURL: strings.TrimRight(baseURL, "/")}
}

// Encode snapshots the state (a deep copy, never a live reference),
// serializes it to canonical JSON and base64-encodes the result. TotalCost
// is embedded for display only; receivers recompute it.
func (u *ShareUseCase) Encode(state entities.QuoteState, branding entities.Branding) ShareLink {
	snapshot := entities.SharedQuoteSnapshot{
		Items:            state.CloneItems(),
		LaborHours:       state.LaborHours,
		HourlyRate:       state.HourlyRate,
		Risk:             state.Risk.Multiplier(),
		Urgency:          state.Urgency.Multiplier(),
		ConversionRate:   state.ConversionRate,
		TotalCost:        u.quotes.ComputeTotal(state).Total,
		CreatorName:      branding.CreatorName,
		CreatorTelegram:  branding.CreatorTelegram,
		CreatorAvatarURL: branding.CreatorAvatarURL,
		ClientName:       branding.ClientName,
	}
	if snapshot.Items == nil {
		snapshot.Items = []entities.LineItem{}
	}

	// Marshal of a plain value struct cannot fail; the codec has no error path.
	raw, _ := json.Marshal(snapshot)
	code := base64.StdEncoding.EncodeToString(raw)

	return ShareLink{
		Code:     code,
		URL:      u.baseURL + "?" + shareQueryParam + "=" + code,
		Snapshot: snapshot,
	}
}

// Decode restores a quote from a code or a full pasted share URL. Any
// failure, from bad base64 to a foreign JSON blob, falls back to guest mode.
func (u *ShareUseCase) Decode(input string) entities.RestoredQuote {
	code := strings.TrimSpace(input)
	if idx := strings.Index(code, shareQueryParam+"="); idx >= 0 {
		code = code[idx+len(shareQueryParam)+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		// Messengers sometimes strip the padding.
		raw, err = base64.RawStdEncoding.DecodeString(code)
	}
	if err != nil {
		return guestFallback(input)
	}

	snapshot, ok := parseSnapshot(raw)
	if !ok {
		return guestFallback(input)
	}

	return entities.RestoredQuote{
		State: entities.QuoteState{
			Items:          snapshot.Items,
			LaborHours:     snapshot.LaborHours,
			HourlyRate:     snapshot.HourlyRate,
			Risk:           entities.RiskFromMultiplier(snapshot.Risk),
			Urgency:        entities.UrgencyFromMultiplier(snapshot.Urgency),
			ConversionRate: snapshot.ConversionRate,
		},
		Branding: entities.Branding{
			CreatorName:      snapshot.CreatorName,
			CreatorTelegram:  snapshot.CreatorTelegram,
			CreatorAvatarURL: snapshot.CreatorAvatarURL,
			ClientName:       snapshot.ClientName,
		},
		ClientMode: true,
	}
}

// parseSnapshot structurally validates the payload before accepting it.
// Parse-exception catching alone is not enough: `{}` parses fine but is
// foreign garbage, not an empty quote. A payload qualifies only when both
// the item list and the labor hours are actually present.
func parseSnapshot(raw []byte) (entities.SharedQuoteSnapshot, bool) {
	var probe struct {
		Items      *[]entities.LineItem `json:"items"`
		LaborHours *float64             `json:"laborHours"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return entities.SharedQuoteSnapshot{}, false
	}
	if probe.Items == nil || probe.LaborHours == nil {
		return entities.SharedQuoteSnapshot{}, false
	}

	var snapshot entities.SharedQuoteSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return entities.SharedQuoteSnapshot{}, false
	}
	if snapshot.Items == nil {
		snapshot.Items = []entities.LineItem{}
	}
	return snapshot, true
}

func guestFallback(input string) entities.RestoredQuote {
	label := input
	if strings.TrimSpace(label) == "" {
		label = "ANON"
	}
	return entities.RestoredQuote{
		State: entities.QuoteState{
			Items:      []entities.LineItem{},
			LaborHours: 0,
			Risk:       entities.RiskLow,
			Urgency:    entities.UrgencyStandard,
		},
		Branding:   entities.Branding{ClientName: guestMarker + label},
		ClientMode: true,
		GuestMode:  true,
	}
}
