package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"antidoshirak/internal/domain/entities"

	"github.com/google/uuid"
)

// AIBufferMultiplier is the engine-wide contingency buffer applied to raw
// AI cost. Generative tools have a non-trivial rejection/retry rate, so 30%
// of the token spend is assumed lost to failed generations. Not
// user-configurable.
const AIBufferMultiplier = 1.3

// PaceLockThreshold is the labor-hours-per-content-minute ratio above which
// the urgency selector is forced back to standard.
const PaceLockThreshold = 25.0

// NoTimelineSentinel is returned when there is nothing to estimate.
const NoTimelineSentinel = "---"

// IQuoteUseCase exposes the deterministic pricing arithmetic.
//
// Every operation is a pure in-memory transformation: same inputs, same
// outputs. Nothing here can fail; invalid numeric inputs are sanitized to
// safe defaults so a corrupted share snapshot degrades to zeros instead of
// breaking the computation.
type IQuoteUseCase interface {
	ComputeConversionRate(packagePriceCurrency, packageTokenCount float64) float64
	ComputeTotal(state entities.QuoteState) entities.CostBreakdown
	EstimateTimeline(laborHours float64, urgency entities.UrgencyLevel, isEmpty bool) string
	Evaluate(state entities.QuoteState) QuoteEvaluation
	MergeItems(existing, incoming []entities.LineItem) []entities.LineItem
	TextReport(state entities.QuoteState, branding entities.Branding, at time.Time) string
}

// QuoteEvaluation is the full derived view of a quote state: the cost
// breakdown, the delivery estimate and the pacing guardrail. EffectiveUrgency
// is what actually entered the computation after the pace lock.
type QuoteEvaluation struct {
	Breakdown        entities.CostBreakdown
	Timeline         string
	IsEmpty          bool
	ContentMinutes   float64
	PaceWarning      bool
	UrgencyLocked    bool
	EffectiveUrgency entities.UrgencyLevel
}

type QuoteUseCase struct{}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase() *QuoteUseCase {
	return &QuoteUseCase{}
}

// ComputeConversionRate derives the currency per lightning token rate from
// a package purchase. Zero token count means no package, rate 0.
func (u *QuoteUseCase) ComputeConversionRate(packagePriceCurrency, packageTokenCount float64) float64 {
	if packageTokenCount <= 0 {
		return 0
	}
	return packagePriceCurrency / packageTokenCount
}

// ComputeTotal runs the pricing arithmetic over a sanitized copy of the
// state. The buffer is applied exactly once, to the raw AI cost only.
func (u *QuoteUseCase) ComputeTotal(state entities.QuoteState) entities.CostBreakdown {
	state = sanitize(state)

	var rawAICost float64
	for _, item := range state.Items {
		rawAICost += item.Amount * item.UnitPrice * state.ConversionRate
	}

	bufferedAICost := rawAICost * AIBufferMultiplier
	laborCost := state.LaborHours * state.HourlyRate
	subtotal := bufferedAICost + laborCost
	total := subtotal * state.Risk.Multiplier() * state.Urgency.Multiplier()

	return entities.CostBreakdown{
		RawAICost:      rawAICost,
		BufferedAICost: bufferedAICost,
		LaborCost:      laborCost,
		Subtotal:       subtotal,
		Premium:        math.Max(0, total-subtotal),
		Total:          total,
	}
}

// EstimateTimeline turns labor hours into a human-readable delivery
// estimate. Urgency compresses the assumed productive hours per day, so
// price and timeline stay consistent with a single input.
func (u *QuoteUseCase) EstimateTimeline(laborHours float64, urgency entities.UrgencyLevel, isEmpty bool) string {
	if isEmpty {
		return NoTimelineSentinel
	}
	hours := clampNonNegative(laborHours)

	switch {
	case urgency.Multiplier() >= 2.0:
		// Crunch days of 12 productive hours, expressed in wall-clock hours.
		return fmt.Sprintf("%d HOURS (CRUNCH MODE)", int(math.Ceil(hours/12))*24)
	case urgency.Multiplier() >= 1.5:
		days := int(math.Ceil(hours / 8))
		return fmt.Sprintf("%d-%d DAYS (PRIORITY)", days, days+1)
	default:
		baseDays := int(math.Max(1, math.Ceil(hours/5)))
		return fmt.Sprintf("%d-%d BUSINESS DAYS", baseDays, baseDays+2)
	}
}

// Evaluate computes the full derived view, applying the pace guardrail
// before pricing: implausibly labor-heavy scopes cannot be sold as rushed.
func (u *QuoteUseCase) Evaluate(state entities.QuoteState) QuoteEvaluation {
	state = sanitize(state)
	isEmpty := len(state.Items) == 0 && state.LaborHours == 0

	contentMinutes := estimateContentMinutes(state.Items)
	effective := state.Urgency
	var paceWarning bool
	if contentMinutes > 0 {
		pace := state.LaborHours / contentMinutes
		if pace > PaceLockThreshold {
			paceWarning = true
			effective = entities.UrgencyStandard
		}
	}

	priced := state
	priced.Urgency = effective

	return QuoteEvaluation{
		Breakdown:        u.ComputeTotal(priced),
		Timeline:         u.EstimateTimeline(state.LaborHours, effective, isEmpty),
		IsEmpty:          isEmpty,
		ContentMinutes:   contentMinutes,
		PaceWarning:      paceWarning,
		UrgencyLocked:    paceWarning,
		EffectiveUrgency: effective,
	}
}

// MergeItems folds incoming items into the existing list: same tool id
// accumulates onto the existing row, new tools append with a fresh
// instance id. Used by both manual additions and brief-parser results.
func (u *QuoteUseCase) MergeItems(existing, incoming []entities.LineItem) []entities.LineItem {
	merged := make([]entities.LineItem, len(existing))
	copy(merged, existing)

	for _, in := range incoming {
		idx := -1
		for i := range merged {
			if merged[i].ID == in.ID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			merged[idx].Amount += clampNonNegative(in.Amount)
			continue
		}
		if in.InstanceID == "" {
			in.InstanceID = uuid.NewString()
		}
		in.Amount = clampNonNegative(in.Amount)
		merged = append(merged, in)
	}
	return merged
}

// TextReport renders the plain-text estimate used for copy-paste export.
func (u *QuoteUseCase) TextReport(state entities.QuoteState, branding entities.Branding, at time.Time) string {
	eval := u.Evaluate(state)

	var b strings.Builder
	fmt.Fprintf(&b, "⚡️ ANTI-DOSHIRAK // %s\n", at.Format("02.01.2006"))
	b.WriteString("=================\n")
	if branding.ClientName != "" {
		fmt.Fprintf(&b, "CLIENT: %s\n", branding.ClientName)
	}
	if eval.IsEmpty {
		b.WriteString("TOTAL: ---\n")
	} else {
		fmt.Fprintf(&b, "TOTAL: %s\n", FormatRUB(eval.Breakdown.Total))
		fmt.Fprintf(&b, "TIMELINE: %s\n", eval.Timeline)
	}
	b.WriteString("=================\n")
	if len(state.Items) > 0 {
		for _, item := range sanitize(state).Items {
			fmt.Fprintf(&b, "- %s x%s = %s\n",
				item.Name,
				strconv.FormatFloat(item.Amount, 'f', -1, 64),
				FormatRUB(item.Amount*item.UnitPrice*clampNonNegative(state.ConversionRate)*AIBufferMultiplier))
		}
		b.WriteString("=================\n")
	}
	if branding.CreatorName != "" || branding.CreatorTelegram != "" {
		fmt.Fprintf(&b, "%s %s\n", branding.CreatorName, branding.CreatorTelegram)
	}
	return b.String()
}

// estimateContentMinutes approximates the finished-content duration the
// item list implies. Video, avatar and audio generations are assumed to
// yield ~5 seconds each; images and text barely move a timeline.
func estimateContentMinutes(items []entities.LineItem) float64 {
	var total float64
	for _, item := range items {
		var seconds float64
		switch {
		case item.Unit == entities.UnitSecond:
			seconds = item.Amount
		case item.Unit == entities.UnitMinute:
			seconds = item.Amount * 60
		case item.Category == entities.CategoryVideo,
			item.Category == entities.CategoryAvatar,
			item.Category == entities.CategoryAudio:
			seconds = item.Amount * 5
		default:
			seconds = item.Amount * 0.5
		}
		total += seconds / 60
	}
	return total
}

// sanitize clamps NaN/negative numeric inputs to 0 so decoded or partial
// state can never break the arithmetic. Item amounts are clamped the same
// way; risk/urgency zero-values already degrade via Multiplier().
func sanitize(state entities.QuoteState) entities.QuoteState {
	state.ConversionRate = clampNonNegative(state.ConversionRate)
	state.HourlyRate = clampNonNegative(state.HourlyRate)
	state.LaborHours = clampNonNegative(state.LaborHours)
	if len(state.Items) > 0 {
		items := make([]entities.LineItem, len(state.Items))
		copy(items, state.Items)
		for i := range items {
			items[i].Amount = clampNonNegative(items[i].Amount)
			items[i].UnitPrice = clampNonNegative(items[i].UnitPrice)
		}
		state.Items = items
	}
	return state
}

func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// FormatRUB renders an amount the way the proposal view does: whole rubles
// with thin space grouping.
func FormatRUB(v float64) string {
	if math.IsNaN(v) {
		return "0 ₽"
	}
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	out := b.String() + " ₽"
	if neg {
		out = "-" + out
	}
	return out
}
