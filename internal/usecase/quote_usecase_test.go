package usecase

import (
	"math"
	"strings"
	"testing"
	"time"

	"antidoshirak/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func videoKlingItem(amount float64) entities.LineItem {
	return entities.LineItem{
		ToolDefinition: entities.ToolDefinition{
			ID:        "video_kling",
			Name:      "Kling 2.5 Pro",
			UnitPrice: 6.0,
			Unit:      entities.UnitSecond,
			Category:  entities.CategoryVideo,
		},
		InstanceID: "inst-1",
		Amount:     amount,
	}
}

func TestQuoteUseCase_ComputeTotal(t *testing.T) {
	uc := NewQuoteUseCase()

	t.Run("reference scenario", func(t *testing.T) {
		state := entities.QuoteState{
			Items:          []entities.LineItem{videoKlingItem(10)},
			LaborHours:     4,
			HourlyRate:     500,
			Risk:           entities.RiskLow,
			Urgency:        entities.UrgencyStandard,
			ConversionRate: 2.0,
		}

		b := uc.ComputeTotal(state)

		if !almostEqual(b.RawAICost, 120) {
			t.Fatalf("expected raw AI cost 120, got %v", b.RawAICost)
		}
		if !almostEqual(b.BufferedAICost, 156) {
			t.Fatalf("expected buffered AI cost 156, got %v", b.BufferedAICost)
		}
		if !almostEqual(b.LaborCost, 2000) {
			t.Fatalf("expected labor cost 2000, got %v", b.LaborCost)
		}
		if !almostEqual(b.Subtotal, 2156) {
			t.Fatalf("expected subtotal 2156, got %v", b.Subtotal)
		}
		if !almostEqual(b.Total, 2587.2) {
			t.Fatalf("expected total 2587.2, got %v", b.Total)
		}
		if !almostEqual(b.Premium, b.Total-b.Subtotal) {
			t.Fatalf("premium must equal total minus subtotal, got %v", b.Premium)
		}
	})

	t.Run("buffer applies to AI cost only", func(t *testing.T) {
		state := entities.QuoteState{
			LaborHours:     10,
			HourlyRate:     100,
			Risk:           entities.RiskLow,
			Urgency:        entities.UrgencyStandard,
			ConversionRate: 1,
		}

		b := uc.ComputeTotal(state)
		if !almostEqual(b.LaborCost, 1000) {
			t.Fatalf("expected labor cost 1000, got %v", b.LaborCost)
		}
		if !almostEqual(b.BufferedAICost, 0) {
			t.Fatalf("expected zero buffered AI cost, got %v", b.BufferedAICost)
		}
	})

	t.Run("multipliers stack", func(t *testing.T) {
		state := entities.QuoteState{
			Items:          []entities.LineItem{videoKlingItem(10)},
			LaborHours:     4,
			HourlyRate:     500,
			Risk:           entities.RiskHigh,
			Urgency:        entities.UrgencyYesterday,
			ConversionRate: 2.0,
		}

		b := uc.ComputeTotal(state)
		if !almostEqual(b.Total, 2156*2.2*2.0) {
			t.Fatalf("expected %v, got %v", 2156*2.2*2.0, b.Total)
		}
	})

	t.Run("invalid numeric inputs sanitize to zero", func(t *testing.T) {
		state := entities.QuoteState{
			Items:          []entities.LineItem{videoKlingItem(-5)},
			LaborHours:     math.NaN(),
			HourlyRate:     -100,
			Risk:           entities.RiskLow,
			Urgency:        entities.UrgencyStandard,
			ConversionRate: math.NaN(),
		}

		b := uc.ComputeTotal(state)
		if !almostEqual(b.Total, 0) {
			t.Fatalf("expected zero total for garbage inputs, got %v", b.Total)
		}
		if math.IsNaN(b.Subtotal) {
			t.Fatal("subtotal must never be NaN")
		}
	})

	t.Run("unknown levels degrade to lowest tier", func(t *testing.T) {
		state := entities.QuoteState{
			LaborHours: 1,
			HourlyRate: 100,
			Risk:       entities.RiskLevel("whatever"),
			Urgency:    entities.UrgencyLevel("??"),
		}

		b := uc.ComputeTotal(state)
		if !almostEqual(b.Total, 100*1.2) {
			t.Fatalf("expected low-tier multipliers, got %v", b.Total)
		}
	})
}

func TestQuoteUseCase_ComputeConversionRate(t *testing.T) {
	uc := NewQuoteUseCase()

	if got := uc.ComputeConversionRate(1690, 680); !almostEqual(got, 1690.0/680.0) {
		t.Fatalf("expected %v, got %v", 1690.0/680.0, got)
	}
	if got := uc.ComputeConversionRate(1690, 0); got != 0 {
		t.Fatalf("expected 0 for empty package, got %v", got)
	}
}

func TestQuoteUseCase_EstimateTimeline(t *testing.T) {
	uc := NewQuoteUseCase()

	cases := []struct {
		name    string
		hours   float64
		urgency entities.UrgencyLevel
		isEmpty bool
		want    string
	}{
		{"empty quote", 0, entities.UrgencyStandard, true, "---"},
		{"standard short", 4, entities.UrgencyStandard, false, "1-3 BUSINESS DAYS"},
		{"standard long", 40, entities.UrgencyStandard, false, "8-10 BUSINESS DAYS"},
		{"standard zero hours keeps one day floor", 0, entities.UrgencyStandard, false, "1-3 BUSINESS DAYS"},
		{"priority", 20, entities.UrgencyASAP, false, "3-4 DAYS (PRIORITY)"},
		{"crunch", 20, entities.UrgencyYesterday, false, "48 HOURS (CRUNCH MODE)"},
		{"crunch single day", 4, entities.UrgencyYesterday, false, "24 HOURS (CRUNCH MODE)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uc.EstimateTimeline(tc.hours, tc.urgency, tc.isEmpty); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestQuoteUseCase_Evaluate(t *testing.T) {
	uc := NewQuoteUseCase()

	t.Run("pace lock forces standard urgency", func(t *testing.T) {
		// 6 seconds of content against 4 labor hours is 40 h/min, far past
		// the threshold.
		state := entities.QuoteState{
			Items:          []entities.LineItem{videoKlingItem(6)},
			LaborHours:     4,
			HourlyRate:     500,
			Risk:           entities.RiskLow,
			Urgency:        entities.UrgencyYesterday,
			ConversionRate: 2.0,
		}

		eval := uc.Evaluate(state)
		if !eval.PaceWarning || !eval.UrgencyLocked {
			t.Fatal("expected pace warning and urgency lock")
		}
		if eval.EffectiveUrgency != entities.UrgencyStandard {
			t.Fatalf("expected standard urgency, got %v", eval.EffectiveUrgency)
		}
		want := uc.ComputeTotal(entities.QuoteState{
			Items: state.Items, LaborHours: 4, HourlyRate: 500,
			Risk: entities.RiskLow, Urgency: entities.UrgencyStandard, ConversionRate: 2.0,
		})
		if !almostEqual(eval.Breakdown.Total, want.Total) {
			t.Fatalf("expected locked total %v, got %v", want.Total, eval.Breakdown.Total)
		}
		if !strings.Contains(eval.Timeline, "BUSINESS DAYS") {
			t.Fatalf("expected standard timeline, got %q", eval.Timeline)
		}
	})

	t.Run("reasonable pace keeps requested urgency", func(t *testing.T) {
		state := entities.QuoteState{
			Items:          []entities.LineItem{videoKlingItem(600)},
			LaborHours:     4,
			HourlyRate:     500,
			Risk:           entities.RiskLow,
			Urgency:        entities.UrgencyYesterday,
			ConversionRate: 2.0,
		}

		eval := uc.Evaluate(state)
		if eval.PaceWarning {
			t.Fatal("did not expect pace warning")
		}
		if eval.EffectiveUrgency != entities.UrgencyYesterday {
			t.Fatalf("expected crunch urgency, got %v", eval.EffectiveUrgency)
		}
	})

	t.Run("labor only quote skips pace check", func(t *testing.T) {
		state := entities.QuoteState{
			LaborHours: 100,
			HourlyRate: 500,
			Urgency:    entities.UrgencyYesterday,
		}

		eval := uc.Evaluate(state)
		if eval.PaceWarning {
			t.Fatal("pace check must not fire with zero content minutes")
		}
		if eval.EffectiveUrgency != entities.UrgencyYesterday {
			t.Fatalf("expected requested urgency to survive, got %v", eval.EffectiveUrgency)
		}
	})

	t.Run("empty quote", func(t *testing.T) {
		eval := uc.Evaluate(entities.QuoteState{})
		if !eval.IsEmpty {
			t.Fatal("expected empty evaluation")
		}
		if eval.Timeline != NoTimelineSentinel {
			t.Fatalf("expected %q, got %q", NoTimelineSentinel, eval.Timeline)
		}
	})
}

func TestQuoteUseCase_MergeItems(t *testing.T) {
	uc := NewQuoteUseCase()

	t.Run("same tool accumulates", func(t *testing.T) {
		existing := []entities.LineItem{videoKlingItem(10)}
		merged := uc.MergeItems(existing, []entities.LineItem{videoKlingItem(5)})

		if len(merged) != 1 {
			t.Fatalf("expected 1 item, got %d", len(merged))
		}
		if !almostEqual(merged[0].Amount, 15) {
			t.Fatalf("expected accumulated amount 15, got %v", merged[0].Amount)
		}
		if merged[0].InstanceID != "inst-1" {
			t.Fatalf("existing instance id must survive, got %q", merged[0].InstanceID)
		}
	})

	t.Run("new tool appends with fresh instance id", func(t *testing.T) {
		newItem := entities.LineItem{
			ToolDefinition: entities.ToolDefinition{ID: "image_nano_banana", UnitPrice: 1},
			Amount:         3,
		}
		merged := uc.MergeItems([]entities.LineItem{videoKlingItem(10)}, []entities.LineItem{newItem})

		if len(merged) != 2 {
			t.Fatalf("expected 2 items, got %d", len(merged))
		}
		if merged[1].InstanceID == "" {
			t.Fatal("appended item must get an instance id")
		}
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		existing := []entities.LineItem{videoKlingItem(10)}
		uc.MergeItems(existing, []entities.LineItem{videoKlingItem(5)})

		if !almostEqual(existing[0].Amount, 10) {
			t.Fatalf("existing slice was mutated: %v", existing[0].Amount)
		}
	})
}

func TestQuoteUseCase_TextReport(t *testing.T) {
	uc := NewQuoteUseCase()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full report", func(t *testing.T) {
		state := entities.QuoteState{
			Items:          []entities.LineItem{videoKlingItem(10)},
			LaborHours:     4,
			HourlyRate:     500,
			Risk:           entities.RiskLow,
			Urgency:        entities.UrgencyStandard,
			ConversionRate: 2.0,
		}
		branding := entities.Branding{CreatorName: "NEO", CreatorTelegram: "@neo", ClientName: "ACME"}

		report := uc.TextReport(state, branding, at)

		for _, want := range []string{
			"ANTI-DOSHIRAK // 01.03.2025",
			"CLIENT: ACME",
			"TOTAL: 2 587 ₽",
			"TIMELINE: 1-3 BUSINESS DAYS",
			"Kling 2.5 Pro x10",
			"NEO @neo",
		} {
			if !strings.Contains(report, want) {
				t.Fatalf("report missing %q:\n%s", want, report)
			}
		}
	})

	t.Run("empty quote renders placeholder total", func(t *testing.T) {
		report := uc.TextReport(entities.QuoteState{}, entities.Branding{}, at)
		if !strings.Contains(report, "TOTAL: ---") {
			t.Fatalf("expected placeholder total:\n%s", report)
		}
	})
}

func TestFormatRUB(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 ₽"},
		{999, "999 ₽"},
		{2587.2, "2 587 ₽"},
		{1234567, "1 234 567 ₽"},
		{-1500, "-1 500 ₽"},
		{math.NaN(), "0 ₽"},
	}
	for _, tc := range cases {
		if got := FormatRUB(tc.in); got != tc.want {
			t.Fatalf("FormatRUB(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
