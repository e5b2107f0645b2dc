package request

import (
	"testing"

	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/domain/entities"
)

func TestQuoteRequest_ResolveState(t *testing.T) {
	cat := catalog.New()

	t.Run("defaults fill missing rates", func(t *testing.T) {
		r := QuoteRequest{LaborHours: 4, Risk: 1.6, Urgency: 1.5}

		state := r.ResolveState(cat, nil, 500, 2.485)

		if state.HourlyRate != 500 || state.ConversionRate != 2.485 {
			t.Fatalf("defaults not applied: %+v", state)
		}
		if state.Risk != entities.RiskMid || state.Urgency != entities.UrgencyASAP {
			t.Fatalf("coefficients not resolved: %v/%v", state.Risk, state.Urgency)
		}
	})

	t.Run("explicit rates win over defaults", func(t *testing.T) {
		rate := 900.0
		conv := 3.0
		r := QuoteRequest{HourlyRate: &rate, ConversionRate: &conv}

		state := r.ResolveState(cat, nil, 500, 2.485)
		if state.HourlyRate != 900 || state.ConversionRate != 3.0 {
			t.Fatalf("explicit rates lost: %+v", state)
		}
	})

	t.Run("zero explicit rate is respected", func(t *testing.T) {
		rate := 0.0
		r := QuoteRequest{HourlyRate: &rate}

		state := r.ResolveState(cat, nil, 500, 1)
		if state.HourlyRate != 0 {
			t.Fatalf("explicit zero must not fall back to default, got %v", state.HourlyRate)
		}
	})

	t.Run("priceless item resolves through the catalog", func(t *testing.T) {
		r := QuoteRequest{Items: []LineItemRequest{{ID: "video_kling", Amount: 10}}}

		state := r.ResolveState(cat, nil, 500, 1)
		if len(state.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(state.Items))
		}
		if state.Items[0].UnitPrice != 6.0 || state.Items[0].Name != "Kling AI" {
			t.Fatalf("catalog resolution failed: %+v", state.Items[0])
		}
	})

	t.Run("priced item is passed through untouched", func(t *testing.T) {
		r := QuoteRequest{Items: []LineItemRequest{{
			ID: "video_kling", Name: "Custom Kling", UnitPrice: 9.5, Unit: "second", Category: "video", Amount: 10,
		}}}

		state := r.ResolveState(cat, nil, 500, 1)
		if state.Items[0].UnitPrice != 9.5 || state.Items[0].Name != "Custom Kling" {
			t.Fatalf("priced item must not be overwritten: %+v", state.Items[0])
		}
	})

	t.Run("custom tools resolve", func(t *testing.T) {
		custom := []entities.ToolDefinition{{ID: "custom_vo", Name: "Studio VO", UnitPrice: 50, Unit: entities.UnitGeneration, Category: entities.CategoryAudio}}
		r := QuoteRequest{Items: []LineItemRequest{{ID: "custom_vo", Amount: 2}}}

		state := r.ResolveState(cat, custom, 500, 1)
		if state.Items[0].UnitPrice != 50 {
			t.Fatalf("custom tool resolution failed: %+v", state.Items[0])
		}
	})

	t.Run("unknown priceless item stays as sent", func(t *testing.T) {
		r := QuoteRequest{Items: []LineItemRequest{{ID: "no_such_tool", Amount: 3}}}

		state := r.ResolveState(cat, nil, 500, 1)
		if state.Items[0].ID != "no_such_tool" || state.Items[0].UnitPrice != 0 {
			t.Fatalf("unknown item must pass through: %+v", state.Items[0])
		}
	})
}

func TestBriefRequest_ResolveAttachment(t *testing.T) {
	t.Run("no attachment", func(t *testing.T) {
		att, err := BriefRequest{}.ResolveAttachment()
		if err != nil || att != nil {
			t.Fatalf("expected nil/nil, got %v/%v", att, err)
		}
	})

	t.Run("valid base64", func(t *testing.T) {
		r := BriefRequest{Attachment: &BriefAttachmentRequest{MimeType: "image/png", Data: "aGVsbG8="}}
		att, err := r.ResolveAttachment()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if att.MimeType != "image/png" || att.Data != "aGVsbG8=" {
			t.Fatalf("unexpected attachment: %+v", att)
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		r := BriefRequest{Attachment: &BriefAttachmentRequest{MimeType: "image/png", Data: "!!"}}
		if _, err := r.ResolveAttachment(); err == nil {
			t.Fatal("expected error")
		}
	})
}
