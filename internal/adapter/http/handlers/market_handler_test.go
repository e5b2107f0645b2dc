package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"antidoshirak/internal/usecase"

	"github.com/gin-gonic/gin"
)

func TestMarketHandler_Services(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewMarketHandler(usecase.NewMarketUseCase())

	r := gin.New()
	r.GET("/v1/market/services", h.Services)

	req := httptest.NewRequest(http.MethodGet, "/v1/market/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Currency string            `json:"currency"`
		Services []json.RawMessage `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Currency != "RUB" || len(resp.Services) == 0 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestMarketHandler_Compare(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewMarketHandler(usecase.NewMarketUseCase())

	r := gin.New()
	r.POST("/v1/market/compare", h.Compare)

	t.Run("missing service id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/market/compare", strings.NewReader(`{"price":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/market/compare", strings.NewReader(`{"serviceId":"svc_nope","price":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		body := `{
			"serviceId":"svc_video_promo","price":20000,
			"items":[{"id":"video_kling","unit":"second","category":"video","amount":45}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/market/compare", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			ScaleFactor    float64 `json:"scale_factor"`
			DetectedVolume float64 `json:"detected_volume"`
			Tiers          []struct {
				Position string `json:"position"`
			} `json:"tiers"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		if resp.ScaleFactor != 2 || resp.DetectedVolume != 45 {
			t.Fatalf("unexpected scaling: %+v", resp)
		}
		if len(resp.Tiers) != 3 {
			t.Fatalf("expected 3 tiers, got %d", len(resp.Tiers))
		}
	})
}
