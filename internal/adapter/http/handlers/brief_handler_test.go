package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"antidoshirak/internal/adapter/http/handlers/mocks"
	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBriefHandler_Parse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBriefHandler(mocks.NewMockIBriefUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotes/brief", h.Parse)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/brief", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid attachment data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBriefHandler(mocks.NewMockIBriefUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/quotes/brief", h.Parse)

		body := `{"brief":"video","attachment":{"mimeType":"image/png","data":"!!not base64!!"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/brief", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty brief maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBriefUseCase(ctrl)
		uc.EXPECT().ProcessBrief(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.BriefResult{}, usecase.ErrEmptyBrief)
		h := NewBriefHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/brief", h.Parse)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/brief", strings.NewReader(`{"brief":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("parser disabled maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBriefUseCase(ctrl)
		uc.EXPECT().ProcessBrief(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.BriefResult{}, usecase.ErrBriefParserConfigured)
		h := NewBriefHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/brief", h.Parse)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/brief", strings.NewReader(`{"brief":"video"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBriefUseCase(ctrl)
		uc.EXPECT().ProcessBrief(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.BriefResult{}, errors.New("openrouter 500"))
		h := NewBriefHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/brief", h.Parse)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/brief", strings.NewReader(`{"brief":"video"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success merges items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBriefUseCase(ctrl)
		uc.EXPECT().ProcessBrief(gomock.Any(), "promo video", gomock.Any(), gomock.Any()).
			Return(usecase.BriefResult{
				Items: []entities.LineItem{{
					ToolDefinition: entities.ToolDefinition{ID: "video_kling", UnitPrice: 6},
					InstanceID:     "u1",
					Amount:         5,
				}},
				Added:      []entities.ParsedToolUsage{{ToolID: "video_kling", Count: 5}},
				SkippedIDs: []string{"bogus_tool"},
			}, nil)
		h := NewBriefHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/brief", h.Parse)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/brief", strings.NewReader(`{"brief":"promo video"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Items      []json.RawMessage `json:"items"`
			Added      []struct{ ToolID string `json:"tool_id"` } `json:"added"`
			SkippedIDs []string          `json:"skipped_ids"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		if len(resp.Items) != 1 || len(resp.Added) != 1 {
			t.Fatalf("unexpected response shape: %s", w.Body.String())
		}
		if len(resp.SkippedIDs) != 1 || resp.SkippedIDs[0] != "bogus_tool" {
			t.Fatalf("unexpected skipped ids: %v", resp.SkippedIDs)
		}
	})
}
