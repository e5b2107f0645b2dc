package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"antidoshirak/internal/adapter/http/handlers/mocks"
	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("includes custom tools", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stored := entities.DefaultSettings()
		stored.CustomTools = []entities.ToolDefinition{
			{ID: "custom_vo", Name: "Studio VO", UnitPrice: 50, Unit: entities.UnitGeneration, Category: entities.CategoryAudio},
		}
		uc := mocks.NewMockISettingsUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any()).Return(stored, nil)
		h := NewCatalogHandler(catalog.New(), uc)

		r := gin.New()
		r.GET("/v1/catalog", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Tools []struct {
				ID string `json:"id"`
			} `json:"tools"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		found := false
		for _, tool := range resp.Tools {
			if tool.ID == "custom_vo" {
				found = true
			}
		}
		if !found {
			t.Fatal("custom tool missing from listing")
		}
	})

	t.Run("storage failure still serves static table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, errors.New("dynamo down"))
		h := NewCatalogHandler(catalog.New(), uc)

		r := gin.New()
		r.GET("/v1/catalog", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Tools []json.RawMessage `json:"tools"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		if len(resp.Tools) < 40 {
			t.Fatalf("static catalog looks truncated: %d", len(resp.Tools))
		}
	})
}
