package response

import (
	"antidoshirak/internal/domain/entities"
)

type ToolResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"lightning_price"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category"`
}

type CatalogResponse struct {
	Tools []ToolResponse `json:"tools"`
}

func FromTools(tools []entities.ToolDefinition) CatalogResponse {
	out := CatalogResponse{Tools: make([]ToolResponse, 0, len(tools))}
	for _, t := range tools {
		out.Tools = append(out.Tools, ToolResponse{
			ID:        t.ID,
			Name:      t.Name,
			UnitPrice: t.UnitPrice,
			Unit:      string(t.Unit),
			Category:  string(t.Category),
		})
	}
	return out
}
