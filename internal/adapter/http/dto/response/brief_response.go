package response

import (
	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase"
)

type ParsedUsageResponse struct {
	ToolID  string  `json:"tool_id"`
	Count   float64 `json:"count"`
	Comment string  `json:"comment,omitempty"`
	Warning string  `json:"warning,omitempty"`
}

type BriefResponse struct {
	Items      []entities.LineItem   `json:"items"`
	Added      []ParsedUsageResponse `json:"added"`
	SkippedIDs []string              `json:"skipped_ids"`
}

func FromBriefResult(r usecase.BriefResult) BriefResponse {
	out := BriefResponse{
		Items:      r.Items,
		Added:      make([]ParsedUsageResponse, 0, len(r.Added)),
		SkippedIDs: r.SkippedIDs,
	}
	if out.Items == nil {
		out.Items = []entities.LineItem{}
	}
	if out.SkippedIDs == nil {
		out.SkippedIDs = []string{}
	}
	for _, u := range r.Added {
		out.Added = append(out.Added, ParsedUsageResponse{
			ToolID:  u.ToolID,
			Count:   u.Count,
			Comment: u.Comment,
			Warning: u.Warning,
		})
	}
	return out
}
