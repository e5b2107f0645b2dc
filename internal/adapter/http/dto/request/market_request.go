package request

import (
	"antidoshirak/internal/domain/entities"
)

// MarketCompareRequest asks where a quoted price lands against one of the
// published market service ranges.
type MarketCompareRequest struct {
	ServiceID string            `json:"serviceId" binding:"required"`
	Price     float64           `json:"price"`
	Items     []LineItemRequest `json:"items"`
}

// ResolveItems maps the payload items for volume detection.
func (r MarketCompareRequest) ResolveItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.resolve(nil, nil))
	}
	return items
}
