package entities

// UnitType is the billing unit of an AI tool.
type UnitType string

const (
	UnitGeneration UnitType = "generation"
	UnitSecond     UnitType = "second"
	UnitMinute     UnitType = "minute"
)

// CategoryType groups tools by the kind of asset they produce.
type CategoryType string

const (
	CategoryVideo  CategoryType = "video"
	CategoryImage  CategoryType = "image"
	CategoryAudio  CategoryType = "audio"
	CategoryText   CategoryType = "text"
	CategoryAvatar CategoryType = "avatar"
	CategoryOther  CategoryType = "other"
)

// ToolDefinition is a catalog entry for one AI tool.
//
// Domain notes:
//   - UnitPrice is denominated in "lightning" tokens per unit; the package
//     conversion rate turns it into local currency.
//   - Definitions are loaded once from static data and never mutated.
type ToolDefinition struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	UnitPrice float64      `json:"lightning_price"`
	Unit      UnitType     `json:"unit"`
	Category  CategoryType `json:"category"`
}
