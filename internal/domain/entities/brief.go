package entities

// ParsedToolUsage is one {tool_id, count} pair produced by the external
// brief parser. Comment/Warning are advisory text the parser may attach.
type ParsedToolUsage struct {
	ToolID  string  `json:"tool_id"`
	Count   float64 `json:"count"`
	Comment string  `json:"comment,omitempty"`
	Warning string  `json:"warning,omitempty"`
}

// BriefAttachment is an optional image sent along with the free-text brief.
type BriefAttachment struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}
