package request

// ShareRequest is a quote plus an optional client name baked into the
// snapshot. Branding fields always come from the stored settings.
type ShareRequest struct {
	QuoteRequest
	ClientName string `json:"clientName"`
}

// RestoreRequest wraps whatever the user pasted. Full URLs, bare codes
// and garbage are all accepted; decoding never fails.
type RestoreRequest struct {
	Input string `json:"input"`
}
