package interfaces

import (
	"context"

	"antidoshirak/internal/domain/entities"
)

// IBriefParser abstracts the external LLM service that deconstructs a
// free-text brief into tool usages.
//
// The engine treats it as a black box: its output goes through catalog
// lookup and the same merge path as manual additions. Implementations own
// their retry policy; a returned error means the caller's state must stay
// untouched.
type IBriefParser interface {
	ParseBrief(ctx context.Context, brief string, tools []entities.ToolDefinition, attachment *entities.BriefAttachment) ([]entities.ParsedToolUsage, error)
}
