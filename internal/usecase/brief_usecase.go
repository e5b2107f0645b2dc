package usecase

import (
	"context"
	"errors"
	"strings"

	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrEmptyBrief            = errors.New("empty brief")
	ErrBriefParserConfigured = errors.New("brief parser not configured")
)

// IBriefUseCase merges brief-parser output into a quote's item list.
//
// The merge is all-or-nothing: a parser failure leaves the caller's items
// untouched, and unresolvable tool ids are dropped silently rather than
// inserted as broken rows.
type IBriefUseCase interface {
	ProcessBrief(ctx context.Context, brief string, attachment *entities.BriefAttachment, existing []entities.LineItem) (BriefResult, error)
}

// BriefResult is the merged item list plus diagnostics about what the
// parser produced.
type BriefResult struct {
	Items      []entities.LineItem
	Added      []entities.ParsedToolUsage
	SkippedIDs []string
}

type BriefUseCase struct {
	parser   interfaces.IBriefParser
	settings interfaces.ISettingsRepository
	catalog  *catalog.Catalog
	quotes   IQuoteUseCase
	logger   *zap.Logger
}

var _ IBriefUseCase = (*BriefUseCase)(nil)

func NewBriefUseCase(parser interfaces.IBriefParser, settings interfaces.ISettingsRepository, cat *catalog.Catalog, quotes IQuoteUseCase, logger *zap.Logger) *BriefUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BriefUseCase{parser: parser, settings: settings, catalog: cat, quotes: quotes, logger: logger}
}

func (u *BriefUseCase) ProcessBrief(ctx context.Context, brief string, attachment *entities.BriefAttachment, existing []entities.LineItem) (BriefResult, error) {
	if strings.TrimSpace(brief) == "" && attachment == nil {
		return BriefResult{}, ErrEmptyBrief
	}
	if u.parser == nil {
		return BriefResult{}, ErrBriefParserConfigured
	}

	// Custom tools extend the listing handed to the parser; a failed
	// settings read only narrows the catalog, it never blocks the brief.
	var custom []entities.ToolDefinition
	if u.settings != nil {
		if s, found, err := u.settings.Load(ctx); err != nil {
			u.logger.Warn("settings load failed, proceeding without custom tools", zap.Error(err))
		} else if found {
			custom = s.CustomTools
		}
	}

	tools := append(u.catalog.Tools(), custom...)
	usages, err := u.parser.ParseBrief(ctx, brief, tools, attachment)
	if err != nil {
		return BriefResult{}, err
	}

	var (
		incoming []entities.LineItem
		added    []entities.ParsedToolUsage
		skipped  []string
	)
	for _, usage := range usages {
		def, ok := u.catalog.LookupWith(usage.ToolID, custom)
		if !ok {
			u.logger.Debug("dropping unknown tool id from parsed brief", zap.String("tool_id", usage.ToolID))
			skipped = append(skipped, usage.ToolID)
			continue
		}
		incoming = append(incoming, entities.LineItem{
			ToolDefinition: def,
			Amount:         usage.Count,
		})
		added = append(added, usage)
	}

	return BriefResult{
		Items:      u.quotes.MergeItems(existing, incoming),
		Added:      added,
		SkippedIDs: skipped,
	}, nil
}
