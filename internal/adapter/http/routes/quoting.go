package routes

import (
	"antidoshirak/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathMarket   = "/market"
	PathSettings = "/settings"
	PathCatalog  = "/catalog"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	shareHandler *handlers.ShareHandler,
	briefHandler *handlers.BriefHandler,
	marketHandler *handlers.MarketHandler,
	settingsHandler *handlers.SettingsHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/evaluate", quoteHandler.Evaluate)
		quotes.POST("/report", quoteHandler.Report)
		quotes.POST("/share", shareHandler.Share)
		quotes.POST("/restore", shareHandler.Restore)
		quotes.POST("/brief", briefHandler.Parse)
	}

	market := rg.Group(PathMarket)
	{
		market.GET("/services", marketHandler.Services)
		market.POST("/compare", marketHandler.Compare)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Update)
	}

	rg.GET(PathCatalog, catalogHandler.List)
}
