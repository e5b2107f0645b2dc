package routes

import (
	"context"
	"log"
	"strconv"

	_ "antidoshirak/docs" // This will be auto-generated
	"antidoshirak/internal/adapter/http/handlers"
	repository2 "antidoshirak/internal/adapter/persistence/repository"
	"antidoshirak/internal/config"
	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/infrastructure/briefparser"
	"antidoshirak/internal/infrastructure/database"
	"antidoshirak/internal/usecase"
	"antidoshirak/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config, logger *zap.Logger) {
	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		logger.Fatal("Failed to connect to DynamoDB", zap.Error(err))
	}

	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	toolCatalog := catalog.New()

	quoteUseCase := usecase.NewQuoteUseCase()
	shareUseCase := usecase.NewShareUseCase(quoteUseCase, cfg.PublicBaseURL)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, quoteUseCase)
	marketUseCase := usecase.NewMarketUseCase()

	var briefParser interfaces.IBriefParser
	gateway, err := briefparser.NewOpenRouterGateway(
		cfg.OpenRouterBaseURL,
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterModel,
		cfg.HTTPRequestTimeout,
		cfg.BriefParserMock,
		logger,
	)
	if err != nil {
		logger.Warn("Brief parser gateway not configured", zap.Error(err))
	} else {
		briefParser = gateway
	}

	briefUseCase := usecase.NewBriefUseCase(briefParser, settingsRepo, toolCatalog, quoteUseCase, logger)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, settingsUseCase, toolCatalog)
	shareHandler := handlers.NewShareHandler(shareUseCase, quoteUseCase, settingsUseCase, toolCatalog)
	briefHandler := handlers.NewBriefHandler(briefUseCase)
	marketHandler := handlers.NewMarketHandler(marketUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	catalogHandler := handlers.NewCatalogHandler(toolCatalog, settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, shareHandler, briefHandler, marketHandler, settingsHandler, catalogHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
