package routes

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	_ "coyne_ecology/docs" // This will be auto-generated
	"coyne_ecology/internal/adapter/http/handlers"
	repository2 "coyne_ecology/internal/adapter/persistence/repository"
	"coyne_ecology/internal/infrastructure/config"
	"coyne_ecology/internal/infrastructure/document"
	"coyne_ecology/internal/infrastructure/email"
	"coyne_ecology/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	cfg := config.NewReviewConfigFromEnv()
	if cfg.APIKey == "" {
		log.Printf("[quote][routes] RESEND_API_KEY not set; review emails will be reported as failed")
	}

	draftRepo := repository2.NewQuoteDraftMemoryRepository()

	renderer := document.NewReviewPDFRenderer()
	mailer := email.NewResendMailer(cfg.APIKey)
	dispatcher := usecase.NewReviewDispatcher(cfg, renderer, mailer)

	quoteUseCase := usecase.NewQuoteUseCase(draftRepo, dispatcher, cfg.Recipients)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares() {
	// Known paths hit with the wrong verb get 405 plus an Allow header
	// instead of gin's default 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.Header("Allow", allowedMethodsFor(c.Request.URL.Path))
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed."})
	})

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func allowedMethodsFor(path string) string {
	if strings.HasSuffix(path, PathQuoteRequest) {
		return http.MethodPost
	}
	return http.MethodGet
}
