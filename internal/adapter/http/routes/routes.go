package routes

import (
	"log"
	"strconv"

	_ "github.com/jean-devbr/Atendimento-lanche/docs" // This will be auto-generated
	"github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/handlers"
	"github.com/jean-devbr/Atendimento-lanche/internal/adapter/persistence/repository"
	"github.com/jean-devbr/Atendimento-lanche/internal/infrastructure/notification"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase"

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
	// The whole state tree lives in these repositories: created once here,
	// never persisted, gone on restart.
	menuRepo := repository.NewMemoryMenuRepository(repository.DefaultCatalog())
	cartRepo := repository.NewMemoryCartRepository()
	orderRepo := repository.NewMemoryOrderRepository()
	footerRepo := repository.NewMemoryFooterRepository(repository.DefaultFooterConfig())

	notifier := notification.NewWhatsAppGateway()

	menuUseCase := usecase.NewMenuUseCase(menuRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, menuRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartRepo, notifier)
	footerUseCase := usecase.NewFooterUseCase(footerRepo)
	authUseCase := usecase.NewAuthUseCaseFromEnv()

	menuHandler := handlers.NewMenuHandler(menuUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	footerHandler := handlers.NewFooterHandler(footerUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, menuHandler, cartHandler, orderHandler, footerHandler, authHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
