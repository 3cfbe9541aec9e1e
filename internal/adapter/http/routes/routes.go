package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "servicedesk/docs" // This will be auto-generated
	"servicedesk/internal/adapter/http/handlers"
	"servicedesk/internal/adapter/http/middleware"
	repository2 "servicedesk/internal/adapter/persistence/repository"
	"servicedesk/internal/infrastructure/database"
	"servicedesk/internal/infrastructure/payments"
	"servicedesk/internal/usecase"
	"servicedesk/internal/usecase/interfaces"

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
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	if err := database.EnsureTables(ctx, ddb); err != nil {
		log.Fatalf("Failed to prepare DynamoDB tables: %v", err)
	}

	userRepo := repository2.NewUserDynamoRepository(ddb)
	tokenRepo := repository2.NewTokenDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)
	serviceRequestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	locationRepo := repository2.NewLocationDynamoRepository(ddb)
	vendorRepo := repository2.NewVendorDynamoRepository(ddb)
	assetRepo := repository2.NewAssetDynamoRepository(ddb)
	changeRequestRepo := repository2.NewChangeRequestDynamoRepository(ddb)
	configurationItemRepo := repository2.NewConfigurationItemDynamoRepository(ddb)
	catalogCategoryRepo := repository2.NewCatalogCategoryDynamoRepository(ddb)
	catalogItemRepo := repository2.NewCatalogItemDynamoRepository(ddb)
	memoRepo := repository2.NewMemoDynamoRepository(ddb)
	purchaseOrderRepo := repository2.NewPurchaseOrderDynamoRepository(ddb)
	procurementPaymentRepo := repository2.NewProcurementPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenRepo)
	serviceRequestUseCase := usecase.NewServiceRequestUseCase(serviceRequestRepo, userRepo, sequenceRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	locationUseCase := usecase.NewLocationUseCase(locationRepo)
	vendorUseCase := usecase.NewVendorUseCase(vendorRepo)
	assetUseCase := usecase.NewAssetUseCase(assetRepo, categoryRepo, locationRepo, vendorRepo, userRepo, sequenceRepo)
	changeRequestUseCase := usecase.NewChangeRequestUseCase(changeRequestRepo, userRepo, sequenceRepo)
	configurationItemUseCase := usecase.NewConfigurationItemUseCase(configurationItemRepo, assetRepo, userRepo, sequenceRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogCategoryRepo, catalogItemRepo, sequenceRepo)
	procurementUseCase := usecase.NewProcurementUseCase(memoRepo, purchaseOrderRepo, procurementPaymentRepo, vendorRepo, userRepo, sequenceRepo, paymentGateway)

	if err := authUseCase.EnsureSeedAdmin(ctx); err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	}

	authHandler := handlers.NewAuthHandler(authUseCase)
	serviceRequestHandler := handlers.NewServiceRequestHandler(serviceRequestUseCase)
	lookupHandler := handlers.NewLookupHandler(categoryUseCase, locationUseCase, vendorUseCase)
	assetHandler := handlers.NewAssetHandler(assetUseCase)
	changeRequestHandler := handlers.NewChangeRequestHandler(changeRequestUseCase)
	configurationItemHandler := handlers.NewConfigurationItemHandler(configurationItemUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	procurementHandler := handlers.NewProcurementHandler(procurementUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthPublicRoutes(v1, authHandler)

	// Rotas autenticadas
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(authUseCase))
	addAuthProtectedRoutes(protected, authHandler)
	addServiceRequestRoutes(protected, serviceRequestHandler)
	addLookupRoutes(protected, lookupHandler)
	addAssetRoutes(protected, assetHandler)
	addChangeRequestRoutes(protected, changeRequestHandler)
	addConfigurationItemRoutes(protected, configurationItemHandler)
	addCatalogRoutes(protected, catalogHandler)
	addProcurementRoutes(protected, procurementHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
