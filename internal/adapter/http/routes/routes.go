package routes

import (
	"log"
	"os"
	"strconv"

	_ "paydispatch/docs" // Generated swagger docs.
	"paydispatch/internal/adapter/http/handlers"
	"paydispatch/internal/adapter/persistence/repository"
	"paydispatch/internal/infrastructure/audit"
	"paydispatch/internal/infrastructure/database"
	"paydispatch/internal/infrastructure/gateways"
	"paydispatch/internal/usecase"
	"paydispatch/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	transactionRepo := repository.NewTransactionDynamoRepository(ddb)

	// The audit trail always reaches the console; DynamoDB persistence is
	// opt-in. A failing table never fails a dispatch (see MultiSink).
	var sink interfaces.IAuditSink = audit.NewConsoleSink(nil)
	if os.Getenv("AUDIT_SINK") == "dynamodb" {
		sink = audit.NewMultiSink(sink, repository.NewAuditDynamoRepository(ddb))
	}

	registry := gateways.NewRegistry(sink)
	dispatchUseCase := usecase.NewPaymentDispatchUseCase(registry, transactionRepo)

	paymentHandler := handlers.NewPaymentHandler(dispatchUseCase)
	gatewayHandler := handlers.NewGatewayHandler(registry)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, gatewayHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
