package routes

import (
	"paydispatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathGateways = "/gateways"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, gatewayHandler *handlers.GatewayHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.DispatchPayment)
		payments.GET("", paymentHandler.ListTransactionsByGateway)
		payments.GET("/:id", paymentHandler.GetTransactionByID)
	}

	gateways := rg.Group(PathGateways)
	{
		gateways.GET("", gatewayHandler.ListGateways)
	}
}
