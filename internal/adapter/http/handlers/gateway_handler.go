package handlers

import (
	"net/http"

	response "paydispatch/internal/adapter/http/dto/response"
	"paydispatch/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// GatewayHandler exposes the registered gateway families.

type GatewayHandler struct {
	factory interfaces.IGatewayFactory
}

func NewGatewayHandler(factory interfaces.IGatewayFactory) *GatewayHandler {
	return &GatewayHandler{factory: factory}
}

// ListGateways godoc
//
//	@Summary	List the registered gateway selectors
//	@Tags		gateways
//	@Produce	json
//	@Success	200	{object}	response.GatewayListResponse
//	@Router		/gateways [get]
func (h *GatewayHandler) ListGateways(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSelectors(h.factory.Selectors()))
}
