package handlers

import (
	"errors"
	"log"
	"net/http"

	request "paydispatch/internal/adapter/http/dto/request"
	response "paydispatch/internal/adapter/http/dto/response"
	"paydispatch/internal/infrastructure/gateways"
	"paydispatch/internal/usecase"
	"paydispatch/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment dispatching.

type PaymentHandler struct {
	usecase usecase.IPaymentDispatchUseCase
}

func NewPaymentHandler(uc usecase.IPaymentDispatchUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// DispatchPayment godoc
//
//	@Summary	Dispatch a payment through a gateway family
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		payment	body		request.PaymentDispatchRequest	true	"payment to dispatch"
//	@Success	200		{object}	response.TransactionResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/payments [post]
func (h *PaymentHandler) DispatchPayment(c *gin.Context) {
	var payload request.PaymentDispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] dispatch start gateway=%s amount=%.2f", payload.Gateway, payload.Amount)

	t, err := h.usecase.Dispatch(c.Request.Context(), payload.Gateway, payload.Amount, payload.CardNumber)
	if err != nil {
		log.Printf("[payment][handler] dispatch failed gateway=%s err=%v", payload.Gateway, err)
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] dispatch success gateway=%s transaction_id=%s status=%s", payload.Gateway, t.ID, t.Status)

	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// GetTransactionByID godoc
//
//	@Summary	Fetch one dispatched transaction
//	@Tags		payments
//	@Produce	json
//	@Param		id	path		string	true	"transaction id"
//	@Success	200	{object}	response.TransactionResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/payments/{id} [get]
func (h *PaymentHandler) GetTransactionByID(c *gin.Context) {
	id := c.Param("id")

	t, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed transaction_id=%s err=%v", id, err)
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// ListTransactionsByGateway godoc
//
//	@Summary	List transactions dispatched through one gateway family
//	@Tags		payments
//	@Produce	json
//	@Param		gateway	query		string	true	"gateway selector"
//	@Success	200		{array}		response.TransactionResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/payments [get]
func (h *PaymentHandler) ListTransactionsByGateway(c *gin.Context) {
	gateway := c.Query("gateway")

	transactions, err := h.usecase.ListByGateway(c.Request.Context(), gateway)
	if err != nil {
		log.Printf("[payment][handler] list failed gateway=%s err=%v", gateway, err)
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, response.FromTransaction(t))
	}
	c.JSON(http.StatusOK, out)
}

func mapDispatchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, gateways.ErrUnsupportedGateway):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_GATEWAY", "Unsupported payment gateway", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGateway),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCardNumber),
		errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}
