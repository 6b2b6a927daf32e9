package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
	"github.com/SscSPs/crypto_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests that go to the settlement backend.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(svc portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: svc}
}

// RegisterOrderRoutes registers routes related to orders.
func RegisterOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	registerValidators()
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("/buy", h.buy)
		orders.POST("/sell", h.sell)
		orders.POST("/transfer", h.transfer)
		orders.POST("/limit", h.limit)
		orders.GET("/history", h.listHistory)
	}
}

// buy godoc
// @Summary Buy crypto
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.BuyOrderRequest true "Buy order"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Settlement failed"
// @Security BearerAuth
// @Router /orders/buy [post]
func (h *orderHandler) buy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BuyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BuyOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	res, err := h.orderService.Buy(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to submit buy order")
		return
	}
	c.JSON(http.StatusOK, dto.SettlementResponse{Message: res.Message})
}

// sell godoc
// @Summary Sell crypto
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.SellOrderRequest true "Sell order"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Settlement failed"
// @Security BearerAuth
// @Router /orders/sell [post]
func (h *orderHandler) sell(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SellOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SellOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	res, err := h.orderService.Sell(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to submit sell order")
		return
	}
	c.JSON(http.StatusOK, dto.SettlementResponse{Message: res.Message})
}

// transfer godoc
// @Summary Transfer crypto to another user
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.TransferOrderRequest true "Transfer"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Settlement failed"
// @Security BearerAuth
// @Router /orders/transfer [post]
func (h *orderHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	res, err := h.orderService.Transfer(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to submit transfer")
		return
	}
	c.JSON(http.StatusOK, dto.SettlementResponse{Message: res.Message})
}

// limit godoc
// @Summary Schedule a limit order
// @Description Schedules a buy or sell that the settlement service executes once the market reaches the target price
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.LimitOrderRequest true "Limit order"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Settlement failed"
// @Security BearerAuth
// @Router /orders/limit [post]
func (h *orderHandler) limit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LimitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for LimitOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	res, err := h.orderService.Limit(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to schedule limit order")
		return
	}
	c.JSON(http.StatusOK, dto.SettlementResponse{Message: res.Message})
}

// listHistory godoc
// @Summary List settlement history
// @Description Lists the user's settlement history, newest first
// @Tags orders
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListOrderHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Settlement backend unavailable"
// @Security BearerAuth
// @Router /orders/history [get]
func (h *orderHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListOrderHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.orderService.ListHistory(c.Request.Context(), userID, params)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list history")
		return
	}
	c.JSON(http.StatusOK, resp)
}
