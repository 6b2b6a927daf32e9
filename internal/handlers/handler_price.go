package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
	"github.com/SscSPs/crypto_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceHandler handles HTTP requests related to prices and the currency catalog.
type priceHandler struct {
	priceService      portssvc.PriceSvcFacade
	conversionService portssvc.ConversionSvc
}

func newPriceHandler(ps portssvc.PriceSvcFacade, cs portssvc.ConversionSvc) *priceHandler {
	return &priceHandler{
		priceService:      ps,
		conversionService: cs,
	}
}

// RegisterPriceRoutes registers routes related to prices, conversions and the currency catalog.
// Only priceAdmins may write the price table.
func RegisterPriceRoutes(rg *gin.RouterGroup, priceService portssvc.PriceSvcFacade, conversionService portssvc.ConversionSvc, priceAdmins []string) {
	registerValidators()
	h := newPriceHandler(priceService, conversionService)

	rg.GET("/currencies", h.listCurrencies)

	prices := rg.Group("/prices")
	{
		prices.GET("/market", h.getMarketOverview)
		prices.GET("/:base/:quote", h.getPrice)
		prices.PUT("/table", middleware.RequireUsers(priceAdmins), h.upsertPriceEntry)
	}

	rg.POST("/conversions/preview", h.previewConversion)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the fixed catalog of currencies wallets can hold
// @Tags prices
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies [get]
func (h *priceHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(domain.SupportedCurrencies()))
}

// getMarketOverview godoc
// @Summary Get the market overview
// @Description Returns the last good market snapshot with its age
// @Tags prices
// @Produce  json
// @Success 200 {object} dto.MarketOverviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No market data fetched yet"
// @Security BearerAuth
// @Router /prices/market [get]
func (h *priceHandler) getMarketOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.priceService.GetMarketSnapshot(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve market data")
		return
	}

	c.JSON(http.StatusOK, dto.ToMarketOverviewResponse(snapshot, time.Now()))
}

// getPrice godoc
// @Summary Resolve a price
// @Description Resolves the price of one base unit in the quote currency
// @Tags prices
// @Produce  json
// @Param   base path string true "Base currency code"
// @Param   quote path string true "Quote currency code"
// @Success 200 {object} dto.PriceResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Price unknown"
// @Security BearerAuth
// @Router /prices/{base}/{quote} [get]
func (h *priceHandler) getPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := domain.NormalizeCurrencyCode(c.Param("base"))
	quote := domain.NormalizeCurrencyCode(c.Param("quote"))

	price, err := h.priceService.GetPrice(c.Request.Context(), string(base), string(quote))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to resolve price")
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceResponse(base, quote, price))
}

// upsertPriceEntry godoc
// @Summary Store a price table entry
// @Description Inserts or replaces an entry of the internal price table
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   entry body dto.UpsertPriceEntryRequest true "Price entry"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a price administrator"
// @Failure 500 {object} map[string]string "Failed to store price entry"
// @Security BearerAuth
// @Router /prices/table [put]
func (h *priceHandler) upsertPriceEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertPriceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertPriceEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.priceService.UpsertPriceEntry(c.Request.Context(), req, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to store price entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// previewConversion godoc
// @Summary Apply a linked amount edit
// @Description Applies one edit to a base/quote amount pair and returns the synchronized state
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   edit body dto.ConversionPreviewRequest true "Current state and edit"
// @Success 200 {object} domain.AmountState
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /conversions/preview [post]
func (h *priceHandler) previewConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConversionPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConversionPreview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.conversionService.ApplyEdit(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to apply conversion")
		return
	}

	c.JSON(http.StatusOK, state)
}
