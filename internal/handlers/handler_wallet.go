package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
	"github.com/SscSPs/crypto_wallet_app/internal/middleware"
	"github.com/SscSPs/crypto_wallet_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to wallets and their closure.
type walletHandler struct {
	walletService  portssvc.WalletSvcFacade
	closureService portssvc.ClosureSvc
	posthogClient  *utils.PosthogClientWrapper
}

func newWalletHandler(ws portssvc.WalletSvcFacade, cs portssvc.ClosureSvc, posthogClient *utils.PosthogClientWrapper) *walletHandler {
	return &walletHandler{
		walletService:  ws,
		closureService: cs,
		posthogClient:  posthogClient,
	}
}

// RegisterWalletRoutes registers routes related to wallets.
func RegisterWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade, closureService portssvc.ClosureSvc, posthogClient *utils.PosthogClientWrapper) {
	registerValidators()
	h := newWalletHandler(walletService, closureService, posthogClient)

	wallets := rg.Group("/wallets")
	{
		wallets.GET("", h.listWallets)
		wallets.POST("", h.createWallet)
		wallets.GET("/:walletID", h.getWallet)
		wallets.DELETE("/:walletID", h.deleteWallet)
		wallets.POST("/:walletID/closure-plan", h.planClosure)
		wallets.POST("/:walletID/close", h.closeWallet)
	}
}

// listWallets godoc
// @Summary List wallets
// @Description Lists the wallets of the logged-in user
// @Tags wallets
// @Produce  json
// @Success 200 {array} dto.WalletResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list wallets"
// @Security BearerAuth
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	wallets, err := h.walletService.ListWallets(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list wallets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWalletResponse(wallets))
}

// createWallet godoc
// @Summary Open a wallet
// @Description Opens a wallet for a currency. Returns the existing wallet if the user already holds one.
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   wallet body dto.CreateWalletRequest true "Wallet currency"
// @Success 201 {object} dto.WalletResponse "Wallet created"
// @Success 200 {object} dto.WalletResponse "Wallet already existed"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create wallet"
// @Security BearerAuth
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	wallet, created, err := h.walletService.CreateWallet(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create wallet")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToWalletResponse(wallet))
}

// getWallet godoc
// @Summary Get a wallet
// @Tags wallets
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{walletID} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	wallet, err := h.walletService.GetWallet(c.Request.Context(), userID, c.Param("walletID"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// deleteWallet godoc
// @Summary Delete an empty wallet
// @Description Deletes a wallet without settlement. Wallets holding a balance must be closed instead.
// @Tags wallets
// @Param   walletID path string true "Wallet ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 409 {object} map[string]string "Wallet is not empty"
// @Security BearerAuth
// @Router /wallets/{walletID} [delete]
func (h *walletHandler) deleteWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.walletService.DeleteWallet(c.Request.Context(), userID, c.Param("walletID")); err != nil {
		handleServiceError(c, logger, err, "Failed to delete wallet")
		return
	}

	c.Status(http.StatusNoContent)
}

// planClosure godoc
// @Summary Plan a wallet closure
// @Description Returns the order that closing the wallet into the destination would submit. Nothing is executed.
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Param   plan body dto.ClosurePlanRequest true "Destination wallet"
// @Success 200 {object} dto.ClosurePlanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{walletID}/closure-plan [post]
func (h *walletHandler) planClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClosurePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ClosurePlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	walletID := c.Param("walletID")
	intent, err := h.closureService.PlanClosure(c.Request.Context(), userID, walletID, req.DestinationWalletID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to plan closure")
		return
	}

	c.JSON(http.StatusOK, dto.ToClosurePlanResponse(walletID, req.DestinationWalletID, intent))
}

// closeWallet godoc
// @Summary Close a wallet
// @Description Settles the wallet balance into the destination wallet and deletes it. The wallet is kept if settlement fails.
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Param   closure body dto.CloseWalletRequest true "Destination wallet"
// @Success 200 {object} dto.CloseWalletResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 409 {object} map[string]string "Wallet cannot be closed"
// @Failure 422 {object} map[string]string "Incompatible destination"
// @Failure 502 {object} map[string]string "Settlement failed"
// @Security BearerAuth
// @Router /wallets/{walletID}/close [post]
func (h *walletHandler) closeWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseWalletRequest
	// An empty wallet can be closed without a body.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for CloseWallet", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	walletID := c.Param("walletID")
	logger = logger.With(slog.String("wallet_id", walletID))
	logger.Info("Received request to close wallet", slog.String("destination_wallet_id", req.DestinationWalletID))

	result, err := h.closureService.CloseWallet(c.Request.Context(), userID, walletID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to close wallet")
		return
	}

	props := map[string]any{"wallet_id": walletID, "settled": result.Settlement != nil}
	if result.Intent != nil {
		props["intent_kind"] = string(result.Intent.Kind)
	}
	middleware.PosthogEvent(c, h.posthogClient, "wallet_closed", props)

	c.JSON(http.StatusOK, dto.ToCloseWalletResponse(result))
}
