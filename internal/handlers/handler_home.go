package handlers

import (
	"net/http"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server and the currencies it can convert between.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	codes := make([]domain.CurrencyCode, 0)
	for _, c := range domain.SupportedCurrencies() {
		codes = append(codes, c.CurrencyCode)
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Crypto Wallet Backend API v1",
		"currencies": codes,
	})
}
