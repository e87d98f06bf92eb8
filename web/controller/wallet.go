package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starrep/starrep/logger"
	"github.com/starrep/starrep/web/entity"
	"github.com/starrep/starrep/web/service"
)

// WalletController manages the Stellar wallet link and balance reads.
type WalletController struct {
	BaseController

	walletService *service.WalletService
}

func NewWalletController(g *gin.RouterGroup, walletService *service.WalletService) *WalletController {
	a := &WalletController{walletService: walletService}
	a.initRouter(g)
	return a
}

func (a *WalletController) initRouter(g *gin.RouterGroup) {
	g.POST("/connect", a.connectWallet)
	g.GET("/status", a.getWalletStatus)
	g.GET("/balance", a.getBalance)
}

func (a *WalletController) connectWallet(c *gin.Context) {
	identity := a.identity(c)
	if identity == nil {
		return
	}

	var req entity.ConnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PublicKey == "" {
		jsonError(c, http.StatusBadRequest, "Public key required")
		return
	}

	address, err := a.walletService.Connect(identity.Id, req.PublicKey)
	if err != nil {
		if errors.Is(err, service.ErrAddressAlreadyLinked) {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("connect wallet failed:", err)
		jsonError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stellarAddress": address})
}

func (a *WalletController) getWalletStatus(c *gin.Context) {
	identity := a.identity(c)
	if identity == nil {
		return
	}

	address, err := a.walletService.Status(identity.Id)
	if err != nil {
		logger.Error("wallet status failed:", err)
		jsonError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stellarAddress": address})
}

func (a *WalletController) getBalance(c *gin.Context) {
	identity := a.identity(c)
	if identity == nil {
		return
	}

	balance, err := a.walletService.Balance(identity.Id)
	if err != nil {
		if errors.Is(err, service.ErrNotConnected) {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("fetch balance failed:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch balance")
		return
	}

	c.JSON(http.StatusOK, entity.BalanceResponse{
		Balance: balance,
		Network: a.walletService.Horizon.Network(),
	})
}
