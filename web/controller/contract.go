package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starrep/starrep/logger"
	"github.com/starrep/starrep/stellar"
	"github.com/starrep/starrep/web/entity"
)

// ContractController relays signed transaction envelopes to the network.
// Payloads are already signed client-side; this never validates or signs,
// it only forwards and shapes errors.
type ContractController struct {
	BaseController

	horizon *stellar.Client
}

func NewContractController(g *gin.RouterGroup, horizon *stellar.Client) *ContractController {
	a := &ContractController{horizon: horizon}
	a.initRouter(g)
	return a
}

func (a *ContractController) initRouter(g *gin.RouterGroup) {
	g.POST("/submit", a.submitTransaction)
}

func (a *ContractController) submitTransaction(c *gin.Context) {
	var req entity.SubmitTxRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SignedXdr == "" {
		jsonError(c, http.StatusBadRequest, "Signed XDR required")
		return
	}

	hash, err := a.horizon.SubmitTransaction(req.SignedXdr)
	if err != nil {
		logger.Error("transaction submission failed:", err)

		msg := "Failed to submit transaction"
		var txErr *stellar.TxError
		if errors.As(err, &txErr) {
			if txErr.ResultCode != "" {
				msg += ": " + txErr.ResultCode
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   msg,
				"details": txErr.Extras,
			})
			return
		}
		jsonError(c, http.StatusInternalServerError, msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "hash": hash})
}
