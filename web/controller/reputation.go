package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starrep/starrep/logger"
	"github.com/starrep/starrep/web/entity"
	"github.com/starrep/starrep/web/service"
)

// ReputationController applies catalog actions and reads scores.
type ReputationController struct {
	BaseController

	reputationService *service.ReputationService
}

func NewReputationController(g *gin.RouterGroup) *ReputationController {
	a := &ReputationController{reputationService: service.NewReputationService()}
	a.initRouter(g)
	return a
}

func (a *ReputationController) initRouter(g *gin.RouterGroup) {
	g.POST("/action", a.performAction)
	g.GET("/score", a.getScore)
}

func (a *ReputationController) performAction(c *gin.Context) {
	identity := a.identity(c)
	if identity == nil {
		return
	}

	var req entity.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == "" {
		jsonError(c, http.StatusBadRequest, service.ErrInvalidAction.Error())
		return
	}

	added, total, err := a.reputationService.PerformAction(identity.Id, service.Action(req.Action))
	if err != nil {
		if errors.Is(err, service.ErrInvalidAction) {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("perform action failed:", err)
		jsonError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, entity.ActionResponse{
		Success:     true,
		AddedPoints: added,
		TotalScore:  total,
	})
}

func (a *ReputationController) getScore(c *gin.Context) {
	identity := a.identity(c)
	if identity == nil {
		return
	}

	score, err := a.reputationService.GetScore(identity.Id)
	if err != nil {
		logger.Error("get score failed:", err)
		jsonError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": score})
}
