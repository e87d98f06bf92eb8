package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starrep/starrep/logger"
	"github.com/starrep/starrep/web/entity"
	"github.com/starrep/starrep/web/service"
)

// UserController serves the authenticated user's profile.
type UserController struct {
	BaseController

	userService *service.UserService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{userService: service.NewUserService()}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("/me", a.getMe)
}

func (a *UserController) getMe(c *gin.Context) {
	identity := a.identity(c)
	if identity == nil {
		return
	}

	user, err := a.userService.GetUser(identity.Id)
	if err != nil {
		logger.Error("get profile failed:", err)
		jsonError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, entity.PublicUser{
		Id:              user.Id,
		Email:           user.Email,
		ReputationScore: user.ReputationScore,
	})
}
