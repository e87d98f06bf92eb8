package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starrep/starrep/logger"
	"github.com/starrep/starrep/web/entity"
	"github.com/starrep/starrep/web/service"
)

// AuthController handles registration and login.
type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(g *gin.RouterGroup, authService *service.AuthService) *AuthController {
	a := &AuthController{authService: authService}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
}

func (a *AuthController) register(c *gin.Context) {
	var req entity.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		jsonError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	userId, err := a.authService.Register(req.Email, req.Password)
	if err != nil {
		logger.Warning("register failed:", err)
		jsonError(c, http.StatusBadRequest, service.ErrDuplicateEmail.Error())
		return
	}

	c.JSON(http.StatusCreated, entity.RegisterResponse{
		Message: "User created successfully",
		UserId:  userId,
	})
}

func (a *AuthController) login(c *gin.Context) {
	var req entity.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	logger.Info("login attempt for:", req.Email)
	token, user, err := a.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			jsonError(c, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Error("login failed:", err)
		jsonError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, entity.LoginResponse{
		Token: token,
		User: entity.PublicUser{
			Id:              user.Id,
			Email:           user.Email,
			ReputationScore: user.ReputationScore,
		},
	})
}
