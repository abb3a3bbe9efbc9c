package handler

import (
	"errors"
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler sets up the routing dependencies for User endpoints
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/signup", h.Signup)
	router.POST("/api/login", h.Login)
}

// LoginResponse is the login success body
type LoginResponse struct {
	Message string            `json:"message"`
	User    service.LoginUser `json:"user"`
}

// Signup handles POST /api/signup to register a new user
// @Summary      Sign up
// @Description  Creates a new user with a bcrypt-hashed password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SignupRequest  true  "Signup Payload"
// @Success      201      {object}  response.Message
// @Failure      400      {object}  response.Error
// @Router       /api/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	// Every insert failure, duplicate email included, surfaces as 400
	if err := h.userService.Signup(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Msg("User created"))
}

// Login handles POST /api/login to verify credentials
// @Summary      Login
// @Description  Verifies email and password; no token or session is issued
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  LoginResponse
// @Failure      403      {object}  response.Error
// @Failure      404      {object}  response.Error
// @Failure      500      {object}  response.Error
// @Router       /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.Err(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusForbidden, response.Err(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Message: "Login successful", User: *user})
}
