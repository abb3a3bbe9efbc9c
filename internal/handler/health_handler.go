package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler wires the health probe to the shared store handle
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/health", h.Check)
}

// HealthResponse is the health success body
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// UnhealthyResponse is the health failure body
type UnhealthyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Check handles GET /api/health with a trivial probe query against the store
// @Summary      Health check
// @Description  Runs a trivial query to confirm database connectivity
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      500  {object}  UnhealthyResponse
// @Router       /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	var probe int
	if err := h.db.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&probe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, UnhealthyResponse{Status: "unhealthy", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Database:  "connected",
	})
}
