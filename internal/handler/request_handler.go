package handler

import (
	"net/http"
	"strconv"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
}

// NewRequestHandler sets up the routing dependencies for purchase request endpoints
func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/api/requests")
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.PUT("/:id/approve", h.ApproveRequest)
	}
}

// CreateResponse is the create success body
type CreateResponse struct {
	Message   string `json:"message"`
	RequestID uint   `json:"requestId"`
}

type approveBody struct {
	Approved bool `json:"approved"`
}

// CreateRequest handles POST /api/requests, inserting the request and its
// items in one transaction
// @Summary      Create purchase request
// @Description  Creates a purchase request and all of its items atomically
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateRequestInput  true  "Request Payload"
// @Success      201      {object}  CreateResponse
// @Failure      500      {object}  response.Error
// @Router       /api/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var input service.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
		return
	}

	requestID, err := h.requestService.CreateRequest(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, CreateResponse{Message: "Request created", RequestID: requestID})
}

// ListRequests handles GET /api/requests
// @Summary      List purchase requests
// @Description  Lists all purchase requests with owner name and items, newest first
// @Tags         requests
// @Produce      json
// @Success      200  {array}   service.RequestResponse
// @Failure      500  {object}  response.Error
// @Router       /api/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.requestService.ListRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ApproveRequest handles PUT /api/requests/:id/approve. The update is
// unconditional: an id that matches no row still gets the success message.
// @Summary      Approve or reject a purchase request
// @Description  Sets the approved flag to the supplied boolean
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id       path      int          true  "Request ID"
// @Param        payload  body      approveBody  true  "Approval Flag"
// @Success      200      {object}  response.Message
// @Failure      500      {object}  response.Error
// @Router       /api/requests/{id}/approve [put]
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
		return
	}

	var body approveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
		return
	}

	if err := h.requestService.SetApproved(c.Request.Context(), uint(id), body.Approved); err != nil {
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
		return
	}

	if body.Approved {
		c.JSON(http.StatusOK, response.Msg("Request approved"))
	} else {
		c.JSON(http.StatusOK, response.Msg("Request rejected"))
	}
}
