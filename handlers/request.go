package handlers

import (
	"net/http"

	"github.com/Souvikgooooo/ThrivePro/middleware"
	"github.com/Souvikgooooo/ThrivePro/models"
	requestSvc "github.com/Souvikgooooo/ThrivePro/services/request"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes the service request lifecycle over HTTP.
type RequestHandler struct {
	Service requestSvc.RequestService
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc requestSvc.RequestService) *RequestHandler {
	return &RequestHandler{Service: svc}
}

type createRequestInput struct {
	ProviderID      string  `json:"providerId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"` // informational; the snapshot comes from the catalog
	CustomerAddress string  `json:"customerAddress"`
	NearestPoint    string  `json:"nearestPoint"`
	TimeSlot        string  `json:"time_slot"`
}

// CreateRequest books a new service request for the authenticated customer.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var input createRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	req, err := h.Service.Create(requestSvc.CreateInput{
		CustomerID:      c.GetString(middleware.CtxActorID),
		ProviderID:      input.ProviderID,
		ServiceName:     input.ServiceName,
		CustomerAddress: input.CustomerAddress,
		NearestPoint:    input.NearestPoint,
		TimeSlot:        input.TimeSlot,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "serviceRequest", req)
}

// ListForProvider returns the authenticated provider's requests.
func (h *RequestHandler) ListForProvider(c *gin.Context) {
	requests, err := h.Service.ListForProvider(c.GetString(middleware.CtxActorID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if requests == nil {
		requests = []models.ServiceRequest{}
	}
	utils.JSONSuccess(c, http.StatusOK, "serviceRequests", requests)
}

// ListForCustomer returns the authenticated customer's requests.
func (h *RequestHandler) ListForCustomer(c *gin.Context) {
	requests, err := h.Service.ListForCustomer(c.GetString(middleware.CtxActorID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if requests == nil {
		requests = []models.ServiceRequest{}
	}
	utils.JSONSuccess(c, http.StatusOK, "serviceRequests", requests)
}

type updateStatusInput struct {
	Status string `json:"status"`
}

// UpdateStatus applies a status transition on behalf of the owning provider.
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	req, err := h.Service.UpdateStatus(
		c.Param("id"),
		models.Status(input.Status),
		c.GetString(middleware.CtxActorID),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "serviceRequest", req)
}
