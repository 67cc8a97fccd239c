package handlers

import (
	"errors"
	"net/http"

	"github.com/Souvikgooooo/ThrivePro/middleware"
	"github.com/Souvikgooooo/ThrivePro/models"
	catalogSvc "github.com/Souvikgooooo/ThrivePro/services/catalog"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the provider service catalog over HTTP.
type CatalogHandler struct {
	Service catalogSvc.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogSvc.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

type createServiceInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CreateService adds an entry to the authenticated provider's catalog.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var input createServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	svc, err := h.Service.Create(catalogSvc.CreateInput{
		ProviderID:  c.GetString(middleware.CtxActorID),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
	})
	if err != nil {
		var validationErr catalogSvc.ValidationError
		if errors.As(err, &validationErr) {
			utils.JSONFail(c, http.StatusBadRequest, validationErr.Message)
			return
		}
		utils.JSONFail(c, http.StatusInternalServerError, "failed to create service")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service", svc)
}

// ListServices returns the authenticated provider's catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Service.ListForProvider(c.GetString(middleware.CtxActorID))
	if err != nil {
		utils.JSONFail(c, http.StatusInternalServerError, "failed to list services")
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	utils.JSONSuccess(c, http.StatusOK, "services", services)
}
