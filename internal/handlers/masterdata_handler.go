package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/genx-realty/console/api/internal/errors"
	"github.com/genx-realty/console/api/internal/middleware"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/genx-realty/console/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MasterDataHandler handles controlled-vocabulary HTTP requests.
type MasterDataHandler struct {
	service services.VocabularyService
}

// NewMasterDataHandler creates a new MasterDataHandler instance.
func NewMasterDataHandler(service services.VocabularyService) *MasterDataHandler {
	return &MasterDataHandler{
		service: service,
	}
}

// ListRequest represents the query parameters for the list endpoint.
type ListRequest struct {
	Category   string `form:"category" binding:"required"`
	ActiveOnly bool   `form:"active_only"`
}

// CreateEntryRequest represents the body for appending a vocabulary value.
type CreateEntryRequest struct {
	Category string `json:"category" binding:"required"`
	Value    string `json:"value"`
}

// MasterDataListResponse represents the response for the list endpoint.
type MasterDataListResponse struct {
	Items []models.MasterDataItem `json:"items"`
	Count int                     `json:"count"`
}

// FormOptionsResponse groups active vocabulary entries by category.
type FormOptionsResponse struct {
	Options map[string][]models.MasterDataItem `json:"options"`
}

// List handles GET /api/v1/master-data.
// It returns the entries of one category, ordered by display order.
func (h *MasterDataHandler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	items, err := h.service.ListCategory(c.Request.Context(), req.Category, req.ActiveOnly)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to load master data", err)
		return
	}

	c.JSON(http.StatusOK, MasterDataListResponse{
		Items: items,
		Count: len(items),
	})
}

// FormOptions handles GET /api/v1/master-data/form-options.
// It returns the active entries of every category in one response, the
// fetch that populates the property form's choice fields.
func (h *MasterDataHandler) FormOptions(c *gin.Context) {
	options, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load form options", err)
		return
	}

	c.JSON(http.StatusOK, FormOptionsResponse{Options: options})
}

// Create handles POST /api/v1/master-data.
// It appends a value to the end of a category.
func (h *MasterDataHandler) Create(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Appending vocabulary value", map[string]interface{}{
			"category": req.Category,
		})
	}

	item, err := h.service.Append(c.Request.Context(), req.Category, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownCategory):
			apierrors.BadRequest(c, err.Error(), nil)
		case errors.Is(err, services.ErrBlankValue):
			apierrors.BadRequest(c, "Please enter a value", map[string]interface{}{
				"value": "must not be blank",
			})
		case errors.Is(err, services.ErrDuplicateValue):
			apierrors.Conflict(c, err.Error())
		default:
			apierrors.InternalServerError(c, "Failed to add master data entry", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// Delete handles DELETE /api/v1/master-data/:id.
// It removes exactly one entry by identity.
func (h *MasterDataHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			apierrors.NotFound(c, "Master data entry not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete master data entry", err)
		return
	}

	c.Status(http.StatusNoContent)
}
