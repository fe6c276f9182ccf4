package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/server/http/dto"
)

// ContactHandler manages contact form intake and moderation endpoints.
type ContactHandler struct {
	facade ContactFacade
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Create handles POST /api/v1/contact. Public, no auth.
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	form, err := h.facade.SubmitContact(c.Request.Context(), &model.ContactForm{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Message:     req.Message,
		IsBulkOrder: req.IsBulkOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toContactResponse(form))
}

// List handles GET /api/v1/contact (admin).
func (h *ContactHandler) List(c *gin.Context) {
	h.list(c, false)
}

// Unprocessed handles GET /api/v1/contact/unprocessed (admin).
func (h *ContactHandler) Unprocessed(c *gin.Context) {
	h.list(c, true)
}

func (h *ContactHandler) list(c *gin.Context, unprocessedOnly bool) {
	forms, err := h.facade.ContactForms(c.Request.Context(), unprocessedOnly)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.ContactResponse, 0, len(forms))
	for i := range forms {
		resp = append(resp, toContactResponse(&forms[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/contact/:id (admin).
func (h *ContactHandler) Update(c *gin.Context) {
	var req dto.ContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	form, err := h.facade.UpdateContact(c.Request.Context(), c.Param("id"), model.ContactPatch{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Message:     req.Message,
		IsBulkOrder: req.IsBulkOrder,
		IsProcessed: req.IsProcessed,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toContactResponse(form))
}

// Delete handles DELETE /api/v1/contact/:id (admin).
func (h *ContactHandler) Delete(c *gin.Context) {
	err := h.facade.DeleteContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func toContactResponse(f *model.ContactForm) dto.ContactResponse {
	return dto.ContactResponse{
		ID:          f.ID,
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Company:     f.Company,
		Message:     f.Message,
		IsBulkOrder: f.IsBulkOrder,
		IsProcessed: f.IsProcessed,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
