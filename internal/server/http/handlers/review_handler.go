package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/server/http/dto"
)

// ReviewHandler manages review endpoints.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create handles POST /api/v1/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), CurrentUserID(c), req.SweetID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput),
			errors.Is(err, domainErrors.ErrNotEligible):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(review))
}

// BySweet handles GET /api/v1/reviews/sweet/:id.
func (h *ReviewHandler) BySweet(c *gin.Context) {
	reviews, err := h.facade.ReviewsBySweet(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// Mine handles GET /api/v1/reviews/user/me.
func (h *ReviewHandler) Mine(c *gin.Context) {
	reviews, err := h.facade.MyReviews(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// Reviewable handles GET /api/v1/reviews/purchasable-items.
func (h *ReviewHandler) Reviewable(c *gin.Context) {
	items, err := h.facade.ReviewableItems(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.ReviewableItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.ReviewableItemResponse{
			SweetID:           item.SweetID,
			SweetName:         item.SweetName,
			SweetImageURL:     item.SweetImageURL,
			SweetCategory:     item.SweetCategory,
			PurchasedQuantity: item.PurchasedQuantity,
			PurchaseDate:      item.PurchaseDate,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/reviews/:id.
func (h *ReviewHandler) Update(c *gin.Context) {
	var req dto.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.UpdateReview(c.Request.Context(), c.Param("id"), CurrentUserID(c), model.ReviewPatch{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(review))
}

// Delete handles DELETE /api/v1/reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	err := h.facade.DeleteReview(c.Request.Context(), c.Param("id"), CurrentUserID(c), IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func toReviewResponse(r *model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		SweetID:   r.SweetID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		UserEmail: r.UserEmail,
	}
}

func toReviewResponses(reviews []model.Review) []dto.ReviewResponse {
	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, toReviewResponse(&reviews[i]))
	}
	return resp
}
