package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/server/http/dto"
)

// SweetHandler manages catalog endpoints.
type SweetHandler struct {
	facade CatalogFacade
}

// NewSweetHandler constructs SweetHandler.
func NewSweetHandler(facade CatalogFacade) *SweetHandler {
	return &SweetHandler{facade: facade}
}

// List handles GET /api/v1/sweets.
func (h *SweetHandler) List(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 0)

	sweets, err := h.facade.Sweets(c.Request.Context(), skip, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.SweetResponse, 0, len(sweets))
	for i := range sweets {
		resp = append(resp, toRatedSweetResponse(&sweets[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Search handles GET /api/v1/sweets/search.
func (h *SweetHandler) Search(c *gin.Context) {
	filter, err := searchFilter(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sweets, err := h.facade.SearchSweets(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidInput) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.SweetResponse, 0, len(sweets))
	for i := range sweets {
		resp = append(resp, toRatedSweetResponse(&sweets[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/sweets/:id.
func (h *SweetHandler) Get(c *gin.Context) {
	sweet, err := h.facade.Sweet(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Create handles POST /api/v1/sweets (admin).
func (h *SweetHandler) Create(c *gin.Context) {
	var req dto.SweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sweet, err := h.facade.CreateSweet(c.Request.Context(), &model.Sweet{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// Update handles PUT /api/v1/sweets/:id (admin).
func (h *SweetHandler) Update(c *gin.Context) {
	var req dto.SweetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sweet, err := h.facade.UpdateSweet(c.Request.Context(), c.Param("id"), model.SweetPatch{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		Description: req.Description,
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
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Delete handles DELETE /api/v1/sweets/:id (admin).
func (h *SweetHandler) Delete(c *gin.Context) {
	err := h.facade.DeleteSweet(c.Request.Context(), c.Param("id"))
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

// Categories handles GET /api/v1/sweets/filters/categories.
func (h *SweetHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// PriceRange handles GET /api/v1/sweets/filters/price-range.
func (h *SweetHandler) PriceRange(c *gin.Context) {
	pr, err := h.facade.PriceRange(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.PriceRangeResponse{MinPrice: pr.Min, MaxPrice: pr.Max})
}

// Purchase handles POST /api/v1/sweets/:id/purchase.
func (h *SweetHandler) Purchase(c *gin.Context) {
	req := dto.PurchaseRequest{Quantity: 1}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	purchase, err := h.facade.PurchaseSweet(c.Request.Context(), c.Param("id"), CurrentUserID(c), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput),
			errors.Is(err, domainErrors.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.PurchaseResponse{
		ID:         purchase.ID,
		UserID:     purchase.UserID,
		SweetID:    purchase.SweetID,
		Quantity:   purchase.Quantity,
		TotalPrice: purchase.TotalPrice,
		CreatedAt:  purchase.CreatedAt,
	})
}

// Restock handles POST /api/v1/sweets/:id/restock (admin).
func (h *SweetHandler) Restock(c *gin.Context) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sweet, err := h.facade.RestockSweet(c.Request.Context(), c.Param("id"), quantity)
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
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

func toSweetResponse(s *model.Sweet) dto.SweetResponse {
	return dto.SweetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		ImageURL:    s.ImageURL,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toRatedSweetResponse(s *model.RatedSweet) dto.SweetResponse {
	resp := toSweetResponse(&s.Sweet)
	avg := s.AvgRating
	count := s.ReviewCount
	resp.AvgRating = &avg
	resp.ReviewCount = &count
	return resp
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// searchFilter parses the catalog search query parameters. A malformed
// numeric parameter is an error rather than a silently dropped filter.
func searchFilter(c *gin.Context) (model.SweetFilter, error) {
	filter := model.SweetFilter{
		Skip:  intQuery(c, "skip", 0),
		Limit: intQuery(c, "limit", 0),
	}

	if q := c.Query("query"); q != "" {
		filter.Query = &q
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, err
		}
		filter.MinRating = &v
	}
	if raw := c.Query("in_stock_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, err
		}
		filter.InStockOnly = v
	}
	if raw := c.Query("min_quantity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.MinQuantity = &v
	}
	if raw := c.Query("max_quantity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.MaxQuantity = &v
	}
	if sortBy := c.Query("sort_by"); sortBy != "" {
		filter.SortBy = model.SweetSortKey(sortBy)
	}
	filter.SortDescending = c.Query("sort_order") == "desc"

	return filter, nil
}
