package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/server/http/dto"
	"github.com/sweetworks/sweetshop/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// IsAdmin reports whether the authenticated user carries the admin flag.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(middleware.IsAdminContextKey)
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
